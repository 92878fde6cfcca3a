// Package errs provides standardized error types for the diet-order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error kinds the order lifecycle distinguishes:
//   - ValueIsRequiredError: a mandatory value is missing (for example the
//     delivering staff member on delivery confirmation)
//   - ValueIsInvalidError: a value failed validation
//   - InvalidStatusTransitionError: an order status edge outside the
//     lifecycle state machine was attempted
//   - ConcurrencyConflictError: an optimistic concurrency check lost a race
//     against another writer; safe to retry after a re-read
//   - ObjectNotFoundError: an object could not be located by identifier
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Errors are never caught or suppressed inside the core; they always carry
// their precise kind to the caller, which decides whether to retry (a
// concurrency conflict after re-fetch) or abandon (a validation or
// transition failure, which indicates a caller bug rather than a race).
package errs
