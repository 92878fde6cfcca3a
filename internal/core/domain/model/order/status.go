package order

import (
	"fmt"

	"dietboard/internal/pkg/errs"
)

// Status represents the lifecycle state of a production order. It implements
// a state machine whose transitions mirror the kitchen workflow.
//
// State transitions:
//
//	New ──> Preparing ──> Ready ──> Delivered
//	 │          │
//	 └──────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Re-applying the current status is a
// permitted no-op so that concurrent screens converging on the same state do
// not fail each other.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status of a freshly fanned-out order,
	// waiting for the kitchen to pick it up.
	StatusNew

	// StatusPreparing indicates the kitchen has started preparing the meal.
	StatusPreparing

	// StatusReady indicates the meal is plated and awaiting pickup by the
	// delivery staff.
	StatusReady

	// StatusDelivered indicates the meal was handed off at the bedside.
	// This is a final state.
	StatusDelivered

	// StatusCancelled indicates the order was withdrawn before completion.
	// Reachable from New and Preparing only; a final state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusNew:       "New",
		StatusPreparing: "Preparing",
		StatusReady:     "Ready",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:       "New",
		StatusPreparing: "Preparing",
		StatusReady:     "Ready",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

// allowedTransitions lists every permitted forward edge. Same-status
// re-application is handled separately as an idempotent no-op.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusNew:       {StatusPreparing, StatusCancelled},
		StatusPreparing: {StatusReady, StatusCancelled},
		StatusReady:     {StatusDelivered},
	}
}

// AllStatuses returns the valid statuses in pipeline order. Board views rely
// on this ordering for their columns.
func AllStatuses() []Status {
	return []Status{StatusNew, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Preparing, Ready, Delivered, Cancelled.
// StatusUnknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its display name, as stored in the
// database's text column.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the edge from s to target is permitted.
// Re-applying the current status is always permitted for valid statuses.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s == target {
		return true
	}
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge from s to target and returns the resulting
// status.
//
// Returns:
//   - (target, nil) on a valid transition, including the same-status no-op
//   - (0, error) with an InvalidStatusTransitionError otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidStatusTransitionError(s.String(), target.String())
	}
	return target, nil
}
