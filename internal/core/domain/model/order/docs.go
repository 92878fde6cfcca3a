// Package order implements the order lifecycle engine: the Order aggregate
// a hospital kitchen tracks from prescription fan-out to bedside handoff,
// and the Status state machine that gates its progress.
//
// The package includes:
//   - Order: the aggregate root carrying the snapshot a kitchen card shows
//     (patient, room, sector, diet, meal) plus lifecycle state
//   - Status: a state machine enforcing New -> Preparing -> Ready ->
//     Delivered, with Cancelled reachable from New and Preparing
//   - CreateForMeals: the fan-out producing one order per targeted meal
//     from a saved prescription
//
// Key business rules:
//   - Snapshot fields are frozen at creation and never re-synced
//   - Each lifecycle timestamp is stamped exactly once, in status order,
//     never regressing in wall-clock time
//   - Re-applying the current status is an idempotent no-op, which lets
//     multiple concurrent screens converge without spurious failures
//   - Delivery confirmation always records the confirming staff member
//
// The engine holds no shared mutable state and performs no I/O; every
// operation is a function of its inputs plus a caller-supplied clock
// reading, so it is safe on any number of server instances.
package order
