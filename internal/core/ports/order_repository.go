package ports

import (
	"context"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using an
	// optimistic concurrency check on the version the aggregate was read
	// with. Returns errs.ErrConcurrencyConflict when another writer got
	// there first; the caller should re-read and retry the transition
	// against fresh state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached a terminal
	// status, in creation order. This is the collection board views
	// partition into columns.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// in creation order. The delivery view uses this with StatusReady.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
