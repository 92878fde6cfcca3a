package queries

import (
	"errors"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/pkg/guard"
)

var ErrGetDeliveryQueueQueryIsNotConstructed = errors.New(
	"GetDeliveryQueueQuery must be created via NewGetDeliveryQueueQuery constructor",
)

// GetDeliveryQueueQuery retrieves the delivery runner's view: Ready orders
// split into trays still awaiting pickup and trays the runner has picked
// up. The in-transit set is the runner's own working state, passed in by
// the client; the server does not persist it.
//
// Example:
//
//	query, err := NewGetDeliveryQueueQuery(pickedUpIDs)
//	if err != nil {
//	    return err
//	}
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load delivery queue: %w", err)
//	}
//
//	fmt.Printf("%d awaiting pickup, %d in transit\n",
//	    len(queue.AwaitingPickup), len(queue.InTransit))
type GetDeliveryQueueQuery struct {
	inTransitIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQueueQuery creates a delivery queue query. The in-transit
// list may be empty; every identifier present must be a constructed UUID.
func NewGetDeliveryQueueQuery(inTransitIDs []kernel.UUID) (GetDeliveryQueueQuery, error) {
	for _, id := range inTransitIDs {
		if err := id.Validate(); err != nil {
			return GetDeliveryQueueQuery{}, err
		}
	}

	return GetDeliveryQueueQuery{
		inTransitIDs: append([]kernel.UUID(nil), inTransitIDs...),

		guard: guard.NewConstructorGuard(),
	}, nil
}

// InTransitIDs returns the identifiers of orders the runner reports as
// picked up.
func (q GetDeliveryQueueQuery) InTransitIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), q.inTransitIDs...)
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueueQueryIsNotConstructed)
}

// GetDeliveryQueueQueryResponse splits the Ready orders into the two
// delivery lanes.
type GetDeliveryQueueQueryResponse struct {
	AwaitingPickup []OrderResponse
	InTransit      []OrderResponse
}
