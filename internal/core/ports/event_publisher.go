package ports

import (
	"context"

	"dietboard/internal/core/domain/model/order"
)

// OrderEventPublisher is the change-notification boundary: after a command
// commits, it announces that orders changed so that other screens re-fetch
// and repartition.
//
// Delivery is at-least-once; consumers must tolerate duplicates and
// out-of-order arrival by treating the event as a refresh trigger, not as a
// source of truth for order state.
type OrderEventPublisher interface {
	// PublishOrderChanged announces that the given orders were inserted or
	// updated.
	PublishOrderChanged(ctx context.Context, changed []*order.Order) error
}
