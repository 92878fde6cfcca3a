package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"dietboard/internal/core/domain/model/order"
)

// ordersExchange is the topic exchange order-changed events go to.
// Consumers bind with patterns like "order.*" or "order.ready".
const ordersExchange = "orders.changed"

// OrderEventPublisher implements ports.OrderEventPublisher on a confirm-mode
// AMQP channel. Delivery is at-least-once: a publish that fails after the
// command committed is reported to the caller, and consumers converge on
// their next refresh regardless.
type OrderEventPublisher struct {
	client *Client
}

// NewOrderEventPublisher creates a publisher and declares the orders
// exchange.
func NewOrderEventPublisher(client *Client) (*OrderEventPublisher, error) {
	if err := client.ExchangeDeclare(ordersExchange, "topic"); err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &OrderEventPublisher{client: client}, nil
}

// orderChangedEvent is the wire shape of one changed order. It is a refresh
// trigger, not a source of truth: consumers re-fetch the board on receipt.
type orderChangedEvent struct {
	OrderID        string    `json:"order_id"`
	PrescriptionID string    `json:"prescription_id"`
	Room           string    `json:"room"`
	Sector         string    `json:"sector"`
	MealLabel      string    `json:"meal_label"`
	Status         string    `json:"status"`
	Version        int       `json:"version"`
	ChangedAt      time.Time `json:"changed_at"`
}

// PublishOrderChanged announces that the given orders were inserted or
// updated, one message per order, routed by status.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, changed []*order.Order) error {
	for _, o := range changed {
		if err := o.Validate(); err != nil {
			return err
		}

		event := orderChangedEvent{
			OrderID:        o.ID().String(),
			PrescriptionID: o.PrescriptionID().String(),
			Room:           o.Room(),
			Sector:         o.Sector(),
			MealLabel:      o.MealLabel(),
			Status:         o.Status().String(),
			Version:        o.Version(),
			ChangedAt:      time.Now(),
		}

		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}

		key := "order." + strings.ToLower(o.Status().String())
		if err := p.client.Publish(ctx, ordersExchange, key, body); err != nil {
			return fmt.Errorf("failed to publish order %s: %w", o.ID(), err)
		}
	}

	return nil
}
