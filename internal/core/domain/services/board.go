package services

import (
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/order"
)

// Column is one board column: a status bucket holding the orders currently
// in that status, in the relative order they were supplied.
type Column struct {
	Status order.Status
	Orders []*order.Order
}

// Count returns the number of orders in the column, displayed as the
// column's badge.
func (c Column) Count() int {
	return len(c.Orders)
}

// DeliveryQueue is the delivery view's split of Ready orders: meals still
// waiting on the pass versus meals a runner has already picked up.
//
// Pickup is a transient, client-local flag rather than a persisted status;
// if the client loses it the order simply shows as awaiting pickup again,
// still correctly Ready until delivery is confirmed.
type DeliveryQueue struct {
	AwaitingPickup []*order.Order
	InTransit      []*order.Order
}

// Board is a domain service answering the partition queries board-style
// views are built from. It is stateless; both operations are pure functions
// of their inputs.
//
// Example:
//
//	board := services.NewBoard()
//	columns := board.PartitionByStatus(orders)
//	for _, col := range columns {
//	    fmt.Printf("%s (%d)\n", col.Status, col.Count())
//	}
type Board struct{}

// NewBoard creates a new Board service instance.
func NewBoard() Board {
	return Board{}
}

// PartitionByStatus groups orders into one column per status, in pipeline
// order (New, Preparing, Ready, Delivered, Cancelled). The partition is
// stable: within each column, orders keep the relative order of the input.
// Orders with an invalid status are skipped.
//
// Concatenating the columns yields a permutation of the input, so a view
// may repartition a freshly re-fetched collection idempotently.
func (Board) PartitionByStatus(orders []*order.Order) []Column {
	buckets := make(map[order.Status][]*order.Order, len(order.AllStatuses()))
	for _, o := range orders {
		if o == nil || o.Status().Validate() != nil {
			continue
		}
		buckets[o.Status()] = append(buckets[o.Status()], o)
	}

	columns := make([]Column, 0, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		columns = append(columns, Column{
			Status: status,
			Orders: buckets[status],
		})
	}
	return columns
}

// PartitionForDelivery splits the Ready orders among the input into those
// awaiting pickup and those in transit, using the caller's set of
// in-transit order IDs. Orders in any other status are ignored. Relative
// input order is preserved in both halves.
func (Board) PartitionForDelivery(orders []*order.Order, inTransitIDs []kernel.UUID) DeliveryQueue {
	inTransit := make(map[string]struct{}, len(inTransitIDs))
	for _, id := range inTransitIDs {
		inTransit[id.String()] = struct{}{}
	}

	queue := DeliveryQueue{}
	for _, o := range orders {
		if o == nil || o.Status() != order.StatusReady {
			continue
		}
		if _, ok := inTransit[o.ID().String()]; ok {
			queue.InTransit = append(queue.InTransit, o)
		} else {
			queue.AwaitingPickup = append(queue.AwaitingPickup, o)
		}
	}
	return queue
}
