package queries

import (
	"context"

	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetDeliveryQueueQueryHandler builds the delivery runner's view from the
// database: all Ready orders, split by the runner's reported in-transit
// set.
type GetDeliveryQueueQueryHandler struct {
	db    *gorm.DB
	board services.Board
}

// NewGetDeliveryQueueQueryHandler creates a handler for delivery queue
// queries. Requires a GORM database connection for query execution.
func NewGetDeliveryQueueQueryHandler(db *gorm.DB) GetDeliveryQueueQueryHandler {
	return GetDeliveryQueueQueryHandler{db: db, board: services.NewBoard()}
}

// Handle executes the query to build the delivery queue.
// Fetches all Ready orders, oldest ready first, and splits them into
// awaiting-pickup and in-transit lanes. An in-transit identifier that no
// longer matches a Ready order is ignored: the order was delivered or
// cancelled by someone else and has left the queue.
func (h GetDeliveryQueueQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQueueQuery,
) (GetDeliveryQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueueQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY ready_at, id
	`, order.StatusReady.String()).Rows()
	if err != nil {
		return GetDeliveryQueueQueryResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return GetDeliveryQueueQueryResponse{}, err
	}

	queue := h.board.PartitionForDelivery(orders, query.InTransitIDs())

	return GetDeliveryQueueQueryResponse{
		AwaitingPickup: newOrderResponses(queue.AwaitingPickup),
		InTransit:      newOrderResponses(queue.InTransit),
	}, nil
}
