package queries

import (
	"context"

	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetBoardQueryHandler builds the kitchen board from the database.
// Uses direct SQL for the read side, then the domain board service for the
// partitioning so that the column rules live in one place.
type GetBoardQueryHandler struct {
	db    *gorm.DB
	board services.Board
}

// NewGetBoardQueryHandler creates a handler for board queries.
// Requires a GORM database connection for query execution.
func NewGetBoardQueryHandler(db *gorm.DB) GetBoardQueryHandler {
	return GetBoardQueryHandler{db: db, board: services.NewBoard()}
}

// Handle executes the query to build the kitchen board.
// Fetches every order that has not reached a terminal status, in creation
// order, and partitions the result into one column per pipeline status.
// Columns for statuses with no orders are present and empty.
func (h GetBoardQueryHandler) Handle(
	ctx context.Context,
	query GetBoardQuery,
) (GetBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBoardQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, order.StatusDelivered.String(), order.StatusCancelled.String()).Rows()
	if err != nil {
		return GetBoardQueryResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return GetBoardQueryResponse{}, err
	}

	columns := h.board.PartitionByStatus(orders)
	resp := GetBoardQueryResponse{Columns: make([]BoardColumnResponse, 0, len(columns))}
	for _, column := range columns {
		resp.Columns = append(resp.Columns, BoardColumnResponse{
			Status: column.Status.String(),
			Orders: newOrderResponses(column.Orders),
		})
	}

	return resp, nil
}
