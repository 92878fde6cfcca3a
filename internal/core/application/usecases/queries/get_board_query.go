package queries

import (
	"errors"

	"dietboard/internal/pkg/guard"
)

var ErrGetBoardQueryIsNotConstructed = errors.New(
	"GetBoardQuery must be created via NewGetBoardQuery constructor",
)

// GetBoardQuery retrieves the kitchen board: every order that has not
// reached a terminal status, partitioned into one column per pipeline
// status.
//
// Example:
//
//	query := NewGetBoardQuery()
//	handler := NewGetBoardQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load board: %w", err)
//	}
//
//	for _, column := range board.Columns {
//	    fmt.Printf("%s: %d\n", column.Status, len(column.Orders))
//	}
type GetBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBoardQuery creates a query for the kitchen board. This is a
// parameterless query that fetches all active orders.
func NewGetBoardQuery() GetBoardQuery {
	return GetBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardQueryIsNotConstructed)
}

// BoardColumnResponse is one column of the kitchen board. The column count
// is the header badge the board view shows.
type BoardColumnResponse struct {
	Status string
	Orders []OrderResponse
}

// GetBoardQueryResponse is the full board: one column per pipeline status,
// in pipeline order, empty columns included.
type GetBoardQueryResponse struct {
	Columns []BoardColumnResponse
}
