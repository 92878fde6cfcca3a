package commands

import (
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/pkg/errs"
	"dietboard/internal/pkg/guard"
)

// TransitionOrderCommand is a command to move a kitchen order along the
// production pipeline (or cancel it). The actor is the staff member or team
// performing the move; it is required when confirming a delivery and
// optional otherwise.
//
//nolint:recvcheck
type TransitionOrderCommand struct {
	orderID kernel.UUID
	target  order.Status
	actor   string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a new TransitionOrderCommand.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor string,
) (TransitionOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return TransitionOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	if err := target.Validate(); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		target:  target,
		actor:   actor,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to move.
func (c *TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c *TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns who performs the move. May be empty.
func (c *TransitionOrderCommand) Actor() string {
	return c.actor
}

// Validate checks that the command was created through its constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand"))
}
