package commands

import (
	"context"
	"time"

	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/core/ports"
)

// TransitionOrderCommandHandler handles the business logic for moving an
// order through the production pipeline.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewTransitionOrderCommandHandler creates a handler for pipeline moves.
// The publisher may be nil when no change-notification transport is
// configured.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transition command.
//
// The order is loaded, moved through the aggregate's state machine, and
// saved with an optimistic-concurrency check: if another client saved the
// same order first, the write fails with errs.ErrConcurrencyConflict and
// the caller retries against fresh data. A request for the status the order
// already holds commits nothing and succeeds.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.Status() == cmd.Target() {
		return nil
	}

	if err = o.TransitionTo(cmd.Target(), cmd.Actor(), time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		return h.publisher.PublishOrderChanged(ctx, []*order.Order{o})
	}

	return nil
}
