package commands

import (
	"context"
	"time"

	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/core/domain/model/prescription"
	"dietboard/internal/core/ports"
)

// CreatePrescriptionCommandHandler handles the business logic for saving a
// prescription: it persists the directive and fans out one production order
// per targeted meal in the same transaction, then announces the new orders.
//
// Example:
//
//	handler := NewCreatePrescriptionCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreatePrescriptionCommand(
//	    kernel.NewUUID(), patientID, diet.Soft, diet.ModifierNone,
//	    "", "dr.mendes", nil,
//	)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("prescription failed: %w", err)
//	}
//	// Orders for lunch and dinner are now on the kitchen board
type CreatePrescriptionCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreatePrescriptionCommandHandler creates a handler for the prescribe
// operation. The publisher may be nil when no change-notification transport
// is configured.
func NewCreatePrescriptionCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
) CreatePrescriptionCommandHandler {
	return CreatePrescriptionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the prescribe command.
//
// Within one transaction it loads the patient, creates the prescription,
// and adds one New order per meal with the patient's display fields and the
// composed diet label snapshotted on. After a successful commit the new
// orders are announced on the change-notification boundary; a notification
// failure is returned to the caller but the committed data stays in place,
// consumers converge on their next refresh.
func (h *CreatePrescriptionCommandHandler) Handle(ctx context.Context, cmd CreatePrescriptionCommand) error {
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

	pat, err := uow.PatientRepository().Get(ctx, cmd.PatientID())
	if err != nil {
		return err
	}

	now := time.Now()
	p, err := prescription.NewPrescription(
		cmd.PrescriptionID(),
		cmd.PatientID(),
		cmd.DietBase(),
		cmd.DietModifier(),
		cmd.Observations(),
		cmd.PrescribedBy(),
		now,
		cmd.Meals(),
	)
	if err != nil {
		return err
	}

	if err = uow.PrescriptionRepository().Add(ctx, p); err != nil {
		return err
	}

	orders, err := order.CreateForMeals(p, pat, nil, now)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	for _, o := range orders {
		if err = orderRepo.Add(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		return h.publisher.PublishOrderChanged(ctx, orders)
	}

	return nil
}
