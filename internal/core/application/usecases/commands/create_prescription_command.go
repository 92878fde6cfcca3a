package commands

import (
	"errors"

	"dietboard/internal/core/domain/model/diet"
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/pkg/errs"
	"dietboard/internal/pkg/guard"
)

var (
	ErrCreatePrescriptionCommandIsNotConstructed = errors.New(
		"CreatePrescriptionCommand must be created via NewCreatePrescriptionCommand constructor",
	)
)

// CreatePrescriptionCommand represents a clinician's request to prescribe a
// diet for a patient. Saving it creates the prescription and fans out one
// production order per targeted meal.
//
// Example:
//
//	prescriptionID := kernel.NewUUID()
//	cmd, err := NewCreatePrescriptionCommand(
//	    prescriptionID, patientID, diet.Soft, diet.LowSodium,
//	    "no added salt on tray", "dr.mendes", nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid prescription data: %w", err)
//	}
//
//	handler := NewCreatePrescriptionCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to save prescription: %w", err)
//	}
type CreatePrescriptionCommand struct { //nolint:recvcheck //using for validation
	prescriptionID kernel.UUID
	patientID      kernel.UUID
	dietBase       diet.Base
	dietModifier   diet.Modifier
	observations   string
	prescribedBy   string
	meals          []string

	guard guard.ConstructorGuard
}

// NewCreatePrescriptionCommand creates a command to prescribe a diet.
// The meals slice may be empty, in which case the kitchen's default fan-out
// (lunch and dinner) applies. Returns an error if any validation fails.
func NewCreatePrescriptionCommand(
	prescriptionID kernel.UUID,
	patientID kernel.UUID,
	dietBase diet.Base,
	dietModifier diet.Modifier,
	observations string,
	prescribedBy string,
	meals []string,
) (CreatePrescriptionCommand, error) {
	cmd := CreatePrescriptionCommand{
		observations: observations,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrescriptionID(prescriptionID),
		cmd.setPatientID(patientID),
		cmd.setDiet(dietBase, dietModifier),
		cmd.setPrescribedBy(prescribedBy),
		cmd.setMeals(meals),
	); err != nil {
		return CreatePrescriptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePrescriptionCommand) Validate() error {
	return c.guard.Validate(ErrCreatePrescriptionCommandIsNotConstructed)
}

// PrescriptionID returns the identifier assigned to the new prescription.
func (c CreatePrescriptionCommand) PrescriptionID() kernel.UUID {
	return c.prescriptionID
}

// PatientID returns the identifier of the patient the diet is for.
func (c CreatePrescriptionCommand) PatientID() kernel.UUID {
	return c.patientID
}

// DietBase returns the prescribed consistency category.
func (c CreatePrescriptionCommand) DietBase() diet.Base {
	return c.dietBase
}

// DietModifier returns the therapeutic adjustment, ModifierNone when absent.
func (c CreatePrescriptionCommand) DietModifier() diet.Modifier {
	return c.dietModifier
}

// Observations returns the clinician's free-text note.
func (c CreatePrescriptionCommand) Observations() string {
	return c.observations
}

// PrescribedBy returns the prescribing staff identifier.
func (c CreatePrescriptionCommand) PrescribedBy() string {
	return c.prescribedBy
}

// Meals returns the targeted meal labels, empty when defaults apply.
func (c CreatePrescriptionCommand) Meals() []string {
	meals := make([]string, len(c.meals))
	copy(meals, c.meals)
	return meals
}

func (c *CreatePrescriptionCommand) setPrescriptionID(prescriptionID kernel.UUID) error {
	if err := prescriptionID.Validate(); err != nil {
		return err
	}
	c.prescriptionID = prescriptionID
	return nil
}

func (c *CreatePrescriptionCommand) setPatientID(patientID kernel.UUID) error {
	if err := patientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("patient", err)
	}
	c.patientID = patientID
	return nil
}

func (c *CreatePrescriptionCommand) setDiet(base diet.Base, modifier diet.Modifier) error {
	if err := base.Validate(); err != nil {
		return err
	}
	if err := modifier.Validate(); err != nil {
		return err
	}
	c.dietBase = base
	c.dietModifier = modifier
	return nil
}

func (c *CreatePrescriptionCommand) setPrescribedBy(prescribedBy string) error {
	if prescribedBy == "" {
		return errs.NewValueIsRequiredError("prescribing staff")
	}
	c.prescribedBy = prescribedBy
	return nil
}

func (c *CreatePrescriptionCommand) setMeals(meals []string) error {
	for _, meal := range meals {
		if meal == "" {
			return errs.NewValueIsRequiredError("meal label")
		}
	}
	c.meals = make([]string, len(meals))
	copy(c.meals, meals)
	return nil
}
