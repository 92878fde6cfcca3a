package prescription

import (
	"errors"
	"time"

	"dietboard/internal/core/domain/model/diet"
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/pkg/errs"
)

// ErrPrescriptionIsNotConstructed is returned when a Prescription instance
// was not created through NewPrescription or RestorePrescription.
var ErrPrescriptionIsNotConstructed = errors.New("Prescription must be created via NewPrescription constructor")

// DefaultMeals returns the meals a prescription targets when the clinician
// does not name any: the kitchen produces one order for lunch and one for
// dinner.
func DefaultMeals() []string {
	return []string{"Lunch", "Dinner"}
}

// Prescription is a clinician's diet directive for a patient. It is created
// once and never mutated afterwards; amendments are represented as new
// prescriptions. Saving a prescription fans out into one production order
// per targeted meal.
//
// Invariants:
//   - Must have valid unique and patient identifiers
//   - Diet base must be a valid catalog value
//   - Diet modifier must be a valid catalog value (ModifierNone allowed)
//   - Prescribing staff identifier is required
//   - Targets at least one meal, each with a non-empty label
type Prescription struct {
	id           kernel.UUID
	patientID    kernel.UUID
	dietBase     diet.Base
	dietModifier diet.Modifier
	observations string
	prescribedBy string
	prescribedAt time.Time
	meals        []string

	isConstructed bool
}

// NewPrescription creates a Prescription with validation. The meals slice
// may be nil or empty, in which case DefaultMeals applies.
func NewPrescription(
	id kernel.UUID,
	patientID kernel.UUID,
	dietBase diet.Base,
	dietModifier diet.Modifier,
	observations string,
	prescribedBy string,
	prescribedAt time.Time,
	meals []string,
) (*Prescription, error) {
	if len(meals) == 0 {
		meals = DefaultMeals()
	}

	p := &Prescription{
		observations:  observations,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setPatientID(patientID),
		p.setDiet(dietBase, dietModifier),
		p.setPrescribedBy(prescribedBy),
		p.setPrescribedAt(prescribedAt),
		p.setMeals(meals),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePrescription reconstructs a Prescription from persistence. It runs
// the same validation as NewPrescription.
func RestorePrescription(
	id kernel.UUID,
	patientID kernel.UUID,
	dietBase diet.Base,
	dietModifier diet.Modifier,
	observations string,
	prescribedBy string,
	prescribedAt time.Time,
	meals []string,
) (*Prescription, error) {
	return NewPrescription(id, patientID, dietBase, dietModifier, observations, prescribedBy, prescribedAt, meals)
}

// Validate ensures the Prescription was constructed through its factory.
func (p *Prescription) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPrescriptionIsNotConstructed
	}
	return nil
}

// IsEqual compares two prescriptions by identifier.
func (p *Prescription) IsEqual(other *Prescription) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the prescription's unique identifier.
func (p *Prescription) ID() kernel.UUID {
	return p.id
}

// PatientID returns the identifier of the patient the diet is for.
func (p *Prescription) PatientID() kernel.UUID {
	return p.patientID
}

// DietBase returns the prescribed consistency category.
func (p *Prescription) DietBase() diet.Base {
	return p.dietBase
}

// DietModifier returns the therapeutic adjustment, ModifierNone when absent.
func (p *Prescription) DietModifier() diet.Modifier {
	return p.dietModifier
}

// DietLabel returns the composed display label, e.g. "Soft + Low-Sodium".
func (p *Prescription) DietLabel() string {
	return diet.ComposeLabel(p.dietBase, p.dietModifier)
}

// Observations returns the clinician's free-text note, empty when none.
func (p *Prescription) Observations() string {
	return p.observations
}

// PrescribedBy returns the prescribing staff identifier.
func (p *Prescription) PrescribedBy() string {
	return p.prescribedBy
}

// PrescribedAt returns the creation timestamp.
func (p *Prescription) PrescribedAt() time.Time {
	return p.prescribedAt
}

// Meals returns a copy of the targeted meal labels.
func (p *Prescription) Meals() []string {
	meals := make([]string, len(p.meals))
	copy(meals, p.meals)
	return meals
}

func (p *Prescription) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Prescription) setPatientID(patientID kernel.UUID) error {
	if err := patientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("patient", err)
	}
	p.patientID = patientID
	return nil
}

func (p *Prescription) setDiet(base diet.Base, modifier diet.Modifier) error {
	if err := base.Validate(); err != nil {
		return err
	}
	if err := modifier.Validate(); err != nil {
		return err
	}
	p.dietBase = base
	p.dietModifier = modifier
	return nil
}

func (p *Prescription) setPrescribedBy(prescribedBy string) error {
	if prescribedBy == "" {
		return errs.NewValueIsRequiredError("prescribing staff")
	}
	p.prescribedBy = prescribedBy
	return nil
}

func (p *Prescription) setPrescribedAt(prescribedAt time.Time) error {
	if prescribedAt.IsZero() {
		return errs.NewValueIsRequiredError("prescription timestamp")
	}
	p.prescribedAt = prescribedAt
	return nil
}

func (p *Prescription) setMeals(meals []string) error {
	for _, meal := range meals {
		if meal == "" {
			return errs.NewValueIsRequiredError("meal label")
		}
	}
	p.meals = make([]string, len(meals))
	copy(p.meals, meals)
	return nil
}
