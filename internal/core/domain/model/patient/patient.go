package patient

import (
	"errors"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/pkg/errs"
)

// ErrPatientIsNotConstructed is returned when a Patient instance was not
// created through the NewPatient factory method.
var ErrPatientIsNotConstructed = errors.New("Patient must be created via NewPatient constructor")

// Patient is reference data owned by the hospital's admission system. The
// diet-order core only reads it: when a prescription is saved the patient's
// name, room, and sector are snapshotted onto the generated orders.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name, room, and sector are required
//   - Allergy note and current-diet summary are optional free text
type Patient struct {
	id          kernel.UUID
	name        string
	room        string
	sector      string
	allergies   string
	currentDiet string

	isConstructed bool
}

// NewPatient creates a Patient reference entity with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (required)
//   - room: room/bed code such as "201-A" (required)
//   - sector: care sector such as "ICU" (required)
//   - allergies: optional free-text allergy note
//   - currentDiet: optional summary of the diet currently served
func NewPatient(id kernel.UUID, name, room, sector, allergies, currentDiet string) (*Patient, error) {
	p := &Patient{
		allergies:     allergies,
		currentDiet:   currentDiet,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setRoom(room),
		p.setSector(sector),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Patient was constructed through NewPatient.
func (p *Patient) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPatientIsNotConstructed
	}
	return nil
}

// IsEqual compares two patients by identifier.
func (p *Patient) IsEqual(other *Patient) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the patient's unique identifier.
func (p *Patient) ID() kernel.UUID {
	return p.id
}

// Name returns the patient's display name.
func (p *Patient) Name() string {
	return p.name
}

// Room returns the room/bed code.
func (p *Patient) Room() string {
	return p.room
}

// Sector returns the care sector the patient is admitted to.
func (p *Patient) Sector() string {
	return p.sector
}

// Allergies returns the free-text allergy note, empty when none recorded.
func (p *Patient) Allergies() string {
	return p.allergies
}

// CurrentDiet returns the current-diet summary, empty when none recorded.
func (p *Patient) CurrentDiet() string {
	return p.currentDiet
}

func (p *Patient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Patient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("patient name")
	}
	p.name = name
	return nil
}

func (p *Patient) setRoom(room string) error {
	if room == "" {
		return errs.NewValueIsRequiredError("patient room")
	}
	p.room = room
	return nil
}

func (p *Patient) setSector(sector string) error {
	if sector == "" {
		return errs.NewValueIsRequiredError("patient sector")
	}
	p.sector = sector
	return nil
}
