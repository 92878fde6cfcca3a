// Package prescriptionrepo provides data transfer objects and mapping
// functions for prescription persistence.
package prescriptionrepo

import (
	"strings"
	"time"

	"dietboard/internal/core/domain/model/diet"
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/prescription"

	"github.com/google/uuid"
)

// mealSeparator joins meal labels into a single text column. Labels are
// free-form but short; a comma never appears in the seeded meal names.
const mealSeparator = ","

// PrescriptionDTO represents the database structure for persisting
// prescription aggregates. Diet base and modifier are stored as text, the
// same representation the composed label uses.
type PrescriptionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PatientID    uuid.UUID `gorm:"type:uuid;index"`
	DietBase     string
	DietModifier string
	Observations string
	PrescribedBy string
	PrescribedAt time.Time
	Meals        string
}

// TableName specifies the database table name for prescription entities.
func (PrescriptionDTO) TableName() string {
	return "prescriptions"
}

func fromDomain(p *prescription.Prescription) PrescriptionDTO {
	return PrescriptionDTO{
		ID:           p.ID().Bytes(),
		PatientID:    p.PatientID().Bytes(),
		DietBase:     p.DietBase().String(),
		DietModifier: p.DietModifier().String(),
		Observations: p.Observations(),
		PrescribedBy: p.PrescribedBy(),
		PrescribedAt: p.PrescribedAt(),
		Meals:        strings.Join(p.Meals(), mealSeparator),
	}
}

func toDomain(dto PrescriptionDTO) (*prescription.Prescription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	patientID, err := kernel.UUIDFromBytes(dto.PatientID[:])
	if err != nil {
		return nil, err
	}

	base, err := diet.BaseFromString(dto.DietBase)
	if err != nil {
		return nil, err
	}

	modifier, err := diet.ModifierFromString(dto.DietModifier)
	if err != nil {
		return nil, err
	}

	var meals []string
	if dto.Meals != "" {
		meals = strings.Split(dto.Meals, mealSeparator)
	}

	return prescription.RestorePrescription(
		id,
		patientID,
		base,
		modifier,
		dto.Observations,
		dto.PrescribedBy,
		dto.PrescribedAt,
		meals,
	)
}
