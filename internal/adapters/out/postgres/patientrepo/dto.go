// Package patientrepo provides data transfer objects and mapping functions
// for patient reference data. Patients are owned by the admission system;
// this repository only reads (and seeds) them.
package patientrepo

import (
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/patient"

	"github.com/google/uuid"
)

// PatientDTO represents the database structure for patient reference rows.
type PatientDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Room        string
	Sector      string
	Allergies   string
	CurrentDiet string
}

// TableName specifies the database table name for patient entities.
func (PatientDTO) TableName() string {
	return "patients"
}

func fromDomain(p *patient.Patient) PatientDTO {
	return PatientDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Room:        p.Room(),
		Sector:      p.Sector(),
		Allergies:   p.Allergies(),
		CurrentDiet: p.CurrentDiet(),
	}
}

func toDomain(dto PatientDTO) (*patient.Patient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return patient.NewPatient(id, dto.Name, dto.Room, dto.Sector, dto.Allergies, dto.CurrentDiet)
}
