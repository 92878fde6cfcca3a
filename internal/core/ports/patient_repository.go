package ports

import (
	"context"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/patient"
)

// PatientRepository defines read access to the patient reference data the
// admission system owns. This core never writes patients.
type PatientRepository interface {
	// Get retrieves a patient by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error)

	// GetAll retrieves all patients, for the prescribe form's selection
	// list.
	GetAll(ctx context.Context) ([]*patient.Patient, error)
}
