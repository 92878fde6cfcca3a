package ports

import (
	"context"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/prescription"
)

// PrescriptionRepository defines the persistence contract for prescription
// aggregates. Prescriptions are write-once, so there is no update method.
type PrescriptionRepository interface {
	// Add persists a new prescription.
	Add(ctx context.Context, aggregate *prescription.Prescription) error

	// Get retrieves a prescription by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*prescription.Prescription, error)
}
