package patientrepo

import (
	"context"
	"errors"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/patient"
	"dietboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPatientRepository implements PatientRepository using GORM.
type GormPatientRepository struct {
	db *gorm.DB
}

// NewGormPatientRepository creates a new GORM patient repository.
func NewGormPatientRepository(db *gorm.DB) *GormPatientRepository {
	return &GormPatientRepository{db: db}
}

// Add inserts a patient reference row. The service itself never calls this;
// it exists for seeding and tests, standing in for the admission system
// that owns patient data.
func (r *GormPatientRepository) Add(ctx context.Context, aggregate *patient.Patient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a patient by ID.
func (r *GormPatientRepository) Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PatientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("patient", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all patients, sorted by room for a stable selection
// list.
func (r *GormPatientRepository) GetAll(ctx context.Context) ([]*patient.Patient, error) {
	var dtos []PatientDTO
	if err := r.db.WithContext(ctx).Order("room, name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	patients := make([]*patient.Patient, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}

	return patients, nil
}
