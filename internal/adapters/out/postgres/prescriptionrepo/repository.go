package prescriptionrepo

import (
	"context"
	"errors"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/prescription"
	"dietboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPrescriptionRepository implements PrescriptionRepository using GORM.
// Prescriptions are write-once; the repository has no update path.
type GormPrescriptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPrescriptionRepository creates a new GORM prescription repository.
func NewGormPrescriptionRepository(db *gorm.DB, tracker aggregateTracker) *GormPrescriptionRepository {
	return &GormPrescriptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new prescription to the database.
func (r *GormPrescriptionRepository) Add(ctx context.Context, aggregate *prescription.Prescription) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a prescription by ID.
func (r *GormPrescriptionRepository) Get(ctx context.Context, id kernel.UUID) (*prescription.Prescription, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrescriptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("prescription", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
