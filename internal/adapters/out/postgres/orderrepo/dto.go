// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is stored as text so the rows stay readable in ad-hoc
// queries; the version column backs the optimistic concurrency check on
// updates.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PrescriptionID uuid.UUID `gorm:"type:uuid;index"`
	PatientName    string
	Room           string
	Sector         string
	DietLabel      string
	MealLabel      string
	Notes          string
	Status         string `gorm:"index"`
	CreatedAt      time.Time
	StartedAt      *time.Time
	ReadyAt        *time.Time
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
	AssignedTo     string
	DeliveredBy    string
	Version        int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID().Bytes(),
		PrescriptionID: o.PrescriptionID().Bytes(),
		PatientName:    o.PatientName(),
		Room:           o.Room(),
		Sector:         o.Sector(),
		DietLabel:      o.DietLabel(),
		MealLabel:      o.MealLabel(),
		Notes:          o.Notes(),
		Status:         o.Status().String(),
		CreatedAt:      o.CreatedAt(),
		StartedAt:      o.StartedAt(),
		ReadyAt:        o.ReadyAt(),
		DeliveredAt:    o.DeliveredAt(),
		CancelledAt:    o.CancelledAt(),
		AssignedTo:     o.AssignedTo(),
		DeliveredBy:    o.DeliveredBy(),
		Version:        o.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate, lifecycle stamps included, using
// RestoreOrder so that persisted rows pass the same consistency checks the
// engine enforces on writes.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	prescriptionID, err := kernel.UUIDFromBytes(dto.PrescriptionID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		prescriptionID,
		dto.PatientName,
		dto.Room,
		dto.Sector,
		dto.DietLabel,
		dto.MealLabel,
		dto.Notes,
		status,
		dto.CreatedAt,
		dto.StartedAt,
		dto.ReadyAt,
		dto.DeliveredAt,
		dto.CancelledAt,
		dto.AssignedTo,
		dto.DeliveredBy,
		dto.Version,
	)
}
