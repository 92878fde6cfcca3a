// Package queries contains read operations for the CQRS architecture.
// Query handlers bypass the domain repositories and read with direct SQL,
// restoring aggregates only where a view needs domain behavior such as
// board partitioning.
package queries

import (
	"database/sql"
	"time"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// orderColumns is the select list shared by the order views. It matches
// the scan order in scanOrders.
const orderColumns = `
		id,
		prescription_id,
		patient_name,
		room,
		sector,
		diet_label,
		meal_label,
		notes,
		status,
		created_at,
		started_at,
		ready_at,
		delivered_at,
		cancelled_at,
		assigned_to,
		delivered_by,
		version`

// scanOrders restores order aggregates from rows selected with
// orderColumns. Restoring through the domain keeps the lifecycle
// consistency checks on the read path as well.
func scanOrders(rows *sql.Rows) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)

	for rows.Next() {
		var (
			id, prescriptionID                           uuid.UUID
			patientName, room, sector                    string
			dietLabel, mealLabel, notes                  string
			statusName                                   string
			createdAt                                    time.Time
			startedAt, readyAt, deliveredAt, cancelledAt sql.NullTime
			assignedTo, deliveredBy                      string
			version                                      int
		)

		err := rows.Scan(
			&id,
			&prescriptionID,
			&patientName,
			&room,
			&sector,
			&dietLabel,
			&mealLabel,
			&notes,
			&statusName,
			&createdAt,
			&startedAt,
			&readyAt,
			&deliveredAt,
			&cancelledAt,
			&assignedTo,
			&deliveredBy,
			&version,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		prescID, idErr := kernel.UUIDFromBytes(prescriptionID[:])
		if idErr != nil {
			return nil, idErr
		}
		status, stErr := order.StatusFromString(statusName)
		if stErr != nil {
			return nil, stErr
		}

		o, restoreErr := order.RestoreOrder(
			orderID,
			prescID,
			patientName,
			room,
			sector,
			dietLabel,
			mealLabel,
			notes,
			status,
			createdAt,
			timePtr(startedAt),
			timePtr(readyAt),
			timePtr(deliveredAt),
			timePtr(cancelledAt),
			assignedTo,
			deliveredBy,
			version,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// OrderResponse is the read model for a single kitchen order as the board
// and delivery views present it.
type OrderResponse struct {
	ID             kernel.UUID
	PrescriptionID kernel.UUID
	PatientName    string
	Room           string
	Sector         string
	DietLabel      string
	MealLabel      string
	Notes          string
	Status         string
	CreatedAt      time.Time
	StartedAt      *time.Time
	ReadyAt        *time.Time
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
	AssignedTo     string
	DeliveredBy    string
	Version        int
}

func newOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID(),
		PrescriptionID: o.PrescriptionID(),
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

func newOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, newOrderResponse(o))
	}
	return responses
}
