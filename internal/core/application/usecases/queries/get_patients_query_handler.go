package queries

import (
	"context"

	"dietboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPatientsQueryHandler retrieves patient reference data from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetPatientsQueryHandler struct {
	db *gorm.DB
}

// NewGetPatientsQueryHandler creates a handler for patient list queries.
// Requires a GORM database connection for query execution.
func NewGetPatientsQueryHandler(db *gorm.DB) GetPatientsQueryHandler {
	return GetPatientsQueryHandler{db: db}
}

// Handle executes the query to retrieve all patients.
// Returns patients sorted by room for a stable selection list.
func (h GetPatientsQueryHandler) Handle(
	ctx context.Context,
	query GetPatientsQuery,
) ([]GetPatientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	patients := make([]GetPatientsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			room,
			sector,
			allergies,
			current_diet
		FROM patients
		ORDER BY room, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pat GetPatientsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&pat.Name,
			&pat.Room,
			&pat.Sector,
			&pat.Allergies,
			&pat.CurrentDiet,
		)
		if err != nil {
			return nil, err
		}

		patientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pat.ID = patientID
		patients = append(patients, pat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return patients, nil
}
