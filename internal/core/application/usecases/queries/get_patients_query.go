package queries

import (
	"errors"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/pkg/guard"
)

var ErrGetPatientsQueryIsNotConstructed = errors.New(
	"GetPatientsQuery must be created via NewGetPatientsQuery constructor",
)

// GetPatientsQuery retrieves the admitted patients for the prescribe
// form's selection list.
type GetPatientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPatientsQuery creates a query to retrieve all patients.
func NewGetPatientsQuery() GetPatientsQuery {
	return GetPatientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPatientsQuery) Validate() error {
	return q.guard.Validate(ErrGetPatientsQueryIsNotConstructed)
}

// GetPatientsQueryResponse represents one admitted patient.
type GetPatientsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Room        string
	Sector      string
	Allergies   string
	CurrentDiet string
}
