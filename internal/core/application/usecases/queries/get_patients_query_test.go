package queries_test

import (
	"testing"

	"dietboard/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPatientsQuery_Valid(t *testing.T) {
	query := queries.NewGetPatientsQuery()
	require.NoError(t, query.Validate())
}

func TestGetPatientsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPatientsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPatientsQueryIsNotConstructed)
}
