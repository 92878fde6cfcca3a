package commands_test

import (
	"testing"

	"dietboard/internal/core/application/usecases/commands"
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderCommand(id, order.StatusPreparing, "Team 1")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.StatusPreparing, cmd.Target())
	assert.Equal(t, "Team 1", cmd.Actor())
	assert.NoError(t, cmd.Validate())
}

func TestNewTransitionOrderCommand_EmptyActorAllowed(t *testing.T) {
	cmd, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.StatusReady, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Actor())
}

func TestNewTransitionOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.UUID{}, order.StatusPreparing, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewTransitionOrderCommand_InvalidTarget(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.StatusUnknown, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTransitionOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.TransitionOrderCommand{}
	require.Error(t, cmd.Validate())
}
