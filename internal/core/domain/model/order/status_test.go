package order_test

import (
	"testing"

	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out of range status fails validation", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.StatusUnknown:   "Unknown",
		order.StatusNew:       "New",
		order.StatusPreparing: "Preparing",
		order.StatusReady:     "Ready",
		order.StatusDelivered: "Delivered",
		order.StatusCancelled: "Cancelled",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}

	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses every valid status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("Simmering")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects the Unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("Unknown")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.StatusNew.IsTerminal())
	assert.False(t, order.StatusPreparing.IsTerminal())
	assert.False(t, order.StatusReady.IsTerminal())
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	type edge struct {
		from order.Status
		to   order.Status
	}

	allowed := []edge{
		{order.StatusNew, order.StatusPreparing},
		{order.StatusNew, order.StatusCancelled},
		{order.StatusPreparing, order.StatusReady},
		{order.StatusPreparing, order.StatusCancelled},
		{order.StatusReady, order.StatusDelivered},
	}

	t.Run("permits every forward edge", func(t *testing.T) {
		for _, e := range allowed {
			result, err := e.from.TransitionTo(e.to)

			require.NoError(t, err, "%s -> %s", e.from, e.to)
			assert.Equal(t, e.to, result)
		}
	})

	t.Run("permits same-status re-application", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			result, err := status.TransitionTo(status)

			require.NoError(t, err, "%s -> %s", status, status)
			assert.Equal(t, status, result)
		}
	})

	t.Run("rejects every other edge", func(t *testing.T) {
		isAllowed := func(from, to order.Status) bool {
			if from == to {
				return true
			}
			for _, e := range allowed {
				if e.from == from && e.to == to {
					return true
				}
			}
			return false
		}

		for _, from := range order.AllStatuses() {
			for _, to := range order.AllStatuses() {
				if isAllowed(from, to) {
					continue
				}

				_, err := from.TransitionTo(to)

				require.Error(t, err, "%s -> %s should be rejected", from, to)
				require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
			}
		}
	})

	t.Run("rejects transitions involving unknown status", func(t *testing.T) {
		_, err := order.StatusUnknown.TransitionTo(order.StatusNew)
		require.Error(t, err)

		_, err = order.StatusNew.TransitionTo(order.StatusUnknown)
		require.Error(t, err)
	})

	t.Run("terminal statuses admit no outgoing edges", func(t *testing.T) {
		for _, terminal := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
			for _, to := range order.AllStatuses() {
				if to == terminal {
					continue
				}

				_, err := terminal.TransitionTo(to)

				require.Error(t, err, "%s -> %s should be rejected", terminal, to)
			}
		}
	})
}
