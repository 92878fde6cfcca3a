package services_test

import (
	"fmt"
	"testing"
	"time"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(t *testing.T, patientName string, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		patientName, "201-A", "Ward A", "Soft", "Lunch", "",
		time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)

	clock := o.CreatedAt()
	advance := func(target order.Status, actor string) {
		clock = clock.Add(time.Minute)
		require.NoError(t, o.TransitionTo(target, actor, clock))
	}

	switch status {
	case order.StatusNew:
	case order.StatusPreparing:
		advance(order.StatusPreparing, "Team 1")
	case order.StatusReady:
		advance(order.StatusPreparing, "Team 1")
		advance(order.StatusReady, "")
	case order.StatusDelivered:
		advance(order.StatusPreparing, "Team 1")
		advance(order.StatusReady, "")
		advance(order.StatusDelivered, "Sandra")
	case order.StatusCancelled:
		advance(order.StatusCancelled, "")
	case order.StatusUnknown:
		t.Fatalf("cannot build order in unknown status")
	}

	return o
}

func TestBoard_PartitionByStatus(t *testing.T) {
	board := services.NewBoard()

	t.Run("groups orders into columns in pipeline order", func(t *testing.T) {
		orders := []*order.Order{
			makeOrder(t, "patient-1", order.StatusNew),
			makeOrder(t, "patient-2", order.StatusReady),
			makeOrder(t, "patient-3", order.StatusNew),
			makeOrder(t, "patient-4", order.StatusPreparing),
			makeOrder(t, "patient-5", order.StatusDelivered),
			makeOrder(t, "patient-6", order.StatusCancelled),
		}

		columns := board.PartitionByStatus(orders)

		require.Len(t, columns, 5)
		assert.Equal(t, order.StatusNew, columns[0].Status)
		assert.Equal(t, order.StatusPreparing, columns[1].Status)
		assert.Equal(t, order.StatusReady, columns[2].Status)
		assert.Equal(t, order.StatusDelivered, columns[3].Status)
		assert.Equal(t, order.StatusCancelled, columns[4].Status)

		assert.Equal(t, 2, columns[0].Count())
		assert.Equal(t, 1, columns[1].Count())
		assert.Equal(t, 1, columns[2].Count())
		assert.Equal(t, 1, columns[3].Count())
		assert.Equal(t, 1, columns[4].Count())
	})

	t.Run("partition is stable within each column", func(t *testing.T) {
		var orders []*order.Order
		for i := range 10 {
			status := order.StatusNew
			if i%2 == 0 {
				status = order.StatusPreparing
			}
			orders = append(orders, makeOrder(t, fmt.Sprintf("patient-%d", i), status))
		}

		columns := board.PartitionByStatus(orders)

		index := func(o *order.Order) int {
			for i, candidate := range orders {
				if candidate.IsEqual(o) {
					return i
				}
			}
			t.Fatalf("order not found in input")
			return -1
		}

		for _, col := range columns {
			prev := -1
			for _, o := range col.Orders {
				pos := index(o)
				assert.Greater(t, pos, prev, "column %s reordered its orders", col.Status)
				prev = pos
			}
		}
	})

	t.Run("concatenated columns are a permutation of the input", func(t *testing.T) {
		orders := []*order.Order{
			makeOrder(t, "patient-1", order.StatusReady),
			makeOrder(t, "patient-2", order.StatusNew),
			makeOrder(t, "patient-3", order.StatusCancelled),
		}

		columns := board.PartitionByStatus(orders)

		var total int
		seen := make(map[string]bool)
		for _, col := range columns {
			for _, o := range col.Orders {
				total++
				seen[o.ID().String()] = true
			}
		}
		assert.Equal(t, len(orders), total)
		for _, o := range orders {
			assert.True(t, seen[o.ID().String()])
		}
	})

	t.Run("empty input yields five empty columns", func(t *testing.T) {
		columns := board.PartitionByStatus(nil)

		require.Len(t, columns, 5)
		for _, col := range columns {
			assert.Zero(t, col.Count())
		}
	})
}

func TestBoard_PartitionForDelivery(t *testing.T) {
	board := services.NewBoard()

	t.Run("splits ready orders by in-transit membership", func(t *testing.T) {
		first := makeOrder(t, "patient-1", order.StatusReady)
		second := makeOrder(t, "patient-2", order.StatusReady)

		queue := board.PartitionForDelivery(
			[]*order.Order{first, second},
			[]kernel.UUID{first.ID()},
		)

		require.Len(t, queue.AwaitingPickup, 1)
		require.Len(t, queue.InTransit, 1)
		assert.True(t, queue.AwaitingPickup[0].IsEqual(second))
		assert.True(t, queue.InTransit[0].IsEqual(first))
	})

	t.Run("ignores orders that are not ready", func(t *testing.T) {
		preparing := makeOrder(t, "patient-1", order.StatusPreparing)
		delivered := makeOrder(t, "patient-2", order.StatusDelivered)
		ready := makeOrder(t, "patient-3", order.StatusReady)

		queue := board.PartitionForDelivery(
			[]*order.Order{preparing, delivered, ready},
			nil,
		)

		require.Len(t, queue.AwaitingPickup, 1)
		assert.Empty(t, queue.InTransit)
		assert.True(t, queue.AwaitingPickup[0].IsEqual(ready))
	})

	t.Run("unknown in-transit IDs are ignored", func(t *testing.T) {
		ready := makeOrder(t, "patient-1", order.StatusReady)

		queue := board.PartitionForDelivery(
			[]*order.Order{ready},
			[]kernel.UUID{kernel.NewUUID()},
		)

		require.Len(t, queue.AwaitingPickup, 1)
		assert.Empty(t, queue.InTransit)
	})
}
