package dashboard

import (
	"testing"
	"time"

	"github.com/chrisdamba/dishstats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func undatedOrders(n int) []models.Order {
	orders := make([]models.Order, n)
	for i := range orders {
		orders[i] = models.Order{ID: i + 1, CustomerName: "Customer"}
	}
	return orders
}

func TestBackfillStampsEveryOrder(t *testing.T) {
	orders := undatedOrders(10)
	d := testDashboard(orders, fixedNow)

	out := d.BackfillDates(orders)

	require.Len(t, out, len(orders))
	for i, order := range out {
		require.NotNil(t, order.OrderDate, "order %d must be stamped", i)
		assert.Equal(t, orders[i].ID, order.ID, "sequence order preserved")
	}
}

func TestBackfillDoesNotMutateInput(t *testing.T) {
	orders := undatedOrders(5)
	d := testDashboard(orders, fixedNow)

	_ = d.BackfillDates(orders)

	for i, order := range orders {
		assert.Nil(t, order.OrderDate, "input order %d must stay untouched", i)
	}
}

func TestBackfillPassesThroughDatedOrders(t *testing.T) {
	when := fixedNow.AddDate(0, 0, -3)
	orders := []models.Order{datedOrder(1, "Anna", when, item("Ramen", 1, 12.0))}
	d := testDashboard(orders, fixedNow)

	out := d.BackfillDates(orders)
	require.NotNil(t, out[0].OrderDate)
	assert.True(t, out[0].OrderDate.Equal(when), "existing timestamps are untouched")
}

// Position buckets: the first fifth lands on the current day, the
// next fifth one day back, the rest 2-29 days back. The random
// hour/minute offset can cross one extra midnight, so assertions use
// day ranges rather than exact days.
func TestBackfillPositionBuckets(t *testing.T) {
	orders := undatedOrders(100)
	d := testDashboard(orders, fixedNow)

	out := d.BackfillDates(orders)

	for i, order := range out {
		age := fixedNow.Sub(*order.OrderDate)
		require.True(t, age >= 0, "order %d dated in the future", i)
		position := float64(i) / float64(len(out))
		switch {
		case position < 0.2:
			assert.LessOrEqual(t, age, 24*time.Hour, "order %d should be from today", i)
		case position < 0.4:
			assert.GreaterOrEqual(t, age, 24*time.Hour, "order %d", i)
			assert.LessOrEqual(t, age, 48*time.Hour, "order %d should be from yesterday", i)
		default:
			assert.GreaterOrEqual(t, age, 48*time.Hour, "order %d", i)
			assert.LessOrEqual(t, age, 30*24*time.Hour, "order %d", i)
		}
	}
}

func TestBackfillIsDeterministicForSeed(t *testing.T) {
	orders := undatedOrders(30)

	a := testDashboard(orders, fixedNow).BackfillDates(orders)
	b := testDashboard(orders, fixedNow).BackfillDates(orders)

	require.Len(t, b, len(a))
	for i := range a {
		assert.True(t, a[i].OrderDate.Equal(*b[i].OrderDate), "order %d differs between runs", i)
	}
}
