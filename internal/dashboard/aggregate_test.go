package dashboard

import (
	"testing"

	"github.com/chrisdamba/dishstats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateRevenueIsExact(t *testing.T) {
	// 0.1 + 0.2 must come out as exactly 0.3, not 0.30000000000000004.
	orders := []models.Order{
		{ID: 1, Items: []models.OrderItem{item("Ramen", 1, 0.1)}},
		{ID: 2, Items: []models.OrderItem{item("Tacos", 1, 0.2)}},
	}
	data := Aggregate(orders)
	assert.Equal(t, 0.3, data.TotalRevenue)
	assert.Equal(t, 2, data.TotalOrders)
	assert.Equal(t, 0.15, data.AvgOrderValue)
}

func TestAggregateEmptyInput(t *testing.T) {
	data := Aggregate(nil)
	assert.Zero(t, data.TotalRevenue)
	assert.Zero(t, data.TotalOrders)
	assert.Zero(t, data.AvgOrderValue, "average must be guarded, not NaN")
	assert.Empty(t, data.TopItems)
	assert.Empty(t, data.DeliveryPerformance)
	assert.Len(t, data.RevenueTrend, 7)
	for _, bucket := range data.RevenueTrend {
		assert.Zero(t, bucket.Revenue)
	}
}

func TestAggregateStatusCountsSumToTotal(t *testing.T) {
	orders := []models.Order{
		{ID: 1, OrderStatus: models.OrderStatusDelivered},
		{ID: 2, OrderStatus: models.OrderStatusDelivered},
		{ID: 3, OrderStatus: models.OrderStatusPending},
		{ID: 4, OrderStatus: models.OrderStatusInTransit},
	}
	data := Aggregate(orders)
	assert.Equal(t, 2, data.DeliveredOrders)
	assert.Equal(t, 1, data.PendingOrders)
	assert.Equal(t, 1, data.InTransitOrders)
	assert.Equal(t, data.TotalOrders, data.DeliveredOrders+data.PendingOrders+data.InTransitOrders)
}

func TestAggregateDistributionsAreFixedTables(t *testing.T) {
	orders := []models.Order{
		{ID: 1, OrderType: models.OrderTypeOnline, OrderStatus: models.OrderStatusDelivered},
		{ID: 2, OrderType: models.OrderTypeDineIn, OrderStatus: models.OrderStatusPending},
		{ID: 3, OrderType: models.OrderTypeOnline, OrderStatus: models.OrderStatusPending},
	}
	data := Aggregate(orders)

	require.Len(t, data.OrderTypeData, 2)
	assert.Equal(t, models.ChartSlice{Name: "Online", Value: 2, Color: "#8B5CF6"}, data.OrderTypeData[0])
	assert.Equal(t, models.ChartSlice{Name: "Dine In", Value: 1, Color: "#10B981"}, data.OrderTypeData[1])

	require.Len(t, data.StatusData, 3)
	assert.Equal(t, models.ChartSlice{Name: "Delivered", Value: 1, Color: "#10B981"}, data.StatusData[0])
	assert.Equal(t, models.ChartSlice{Name: "In Transit", Value: 0, Color: "#F59E0B"}, data.StatusData[1])
	assert.Equal(t, models.ChartSlice{Name: "Pending", Value: 2, Color: "#EF4444"}, data.StatusData[2])
}

func TestAggregateTopItems(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.OrderItem{
			item("Ramen", 3, 36.0),
			item("Tacos", 5, 46.5),
		}},
		{ID: 2, Items: []models.OrderItem{
			item("Ramen", 4, 48.0),
			item("Sushi Roll", 2, 29.0),
			item("Burrito", 1, 10.6),
			item("Tiramisu", 1, 6.4),
			item("Pad Thai", 1, 11.9),
		}},
	}
	data := Aggregate(orders)

	require.True(t, len(data.TopItems) <= 5)
	assert.Equal(t, "Ramen", data.TopItems[0].Name)
	assert.Equal(t, 7, data.TopItems[0].Quantity)
	assert.Equal(t, 84.0, data.TopItems[0].Revenue)
	assert.Equal(t, "Tacos", data.TopItems[1].Name)
	for i := 1; i < len(data.TopItems); i++ {
		assert.GreaterOrEqual(t, data.TopItems[i-1].Quantity, data.TopItems[i].Quantity)
	}
}

func TestAggregateTopItemsTieKeepsEncounterOrder(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.OrderItem{item("Tacos", 2, 18.6)}},
		{ID: 2, Items: []models.OrderItem{item("Ramen", 2, 24.0)}},
	}
	data := Aggregate(orders)
	require.Len(t, data.TopItems, 2)
	assert.Equal(t, "Tacos", data.TopItems[0].Name)
	assert.Equal(t, "Ramen", data.TopItems[1].Name)
}

func TestAggregateTopItemsIdempotentUnderReorder(t *testing.T) {
	a := []models.Order{
		{ID: 1, Items: []models.OrderItem{item("Ramen", 3, 36.0)}},
		{ID: 2, Items: []models.OrderItem{item("Tacos", 1, 9.3)}},
	}
	b := []models.Order{a[1], a[0]}

	dataA := Aggregate(a)
	dataB := Aggregate(b)
	assert.Equal(t, dataA.TopItems, dataB.TopItems)
}

func TestAggregateDeliveryPerformance(t *testing.T) {
	orders := []models.Order{
		{ID: 1, DeliveryPerson: "Maya"},
		{ID: 2, DeliveryPerson: "Noel"},
		{ID: 3, DeliveryPerson: "Maya"},
		{ID: 4, DeliveryPerson: ""}, // dine-in, no courier
	}
	data := Aggregate(orders)

	require.Len(t, data.DeliveryPerformance, 2, "empty courier names are excluded")
	assert.Equal(t, models.CourierStat{Name: "Maya", Deliveries: 2}, data.DeliveryPerformance[0])
	assert.Equal(t, models.CourierStat{Name: "Noel", Deliveries: 1}, data.DeliveryPerformance[1])
}

func TestAggregateRevenueTrendWeights(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.OrderItem{item("Ramen", 1, 100.0)}},
	}
	data := Aggregate(orders)

	require.Len(t, data.RevenueTrend, 7)
	want := []models.DayRevenue{
		{Day: "Mon", Revenue: 12.0},
		{Day: "Tue", Revenue: 15.0},
		{Day: "Wed", Revenue: 18.0},
		{Day: "Thu", Revenue: 14.0},
		{Day: "Fri", Revenue: 16.0},
		{Day: "Sat", Revenue: 13.0},
		{Day: "Sun", Revenue: 12.0},
	}
	for i, bucket := range data.RevenueTrend {
		assert.Equal(t, want[i].Day, bucket.Day)
		assert.InDelta(t, want[i].Revenue, bucket.Revenue, 1e-9)
	}

	total := 0.0
	for _, bucket := range data.RevenueTrend {
		total += bucket.Revenue
	}
	assert.InDelta(t, data.TotalRevenue, total, 1e-9, "weights sum to 1.00")
}
