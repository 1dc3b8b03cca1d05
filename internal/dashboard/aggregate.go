package dashboard

import (
	"sort"

	"github.com/chrisdamba/dishstats/internal/models"
	"github.com/shopspring/decimal"
)

// The weekly trend chart splits total revenue across fixed weights
// rather than grouping by calendar day. The weights sum to 1.00 and
// are a display contract with the chart layer.
var trendWeights = []struct {
	day    string
	weight float64
}{
	{"Mon", 0.12},
	{"Tue", 0.15},
	{"Wed", 0.18},
	{"Thu", 0.14},
	{"Fri", 0.16},
	{"Sat", 0.13},
	{"Sun", 0.12},
}

const topItemLimit = 5

// Aggregate reduces a set of orders into the dashboard metrics
// bundle: revenue totals, status counts, distributions and rankings.
// Revenue is accumulated in decimals so the total is exact. The
// comparison fields of the result are left zero; Report fills them.
func Aggregate(orders []models.Order) models.DashboardData {
	type itemAgg struct {
		quantity int
		revenue  decimal.Decimal
	}

	totalRevenue := decimal.Zero
	var delivered, pending, inTransit int
	var online, dineIn int
	itemSales := make(map[string]*itemAgg)
	var itemNames []string // first-encounter order, keeps ties stable
	courierCounts := make(map[string]int)
	var courierNames []string

	for _, order := range orders {
		for _, item := range order.Items {
			totalRevenue = totalRevenue.Add(decimal.NewFromFloat(item.TotalPrice))
			agg, ok := itemSales[item.Name]
			if !ok {
				agg = &itemAgg{}
				itemSales[item.Name] = agg
				itemNames = append(itemNames, item.Name)
			}
			agg.quantity += item.Quantity
			agg.revenue = agg.revenue.Add(decimal.NewFromFloat(item.TotalPrice))
		}

		switch order.OrderStatus {
		case models.OrderStatusDelivered:
			delivered++
		case models.OrderStatusPending:
			pending++
		case models.OrderStatusInTransit:
			inTransit++
		}

		switch order.OrderType {
		case models.OrderTypeOnline:
			online++
		case models.OrderTypeDineIn:
			dineIn++
		}

		if order.DeliveryPerson != "" {
			if _, ok := courierCounts[order.DeliveryPerson]; !ok {
				courierNames = append(courierNames, order.DeliveryPerson)
			}
			courierCounts[order.DeliveryPerson]++
		}
	}

	revenue, _ := totalRevenue.Float64()
	totalOrders := len(orders)
	avgOrderValue := 0.0
	if totalOrders > 0 {
		avgOrderValue = revenue / float64(totalOrders)
	}

	topItems := make([]models.ItemSales, 0, len(itemNames))
	for _, name := range itemNames {
		itemRevenue, _ := itemSales[name].revenue.Float64()
		topItems = append(topItems, models.ItemSales{
			Name:     name,
			Quantity: itemSales[name].quantity,
			Revenue:  itemRevenue,
		})
	}
	sort.SliceStable(topItems, func(i, j int) bool {
		return topItems[i].Quantity > topItems[j].Quantity
	})
	if len(topItems) > topItemLimit {
		topItems = topItems[:topItemLimit]
	}

	deliveryPerformance := make([]models.CourierStat, 0, len(courierNames))
	for _, name := range courierNames {
		deliveryPerformance = append(deliveryPerformance, models.CourierStat{
			Name:       name,
			Deliveries: courierCounts[name],
		})
	}
	sort.SliceStable(deliveryPerformance, func(i, j int) bool {
		return deliveryPerformance[i].Deliveries > deliveryPerformance[j].Deliveries
	})

	revenueTrend := make([]models.DayRevenue, 0, len(trendWeights))
	for _, bucket := range trendWeights {
		revenueTrend = append(revenueTrend, models.DayRevenue{
			Day:     bucket.day,
			Revenue: revenue * bucket.weight,
		})
	}

	return models.DashboardData{
		TotalRevenue:    revenue,
		TotalOrders:     totalOrders,
		AvgOrderValue:   avgOrderValue,
		DeliveredOrders: delivered,
		PendingOrders:   pending,
		InTransitOrders: inTransit,
		OrderTypeData: []models.ChartSlice{
			{Name: models.OrderTypeOnline, Value: online, Color: models.ColorOnline},
			{Name: models.OrderTypeDineIn, Value: dineIn, Color: models.ColorDineIn},
		},
		TopItems:            topItems,
		DeliveryPerformance: deliveryPerformance,
		StatusData: []models.ChartSlice{
			{Name: models.OrderStatusDelivered, Value: delivered, Color: models.ColorDelivered},
			{Name: models.OrderStatusInTransit, Value: inTransit, Color: models.ColorInTransit},
			{Name: models.OrderStatusPending, Value: pending, Color: models.ColorPending},
		},
		RevenueTrend: revenueTrend,
	}
}
