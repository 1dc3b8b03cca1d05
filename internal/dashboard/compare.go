package dashboard

import (
	"fmt"

	"github.com/chrisdamba/dishstats/internal/models"
)

// pctChange computes a period-over-period percentage delta. A zero
// previous period saturates to +100.0 (or 0.0 when the current period
// is also empty) instead of dividing by zero.
func pctChange(current, previous float64) models.ChangeStat {
	if previous == 0 {
		if current > 0 {
			return models.ChangeStat{Value: "+100.0", Trend: models.TrendUp}
		}
		return models.ChangeStat{Value: "0.0", Trend: models.TrendNone}
	}

	change := (current - previous) / previous * 100
	stat := models.ChangeStat{Value: fmt.Sprintf("%+.1f", change)}
	switch {
	case change > 0:
		stat.Trend = models.TrendUp
	case change < 0:
		stat.Trend = models.TrendDown
	default:
		stat.Trend = models.TrendNone
	}
	return stat
}

// Report backfills the order list, aggregates the current timeframe
// window, and annotates the headline figures (revenue, order count,
// average order value) with their deltas versus the immediately
// preceding window of equal length. Everything else in the bundle
// comes from the current window alone.
func (d *Dashboard) Report(timeframe string) models.DashboardData {
	orders := d.BackfillDates(d.Orders)

	var current, previous []models.Order
	for _, order := range orders {
		if d.InTimeframe(order, timeframe) {
			current = append(current, order)
		}
		if d.InPreviousPeriod(order, timeframe) {
			previous = append(previous, order)
		}
	}

	data := Aggregate(current)
	prevData := Aggregate(previous)

	data.RevenueChange = pctChange(data.TotalRevenue, prevData.TotalRevenue)
	data.OrdersChange = pctChange(float64(data.TotalOrders), float64(prevData.TotalOrders))
	data.AvgOrderValueChange = pctChange(data.AvgOrderValue, prevData.AvgOrderValue)
	return data
}
