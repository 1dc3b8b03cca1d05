package dashboard

import (
	"time"

	"github.com/chrisdamba/dishstats/internal/models"
)

// BackfillDates returns a copy of orders in which every order missing
// an order date gets a synthetic one, so untimed demo records become
// timeframe-filterable. The date depends on the order's position in
// the list: the most recent fifth is stamped today, the next fifth
// yesterday, and the rest land on a random day 2-29 days back, each
// pushed back a random number of hours and minutes. Orders that
// already carry a date pass through unchanged.
func (d *Dashboard) BackfillDates(orders []models.Order) []models.Order {
	now := d.Now()
	out := make([]models.Order, len(orders))
	for i, order := range orders {
		if order.OrderDate != nil {
			out[i] = order
			continue
		}

		position := float64(i) / float64(len(orders))
		var daysAgo int
		switch {
		case position < 0.2:
			daysAgo = 0
		case position < 0.4:
			daysAgo = 1
		default:
			daysAgo = 2 + d.Rng.Intn(28)
		}
		hoursAgo := d.Rng.Intn(24)
		minutesAgo := d.Rng.Intn(60)

		when := now.AddDate(0, 0, -daysAgo).
			Add(-time.Duration(hoursAgo)*time.Hour - time.Duration(minutesAgo)*time.Minute)
		order.OrderDate = &when
		out[i] = order
	}
	return out
}
