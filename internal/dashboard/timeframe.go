package dashboard

import (
	"time"

	"github.com/chrisdamba/dishstats/internal/models"
)

// Window is a closed date interval [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CurrentWindow maps a symbolic timeframe to its concrete date range
// anchored at now. Unknown timeframes fall back to today.
func CurrentWindow(timeframe string, now time.Time) Window {
	switch timeframe {
	case models.TimeframeWeek:
		return Window{Start: startOfDay(now.AddDate(0, 0, -7)), End: now}
	case models.TimeframeMonth:
		return Window{Start: startOfDay(now.AddDate(0, 0, -30)), End: now}
	default:
		return Window{Start: startOfDay(now), End: now}
	}
}

// PreviousWindow is the comparable period immediately before the
// current one: yesterday as a full day, or the preceding 7/30 days at
// day boundaries.
func PreviousWindow(timeframe string, now time.Time) Window {
	switch timeframe {
	case models.TimeframeWeek:
		return Window{
			Start: startOfDay(now.AddDate(0, 0, -14)),
			End:   startOfDay(now.AddDate(0, 0, -7)),
		}
	case models.TimeframeMonth:
		return Window{
			Start: startOfDay(now.AddDate(0, 0, -60)),
			End:   startOfDay(now.AddDate(0, 0, -30)),
		}
	default:
		yesterday := startOfDay(now.AddDate(0, 0, -1))
		return Window{
			Start: yesterday,
			End:   yesterday.Add(24*time.Hour - time.Millisecond),
		}
	}
}

// InTimeframe reports whether an order belongs to the current window.
// Undated orders always count toward the current period so demo data
// without timestamps still shows up on the dashboard.
func (d *Dashboard) InTimeframe(order models.Order, timeframe string) bool {
	if order.OrderDate == nil {
		return true
	}
	return CurrentWindow(timeframe, d.Now()).Contains(*order.OrderDate)
}

// InPreviousPeriod reports whether an order belongs to the previous
// window. Undated orders never do; only the current period gets the
// benefit of the doubt.
func (d *Dashboard) InPreviousPeriod(order models.Order, timeframe string) bool {
	if order.OrderDate == nil {
		return false
	}
	return PreviousWindow(timeframe, d.Now()).Contains(*order.OrderDate)
}
