package dashboard

import (
	"math/rand"
	"time"

	"github.com/chrisdamba/dishstats/internal/models"
)

// Dashboard is the analytics engine. It holds the full in-memory
// order list, a seeded random source (used only by the date backfill)
// and a clock, so every computation is reproducible in tests.
type Dashboard struct {
	Config *models.Config
	Orders []models.Order
	Rng    *rand.Rand
	Now    func() time.Time
}

func New(config *models.Config, orders []models.Order) *Dashboard {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	now := time.Now
	if !config.ReportTime.IsZero() {
		reportTime := config.ReportTime
		now = func() time.Time { return reportTime }
	}
	return &Dashboard{
		Config: config,
		Orders: orders,
		Rng:    rand.New(rand.NewSource(seed)),
		Now:    now,
	}
}
