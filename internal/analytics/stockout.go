// internal/analytics/stockout.go
package analytics

import "github.com/iscsys/backend-go/internal/domain"

const (
	// restockHorizonDays flags items projected to run out within a week.
	restockHorizonDays = 7

	// criticalDays flags triage entries expected to empty within two days.
	criticalDays = 2

	// DisplayDaysLeftCap is the sentinel rendered for items with no usage
	// data. Display formatting only; the engine tracks the no-data state as
	// Projection.Unbounded.
	DisplayDaysLeftCap = 999
)

// Project estimates how long an item's current stock lasts at the given
// daily usage rate. A zero or missing rate produces an unbounded
// projection, never a division fault. Evaluated per item with no cross-item
// interaction.
func Project(item domain.InventoryItem, dailyUsage float64) domain.Projection {
	p := domain.Projection{Unbounded: true}
	if dailyUsage > 0 {
		p.DaysLeft = item.Quantity / dailyUsage
		p.Unbounded = false
	}

	p.NeedsRestock = item.Quantity <= item.MinStock ||
		(!p.Unbounded && p.DaysLeft <= restockHorizonDays)

	return p
}

// DisplayDaysLeft flattens a projection into the single figure dashboards
// show, using the cap for the unbounded state.
func DisplayDaysLeft(p domain.Projection) float64 {
	if p.Unbounded || p.DaysLeft >= DisplayDaysLeftCap {
		return DisplayDaysLeftCap
	}
	return p.DaysLeft
}
