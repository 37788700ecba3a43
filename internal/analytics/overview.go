// internal/analytics/overview.go
package analytics

import (
	"time"

	"github.com/iscsys/backend-go/internal/domain"
)

// BuildOverview computes the headline metric block: total stock value and
// low/zero stock counts from the snapshot, consumed and wasted cost over
// the inclusive range [start, end], and month-to-date wastage loss anchored
// to the injected clock.
func BuildOverview(items []domain.InventoryItem, deductions []domain.DeductionEvent, wastage []domain.WastageEvent, start, end string, now time.Time) domain.Overview {
	overview := domain.Overview{TotalItems: len(items)}

	for _, item := range items {
		overview.TotalStockValue += item.Value()
		if item.IsLowStock() {
			overview.LowStockCount++
		}
		if item.Quantity == 0 {
			overview.ZeroStockCount++
		}
	}

	for _, d := range deductions {
		if inRange(d.Date, start, end) {
			overview.ConsumedCost += d.TotalCost
		}
	}

	monthStart := MonthStartOf(now)
	today := DateOf(now)
	for _, w := range wastage {
		if inRange(w.Date, start, end) {
			overview.WastedCost += w.CostLoss
		}
		if w.Date >= monthStart && w.Date <= today {
			overview.MonthToDateLoss += w.CostLoss
		}
	}

	return overview
}
