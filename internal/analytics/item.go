// internal/analytics/item.go
package analytics

import (
	"sort"
	"time"

	"github.com/iscsys/backend-go/internal/domain"
)

// itemTrendDays is the length of the per-item daily movement series.
const itemTrendDays = 30

// BuildItemActivity computes the drilldown view for a single item: total
// used/wasted quantities and costs over the supplied history, a trailing
// 30-day daily series ending today, the 30-day average usage with its
// stockout projection, the used-vs-wasted quantity split and a per-item
// loss-by-reason breakdown. Events for other items are ignored.
func BuildItemActivity(item domain.InventoryItem, deductions []domain.DeductionEvent, wastage []domain.WastageEvent, now time.Time) domain.ItemActivity {
	activity := domain.ItemActivity{
		ItemID:   item.ID,
		Series:   make([]domain.DailyActivity, 0, itemTrendDays),
		ByReason: []domain.ReasonLoss{},
	}

	usedByDate := make(map[string]float64)
	wastedByDate := make(map[string]float64)
	byReason := make(map[string]float64)

	for _, d := range deductions {
		if d.ItemID != item.ID {
			continue
		}
		activity.TotalUsed += d.Quantity
		activity.TotalUsedCost += d.TotalCost
		usedByDate[d.Date] += d.Quantity
	}

	for _, w := range wastage {
		if w.ItemID != item.ID {
			continue
		}
		activity.TotalWasted += w.Quantity
		activity.TotalWastedCost += w.CostLoss
		wastedByDate[w.Date] += w.Quantity
		byReason[w.Reason] += w.CostLoss
	}

	for i := itemTrendDays - 1; i >= 0; i-- {
		date := DateOf(now.AddDate(0, 0, -i))
		activity.Series = append(activity.Series, domain.DailyActivity{
			Date:   date,
			Used:   usedByDate[date],
			Wasted: wastedByDate[date],
		})
	}

	activity.AvgDailyUsage = activity.TotalUsed / itemTrendDays
	proj := Project(item, activity.AvgDailyUsage)
	activity.DaysLeft = proj.DaysLeft
	activity.Unbounded = proj.Unbounded

	// Quantity-based split; with no movement at all the item counts as
	// fully used, matching how the drilldown renders an idle item.
	if movement := activity.TotalUsed + activity.TotalWasted; movement > 0 {
		activity.UsagePercent = activity.TotalUsed / movement * 100
		activity.WastagePercent = activity.TotalWasted / movement * 100
	} else {
		activity.UsagePercent = 100
	}

	for reason, cost := range byReason {
		activity.ByReason = append(activity.ByReason, domain.ReasonLoss{Reason: reason, Cost: cost})
	}
	sort.SliceStable(activity.ByReason, func(i, j int) bool {
		a, b := activity.ByReason[i], activity.ByReason[j]
		if a.Cost != b.Cost {
			return a.Cost > b.Cost
		}
		return a.Reason < b.Reason
	})

	return activity
}
