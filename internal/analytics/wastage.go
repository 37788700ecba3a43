// internal/analytics/wastage.go
package analytics

import (
	"sort"
	"time"

	"github.com/iscsys/backend-go/internal/domain"
)

// topLossLimit bounds the top-loss ranking.
const topLossLimit = 5

// BuildWastageReport attributes loss value for the inclusive period
// [start, end] and projects the current month's run rate. The supplied
// collections must cover both the requested period and the current month;
// the engine filters per use. The wastage percent is monetary and guarded
// to [0, 100]: with no usage and no wastage it is zero, not a division
// fault. The monthly projection extrapolates month-to-date loss linearly
// across the full month using the injected clock.
func BuildWastageReport(wastage []domain.WastageEvent, deductions []domain.DeductionEvent, start, end string, now time.Time) domain.WastageReport {
	report := domain.WastageReport{
		TopLossItems: []domain.LossItem{},
		ByReason:     []domain.ReasonLoss{},
	}

	for _, d := range deductions {
		if inRange(d.Date, start, end) {
			report.TotalUsedCost += d.TotalCost
		}
	}

	type itemLoss struct {
		id   string
		name string
		qty  float64
		cost float64
	}
	byItem := make(map[string]*itemLoss)
	byReason := make(map[string]float64)

	monthStart := MonthStartOf(now)
	today := DateOf(now)

	for _, w := range wastage {
		if w.Date >= monthStart && w.Date <= today {
			report.MonthToDateLoss += w.CostLoss
		}
		if !inRange(w.Date, start, end) {
			continue
		}

		report.TotalWastedCost += w.CostLoss
		byReason[w.Reason] += w.CostLoss

		loss, ok := byItem[w.ItemID]
		if !ok {
			loss = &itemLoss{id: w.ItemID, name: w.ItemName}
			byItem[w.ItemID] = loss
		}
		loss.qty += w.Quantity
		loss.cost += w.CostLoss
	}

	if total := report.TotalWastedCost + report.TotalUsedCost; total > 0 {
		report.WastagePercent = report.TotalWastedCost / total * 100
	}

	daysElapsed := now.Day()
	if daysElapsed > 0 {
		report.ProjectedMonthlyLoss = report.MonthToDateLoss / float64(daysElapsed) * float64(daysInMonth(now))
	}

	for _, loss := range byItem {
		report.TopLossItems = append(report.TopLossItems, domain.LossItem{
			ItemID:   loss.id,
			Name:     loss.name,
			Quantity: loss.qty,
			Cost:     loss.cost,
		})
	}
	sort.SliceStable(report.TopLossItems, func(i, j int) bool {
		a, b := report.TopLossItems[i], report.TopLossItems[j]
		if a.Cost != b.Cost {
			return a.Cost > b.Cost
		}
		return a.Name < b.Name
	})
	if len(report.TopLossItems) > topLossLimit {
		report.TopLossItems = report.TopLossItems[:topLossLimit]
	}

	for reason, cost := range byReason {
		report.ByReason = append(report.ByReason, domain.ReasonLoss{Reason: reason, Cost: cost})
	}
	sort.SliceStable(report.ByReason, func(i, j int) bool {
		a, b := report.ByReason[i], report.ByReason[j]
		if a.Cost != b.Cost {
			return a.Cost > b.Cost
		}
		return a.Reason < b.Reason
	})

	return report
}
