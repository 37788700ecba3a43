// internal/analytics/ledger.go
package analytics

import (
	"sort"

	"github.com/iscsys/backend-go/internal/domain"
)

// BuildTruthTable reconciles opening and closing stock per item for the
// inclusive date range [start, end]. The current snapshot is the closing
// stock; the opening stock is reconstructed by adding back everything
// consumed or lost in the window. No purchase-in events exist in the data
// model, so Purchased is always zero and the reconstruction assumes no
// replenishment occurred in-window (a known modeling gap when restocking
// did happen mid-window).
//
// Rows are limited to items with in-range activity and sorted by highest
// wastage cost, then highest money burned. Totals cover the emitted rows
// only. A reversed range yields an empty table.
func BuildTruthTable(items []domain.InventoryItem, deductions []domain.DeductionEvent, wastage []domain.WastageEvent, start, end string, usage map[string]float64) domain.TruthTable {
	rows := make(map[string]*domain.TruthTableRow, len(items))
	for _, item := range items {
		rows[item.ID] = &domain.TruthTableRow{
			ItemID:       item.ID,
			Name:         item.Name,
			Category:     item.Category,
			Unit:         item.Unit,
			CostPerUnit:  item.CostPerUnit,
			OpeningStock: item.Quantity,
			ClosingStock: item.Quantity,
			AvgDaily:     usage[item.ID],
		}
	}

	for _, d := range deductions {
		if !inRange(d.Date, start, end) {
			continue
		}
		if row, ok := rows[d.ItemID]; ok {
			row.Used += d.Quantity
			row.OpeningStock += d.Quantity
		}
	}

	for _, w := range wastage {
		if !inRange(w.Date, start, end) {
			continue
		}
		if row, ok := rows[w.ItemID]; ok {
			row.Wasted += w.Quantity
			row.OpeningStock += w.Quantity
		}
	}

	table := domain.TruthTable{Rows: []domain.TruthTableRow{}}
	for _, row := range rows {
		if row.Used <= 0 && row.Wasted <= 0 {
			continue
		}
		row.MoneyBurned = (row.Used + row.Wasted) * row.CostPerUnit
		row.WastageCost = row.Wasted * row.CostPerUnit
		table.Rows = append(table.Rows, *row)
	}

	sort.SliceStable(table.Rows, func(i, j int) bool {
		a, b := table.Rows[i], table.Rows[j]
		if a.WastageCost != b.WastageCost {
			return a.WastageCost > b.WastageCost
		}
		if a.MoneyBurned != b.MoneyBurned {
			return a.MoneyBurned > b.MoneyBurned
		}
		return a.Name < b.Name
	})

	for _, row := range table.Rows {
		table.TotalMoneyBurned += row.MoneyBurned
		table.TotalWastageCost += row.WastageCost
	}

	return table
}
