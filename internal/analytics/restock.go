// internal/analytics/restock.go
package analytics

import (
	"math"
	"sort"

	"github.com/iscsys/backend-go/internal/domain"
)

// coverageTargetDays sizes restock purchases to a two-week buffer.
const coverageTargetDays = 14

// BuildRestockPlan derives the canonical "what to buy now" list: for every
// item needing restock, the quantity that brings stock up to the 14-day
// coverage target. Items with no positive suggested quantity are dropped.
// Ranked soonest-to-empty first; items with no usage data sort last.
func BuildRestockPlan(items []domain.InventoryItem, usage map[string]float64) domain.RestockPlan {
	plan := domain.RestockPlan{Suggestions: []domain.RestockSuggestion{}}

	for _, item := range items {
		dailyUsage := usage[item.ID]
		proj := Project(item, dailyUsage)

		targetStock := dailyUsage * coverageTargetDays
		suggestedQty := math.Max(0, math.Ceil(targetStock-item.Quantity))
		if !proj.NeedsRestock || suggestedQty <= 0 {
			continue
		}

		plan.Suggestions = append(plan.Suggestions, domain.RestockSuggestion{
			ItemID:        item.ID,
			Name:          item.Name,
			Unit:          item.Unit,
			Quantity:      item.Quantity,
			MinStock:      item.MinStock,
			DailyUsage:    dailyUsage,
			DaysLeft:      proj.DaysLeft,
			Unbounded:     proj.Unbounded,
			SuggestedQty:  suggestedQty,
			SuggestedCost: suggestedQty * item.CostPerUnit,
		})
	}

	sort.SliceStable(plan.Suggestions, func(i, j int) bool {
		a, b := plan.Suggestions[i], plan.Suggestions[j]
		if a.Unbounded != b.Unbounded {
			return !a.Unbounded
		}
		return a.DaysLeft < b.DaysLeft
	})

	for _, s := range plan.Suggestions {
		plan.TotalCost += s.SuggestedCost
	}

	return plan
}

// BuildLowStockTriage ranks items already at or below their minimum stock.
// This is a deliberately separate policy from BuildRestockPlan: the reorder
// quantity clears the minimum-stock danger zone (max(minStock*2 - quantity,
// minStock)) rather than targeting future coverage, because it answers an
// urgency question, not a purchase-planning one.
func BuildLowStockTriage(items []domain.InventoryItem, usage map[string]float64) domain.LowStockTriage {
	triage := domain.LowStockTriage{Entries: []domain.TriageEntry{}}

	for _, item := range items {
		if !item.IsLowStock() {
			continue
		}

		dailyUsage := usage[item.ID]
		proj := Project(item, dailyUsage)
		reorderQty := math.Max(item.MinStock*2-item.Quantity, item.MinStock)

		triage.Entries = append(triage.Entries, domain.TriageEntry{
			ItemID:      item.ID,
			Name:        item.Name,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			MinStock:    item.MinStock,
			CostPerUnit: item.CostPerUnit,
			DailyUsage:  dailyUsage,
			DaysLeft:    proj.DaysLeft,
			Unbounded:   proj.Unbounded,
			ReorderQty:  reorderQty,
			ReorderCost: reorderQty * item.CostPerUnit,
			IsZero:      item.Quantity == 0,
			IsCritical:  !proj.Unbounded && proj.DaysLeft <= criticalDays,
		})
	}

	sort.SliceStable(triage.Entries, func(i, j int) bool {
		a, b := triage.Entries[i], triage.Entries[j]
		if a.Unbounded != b.Unbounded {
			return !a.Unbounded
		}
		return a.DaysLeft < b.DaysLeft
	})

	for _, e := range triage.Entries {
		triage.TotalReorderCost += e.ReorderCost
	}

	return triage
}
