// internal/analytics/normalizer.go
package analytics

import "github.com/iscsys/backend-go/internal/domain"

// Normalize converts deduction and wastage records into the common stock
// event shape. The item snapshot supplies the unit for display joins and a
// cost fallback for events recorded without a cost snapshot. Pure function;
// input order is preserved (deductions first, then wastage).
func Normalize(items []domain.InventoryItem, deductions []domain.DeductionEvent, wastage []domain.WastageEvent) []domain.StockEvent {
	byID := make(map[string]domain.InventoryItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	events := make([]domain.StockEvent, 0, len(deductions)+len(wastage))

	for _, d := range deductions {
		item := byID[d.ItemID]
		value := d.TotalCost
		if value == 0 {
			value = d.Quantity * item.CostPerUnit
		}
		name := d.ItemName
		if name == "" {
			name = item.Name
		}
		events = append(events, domain.StockEvent{
			ID:        d.ID,
			Kind:      domain.MovementUsed,
			ItemID:    d.ItemID,
			ItemName:  name,
			Unit:      item.Unit,
			Quantity:  d.Quantity,
			Value:     value,
			Date:      d.Date,
			Reference: d.OrderID,
			Timestamp: d.CreatedAt,
		})
	}

	for _, w := range wastage {
		item := byID[w.ItemID]
		value := w.CostLoss
		if value == 0 {
			value = w.Quantity * item.CostPerUnit
		}
		name := w.ItemName
		if name == "" {
			name = item.Name
		}
		events = append(events, domain.StockEvent{
			ID:        w.ID,
			Kind:      domain.MovementWasted,
			ItemID:    w.ItemID,
			ItemName:  name,
			Unit:      item.Unit,
			Quantity:  w.Quantity,
			Value:     value,
			Date:      w.Date,
			Reference: w.Reason,
			Timestamp: w.CreatedAt,
		})
	}

	return events
}
