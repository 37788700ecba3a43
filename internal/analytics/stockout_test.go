package analytics

import (
	"testing"

	"github.com/iscsys/backend-go/internal/domain"
)

func item(id string, qty, minStock, cost float64) domain.InventoryItem {
	return domain.InventoryItem{
		ID:          id,
		Name:        id,
		Unit:        "kg",
		Quantity:    qty,
		MinStock:    minStock,
		CostPerUnit: cost,
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name          string
		item          domain.InventoryItem
		dailyUsage    float64
		wantDays      float64
		wantUnbounded bool
		wantRestock   bool
	}{
		{
			name:       "oil scenario: 10 units at 2/day is 5 days and needs restock",
			item:       item("oil", 10, 5, 150),
			dailyUsage: 2,
			wantDays:   5, wantRestock: true,
		},
		{
			name:       "ample stock with slow usage",
			item:       item("rice", 100, 10, 40),
			dailyUsage: 2,
			wantDays:   50, wantRestock: false,
		},
		{
			name:          "zero usage is unbounded, not a division fault",
			item:          item("saffron", 3, 1, 900),
			dailyUsage:    0,
			wantUnbounded: true, wantRestock: false,
		},
		{
			name:          "zero stock always needs restock regardless of usage",
			item:          item("milk", 0, 5, 60),
			dailyUsage:    0,
			wantUnbounded: true, wantRestock: true,
		},
		{
			name:       "at minimum threshold needs restock",
			item:       item("flour", 5, 5, 35),
			dailyUsage: 0.1,
			wantDays:   50, wantRestock: true,
		},
		{
			name:       "exactly a week of cover needs restock",
			item:       item("butter", 14, 2, 500),
			dailyUsage: 2,
			wantDays:   7, wantRestock: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(tt.item, tt.dailyUsage)
			if p.Unbounded != tt.wantUnbounded {
				t.Errorf("Unbounded = %v, want %v", p.Unbounded, tt.wantUnbounded)
			}
			if !p.Unbounded && p.DaysLeft != tt.wantDays {
				t.Errorf("DaysLeft = %v, want %v", p.DaysLeft, tt.wantDays)
			}
			if p.NeedsRestock != tt.wantRestock {
				t.Errorf("NeedsRestock = %v, want %v", p.NeedsRestock, tt.wantRestock)
			}
		})
	}
}

func TestDisplayDaysLeft(t *testing.T) {
	if got := DisplayDaysLeft(domain.Projection{Unbounded: true}); got != DisplayDaysLeftCap {
		t.Errorf("unbounded display = %v, want %v", got, DisplayDaysLeftCap)
	}
	if got := DisplayDaysLeft(domain.Projection{DaysLeft: 1500}); got != DisplayDaysLeftCap {
		t.Errorf("huge projection display = %v, want cap %v", got, DisplayDaysLeftCap)
	}
	if got := DisplayDaysLeft(domain.Projection{DaysLeft: 4.5}); got != 4.5 {
		t.Errorf("display = %v, want 4.5", got)
	}
}
