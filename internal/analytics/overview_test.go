package analytics

import (
	"testing"

	"github.com/iscsys/backend-go/internal/domain"
)

func TestBuildOverview(t *testing.T) {
	items := []domain.InventoryItem{
		item("oil", 10, 5, 150),  // value 1500
		item("rice", 5, 10, 40),  // value 200, low stock
		item("milk", 0, 5, 60),   // zero stock, low stock
		item("salt", 20, 2, 2.5), // value 50
	}
	deductions := []domain.DeductionEvent{
		{ItemID: "oil", Quantity: 2, TotalCost: 300, Date: "2025-03-15"},
		{ItemID: "rice", Quantity: 1, TotalCost: 40, Date: "2025-03-14"}, // outside range
	}
	wastage := []domain.WastageEvent{
		wastageEvent("oil", 1, 150, "Spoiled", "2025-03-15"),
		wastageEvent("rice", 1, 40, "Expired", "2025-03-02"), // month-to-date only
		wastageEvent("milk", 1, 60, "Expired", "2025-02-20"), // previous month
	}

	overview := BuildOverview(items, deductions, wastage, "2025-03-15", "2025-03-15", testNow)

	if overview.TotalItems != 4 {
		t.Errorf("TotalItems = %d, want 4", overview.TotalItems)
	}
	if overview.TotalStockValue != 1750 {
		t.Errorf("TotalStockValue = %v, want 1750", overview.TotalStockValue)
	}
	if overview.ConsumedCost != 300 {
		t.Errorf("ConsumedCost = %v, want 300", overview.ConsumedCost)
	}
	if overview.WastedCost != 150 {
		t.Errorf("WastedCost = %v, want 150", overview.WastedCost)
	}
	if overview.MonthToDateLoss != 190 {
		t.Errorf("MonthToDateLoss = %v, want 190", overview.MonthToDateLoss)
	}
	if overview.LowStockCount != 2 {
		t.Errorf("LowStockCount = %d, want 2", overview.LowStockCount)
	}
	if overview.ZeroStockCount != 1 {
		t.Errorf("ZeroStockCount = %d, want 1", overview.ZeroStockCount)
	}
}

func TestBuildOverview_Empty(t *testing.T) {
	overview := BuildOverview(nil, nil, nil, "2025-03-15", "2025-03-15", testNow)
	if overview != (domain.Overview{}) {
		t.Errorf("empty inputs produced %+v, want zero value", overview)
	}
}
