package analytics

import (
	"testing"
	"time"

	"github.com/iscsys/backend-go/internal/domain"
)

func TestNormalize_TagsAndFields(t *testing.T) {
	base := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	items := []domain.InventoryItem{item("oil", 10, 5, 150)}
	deductions := []domain.DeductionEvent{
		{ID: "d1", ItemID: "oil", ItemName: "Oil", Quantity: 2, OrderID: "ORD-7", TotalCost: 300, Date: "2025-03-12", CreatedAt: base},
	}
	wastage := []domain.WastageEvent{
		{ID: "w1", ItemID: "oil", ItemName: "Oil", Quantity: 1, Reason: "Spoiled", CostLoss: 150, Date: "2025-03-12", CreatedAt: base},
	}

	events := Normalize(items, deductions, wastage)

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	used := events[0]
	if used.Kind != domain.MovementUsed {
		t.Errorf("Kind = %q, want %q", used.Kind, domain.MovementUsed)
	}
	if used.Reference != "ORD-7" {
		t.Errorf("used Reference = %q, want order id", used.Reference)
	}
	if used.Value != 300 {
		t.Errorf("used Value = %v, want cost snapshot 300", used.Value)
	}
	if used.Unit != "kg" {
		t.Errorf("used Unit = %q, want filled from item", used.Unit)
	}

	wasted := events[1]
	if wasted.Kind != domain.MovementWasted {
		t.Errorf("Kind = %q, want %q", wasted.Kind, domain.MovementWasted)
	}
	if wasted.Reference != "Spoiled" {
		t.Errorf("wasted Reference = %q, want reason", wasted.Reference)
	}
}

func TestNormalize_CostFallbackRoundTrip(t *testing.T) {
	// An event without a cost snapshot values at quantity x costPerUnit
	// exactly, so re-aggregation reproduces moneyBurned without drift.
	items := []domain.InventoryItem{item("oil", 10, 5, 12.5)}
	deductions := []domain.DeductionEvent{
		{ID: "d1", ItemID: "oil", Quantity: 3.2, Date: "2025-03-12"},
	}

	events := Normalize(items, deductions, nil)

	if want := 3.2 * 12.5; events[0].Value != want {
		t.Errorf("Value = %v, want %v", events[0].Value, want)
	}
	if events[0].ItemName != "oil" {
		t.Errorf("ItemName = %q, want filled from item", events[0].ItemName)
	}
}

func TestNormalize_UnknownItemKeepsEvent(t *testing.T) {
	// Referential integrity is the storage collaborator's job; an event
	// pointing at a missing item still normalizes, just without the join.
	deductions := []domain.DeductionEvent{
		{ID: "d1", ItemID: "ghost", ItemName: "Ghost", Quantity: 2, TotalCost: 20, Date: "2025-03-12"},
	}

	events := Normalize(nil, deductions, nil)

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Value != 20 {
		t.Errorf("Value = %v, want snapshot 20", events[0].Value)
	}
}

func TestNormalize_Empty(t *testing.T) {
	events := Normalize(nil, nil, nil)
	if events == nil || len(events) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", events)
	}
}
