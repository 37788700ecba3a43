package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iscsys/backend-go/internal/domain"
)

var testNow = time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC)

type mockInventoryRepo struct {
	items   []domain.InventoryItem
	getErr  error
	listErr error
}

func (m *mockInventoryRepo) List(ctx context.Context) ([]domain.InventoryItem, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockInventoryRepo) Get(ctx context.Context, id string) (*domain.InventoryItem, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, errors.New("not found")
}

type mockMovementRepo struct {
	deductions []domain.DeductionEvent
	wastage    []domain.WastageEvent

	deductionCalls []domain.ReportFilter
}

func (m *mockMovementRepo) ListDeductions(ctx context.Context, start, end string) ([]domain.DeductionEvent, error) {
	m.deductionCalls = append(m.deductionCalls, domain.ReportFilter{Start: start, End: end})
	out := []domain.DeductionEvent{}
	for _, d := range m.deductions {
		if (start == "" || d.Date >= start) && (end == "" || d.Date <= end) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockMovementRepo) ListWastage(ctx context.Context, start, end string) ([]domain.WastageEvent, error) {
	out := []domain.WastageEvent{}
	for _, w := range m.wastage {
		if (start == "" || w.Date >= start) && (end == "" || w.Date <= end) {
			out = append(out, w)
		}
	}
	return out, nil
}

func newTestService(inv *mockInventoryRepo, mov *mockMovementRepo) *ReportService {
	return NewReportService(inv, mov, nil, 7).WithClock(func() time.Time { return testNow })
}

func TestReportService_Overview(t *testing.T) {
	inv := &mockInventoryRepo{items: []domain.InventoryItem{
		{ID: "oil", Name: "Cooking Oil", Quantity: 10, MinStock: 5, CostPerUnit: 2},
		{ID: "rice", Name: "Rice", Quantity: 0, MinStock: 10, CostPerUnit: 1},
	}}
	mov := &mockMovementRepo{
		deductions: []domain.DeductionEvent{
			{ItemID: "oil", Quantity: 4, TotalCost: 8, Date: "2025-03-14"},
		},
		wastage: []domain.WastageEvent{
			{ItemID: "rice", Quantity: 2, CostLoss: 2, Reason: "Spoiled", Date: "2025-03-10"},
		},
	}

	svc := newTestService(inv, mov)
	got, err := svc.Overview(context.Background(), domain.ReportFilter{Start: "2025-03-01", End: "2025-03-15"})
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if got.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", got.TotalItems)
	}
	if got.TotalStockValue != 20 {
		t.Errorf("TotalStockValue = %v, want 20", got.TotalStockValue)
	}
	if got.ConsumedCost != 8 {
		t.Errorf("ConsumedCost = %v, want 8", got.ConsumedCost)
	}
	if got.WastedCost != 2 {
		t.Errorf("WastedCost = %v, want 2", got.WastedCost)
	}
	if got.ZeroStockCount != 1 {
		t.Errorf("ZeroStockCount = %d, want 1", got.ZeroStockCount)
	}
}

func TestReportService_OverviewWidensFetchToMonthStart(t *testing.T) {
	inv := &mockInventoryRepo{}
	mov := &mockMovementRepo{}

	svc := newTestService(inv, mov)
	if _, err := svc.Overview(context.Background(), domain.ReportFilter{Start: "2025-03-10", End: "2025-03-15"}); err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if len(mov.deductionCalls) == 0 {
		t.Fatal("no deduction fetches recorded")
	}
	first := mov.deductionCalls[0]
	if first.Start != "2025-03-01" {
		t.Errorf("fetch start = %q, want widened to 2025-03-01", first.Start)
	}
}

func TestReportService_RestockPlanUsesTrailingWindow(t *testing.T) {
	inv := &mockInventoryRepo{items: []domain.InventoryItem{
		{ID: "oil", Name: "Cooking Oil", Unit: "L", Quantity: 10, MinStock: 5, CostPerUnit: 2},
	}}
	mov := &mockMovementRepo{
		deductions: []domain.DeductionEvent{
			{ItemID: "oil", Quantity: 14, Date: "2025-03-14"},
			// Outside the 7-day window, must not count.
			{ItemID: "oil", Quantity: 700, Date: "2025-03-01"},
		},
	}

	svc := newTestService(inv, mov)
	plan, err := svc.RestockPlan(context.Background())
	if err != nil {
		t.Fatalf("RestockPlan() error = %v", err)
	}

	if len(plan.Suggestions) != 1 {
		t.Fatalf("len(Suggestions) = %d, want 1", len(plan.Suggestions))
	}
	s := plan.Suggestions[0]
	if s.DailyUsage != 2 {
		t.Errorf("DailyUsage = %v, want 2 (14 over a 7 day window)", s.DailyUsage)
	}
	if s.SuggestedQty != 18 {
		t.Errorf("SuggestedQty = %v, want 18", s.SuggestedQty)
	}
}

func TestReportService_MovementsMergedNewestFirst(t *testing.T) {
	inv := &mockInventoryRepo{items: []domain.InventoryItem{
		{ID: "oil", Name: "Cooking Oil", Unit: "L", CostPerUnit: 2},
	}}
	mov := &mockMovementRepo{
		deductions: []domain.DeductionEvent{
			{ItemID: "oil", Quantity: 1, Date: "2025-03-14", CreatedAt: testNow.Add(-2 * time.Hour)},
		},
		wastage: []domain.WastageEvent{
			{ItemID: "oil", Quantity: 1, Reason: "Dropped", Date: "2025-03-14", CreatedAt: testNow.Add(-1 * time.Hour)},
		},
	}

	svc := newTestService(inv, mov)
	events, err := svc.Movements(context.Background(), domain.ReportFilter{})
	if err != nil {
		t.Fatalf("Movements() error = %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Kind != domain.MovementWasted {
		t.Errorf("events[0].Kind = %q, want the newer wastage event first", events[0].Kind)
	}
	if events[1].Kind != domain.MovementUsed {
		t.Errorf("events[1].Kind = %q, want USED", events[1].Kind)
	}
}

func TestReportService_ItemActivityPropagatesNotFound(t *testing.T) {
	wantErr := errors.New("not found")
	inv := &mockInventoryRepo{getErr: wantErr}
	mov := &mockMovementRepo{}

	svc := newTestService(inv, mov)
	if _, err := svc.ItemActivity(context.Background(), "ghost"); !errors.Is(err, wantErr) {
		t.Errorf("ItemActivity() error = %v, want %v", err, wantErr)
	}
}
