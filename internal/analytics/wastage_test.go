package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/iscsys/backend-go/internal/domain"
)

func TestBuildWastageReport_Empty(t *testing.T) {
	report := BuildWastageReport(nil, nil, "2025-03-01", "2025-03-15", testNow)

	if report.WastagePercent != 0 {
		t.Errorf("WastagePercent = %v, want 0 with no movement", report.WastagePercent)
	}
	if report.ProjectedMonthlyLoss != 0 {
		t.Errorf("ProjectedMonthlyLoss = %v, want 0", report.ProjectedMonthlyLoss)
	}
	if len(report.TopLossItems) != 0 || len(report.ByReason) != 0 {
		t.Errorf("expected empty rankings, got %v / %v", report.TopLossItems, report.ByReason)
	}
	if report.TopLossItems == nil || report.ByReason == nil {
		t.Error("rankings must be empty slices, not nil")
	}
}

func TestBuildWastageReport_PercentBounds(t *testing.T) {
	tests := []struct {
		name        string
		usedCost    float64
		wastedCost  float64
		wantPercent float64
	}{
		{"no waste", 100, 0, 0},
		{"all waste", 0, 100, 100},
		{"quarter waste", 300, 100, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deductions []domain.DeductionEvent
			if tt.usedCost > 0 {
				deductions = append(deductions, domain.DeductionEvent{
					ItemID: "oil", Quantity: 1, TotalCost: tt.usedCost, Date: "2025-03-12",
				})
			}
			var wastage []domain.WastageEvent
			if tt.wastedCost > 0 {
				wastage = append(wastage, wastageEvent("oil", 1, tt.wastedCost, "Spoiled", "2025-03-12"))
			}

			report := BuildWastageReport(wastage, deductions, "2025-03-10", "2025-03-15", testNow)

			if report.WastagePercent != tt.wantPercent {
				t.Errorf("WastagePercent = %v, want %v", report.WastagePercent, tt.wantPercent)
			}
			if report.WastagePercent < 0 || report.WastagePercent > 100 {
				t.Errorf("WastagePercent %v outside [0,100]", report.WastagePercent)
			}
		})
	}
}

func TestBuildWastageReport_GroupsByReasonAndItem(t *testing.T) {
	// Two Spoiled events on the same item merge in both rankings.
	wastage := []domain.WastageEvent{
		wastageEvent("paneer", 1, 50, "Spoiled", "2025-03-12"),
		wastageEvent("paneer", 0.5, 30, "Spoiled", "2025-03-13"),
	}

	report := BuildWastageReport(wastage, nil, "2025-03-10", "2025-03-15", testNow)

	if len(report.ByReason) != 1 {
		t.Fatalf("got %d reasons, want 1", len(report.ByReason))
	}
	if r := report.ByReason[0]; r.Reason != "Spoiled" || r.Cost != 80 {
		t.Errorf("ByReason[0] = %+v, want Spoiled/80", r)
	}

	if len(report.TopLossItems) != 1 {
		t.Fatalf("got %d loss items, want 1", len(report.TopLossItems))
	}
	if top := report.TopLossItems[0]; top.Cost != 80 || top.Quantity != 1.5 {
		t.Errorf("TopLossItems[0] = %+v, want cost 80 qty 1.5", top)
	}
}

func TestBuildWastageReport_TopLossLimitAndOrder(t *testing.T) {
	var wastage []domain.WastageEvent
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, name := range names {
		wastage = append(wastage, wastageEvent(name, 1, float64((i+1)*10), "Other", "2025-03-12"))
	}

	report := BuildWastageReport(wastage, nil, "2025-03-10", "2025-03-15", testNow)

	if len(report.TopLossItems) != 5 {
		t.Fatalf("got %d loss items, want top 5", len(report.TopLossItems))
	}
	for i := 1; i < len(report.TopLossItems); i++ {
		if report.TopLossItems[i].Cost > report.TopLossItems[i-1].Cost {
			t.Errorf("top loss list not descending at %d: %v > %v",
				i, report.TopLossItems[i].Cost, report.TopLossItems[i-1].Cost)
		}
	}
	if report.TopLossItems[0].Name != "g" {
		t.Errorf("biggest loss = %q, want g", report.TopLossItems[0].Name)
	}
}

func TestBuildWastageReport_MonthlyProjection(t *testing.T) {
	// testNow is 2025-03-15: 15 days elapsed of a 31-day month.
	// 150 lost month-to-date projects to 150/15*31 = 310.
	wastage := []domain.WastageEvent{
		wastageEvent("oil", 1, 100, "Spoiled", "2025-03-05"),
		wastageEvent("oil", 1, 50, "Expired", "2025-03-14"),
		wastageEvent("oil", 1, 999, "Spoiled", "2025-02-28"), // previous month
	}

	report := BuildWastageReport(wastage, nil, "2025-03-01", "2025-03-15", testNow)

	if report.MonthToDateLoss != 150 {
		t.Errorf("MonthToDateLoss = %v, want 150", report.MonthToDateLoss)
	}
	if want := 310.0; math.Abs(report.ProjectedMonthlyLoss-want) > 1e-9 {
		t.Errorf("ProjectedMonthlyLoss = %v, want %v", report.ProjectedMonthlyLoss, want)
	}
}

func TestBuildWastageReport_MonthSubsetIndependentOfRange(t *testing.T) {
	// A yesterday-only range still projects from the whole current month.
	wastage := []domain.WastageEvent{
		wastageEvent("oil", 1, 60, "Spoiled", "2025-03-02"),
		wastageEvent("oil", 1, 40, "Spoiled", "2025-03-14"),
	}

	report := BuildWastageReport(wastage, nil, "2025-03-14", "2025-03-14", testNow)

	if report.TotalWastedCost != 40 {
		t.Errorf("TotalWastedCost = %v, want 40 (range only)", report.TotalWastedCost)
	}
	if report.MonthToDateLoss != 100 {
		t.Errorf("MonthToDateLoss = %v, want 100 (full month)", report.MonthToDateLoss)
	}
}

func TestBuildWastageReport_FebruaryProjection(t *testing.T) {
	now := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC) // 28-day month
	wastage := []domain.WastageEvent{wastageEvent("oil", 1, 70, "Spoiled", "2025-02-03")}

	report := BuildWastageReport(wastage, nil, "2025-02-01", "2025-02-10", now)

	if want := 70.0 / 10 * 28; math.Abs(report.ProjectedMonthlyLoss-want) > 1e-9 {
		t.Errorf("ProjectedMonthlyLoss = %v, want %v", report.ProjectedMonthlyLoss, want)
	}
}
