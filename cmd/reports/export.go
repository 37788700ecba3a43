package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/iscsys/backend-go/internal/domain"
)

func renderTruthTableCSV(table *domain.TruthTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"item_id", "name", "category", "unit", "cost_per_unit",
		"opening_stock", "closing_stock", "purchased", "used", "wasted",
		"avg_daily", "money_burned", "wastage_cost",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range table.Rows {
		record := []string{
			row.ItemID, row.Name, row.Category, row.Unit,
			formatFloat(row.CostPerUnit),
			formatFloat(row.OpeningStock),
			formatFloat(row.ClosingStock),
			formatFloat(row.Purchased),
			formatFloat(row.Used),
			formatFloat(row.Wasted),
			formatFloat(row.AvgDaily),
			formatFloat(row.MoneyBurned),
			formatFloat(row.WastageCost),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	totals := []string{
		"", "TOTAL", "", "", "", "", "", "", "", "", "",
		formatFloat(table.TotalMoneyBurned),
		formatFloat(table.TotalWastageCost),
	}
	if err := w.Write(totals); err != nil {
		return nil, fmt.Errorf("failed to write csv totals: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func renderWastageCSV(report *domain.WastageReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	summary := [][]string{
		{"metric", "value"},
		{"total_wasted_cost", formatFloat(report.TotalWastedCost)},
		{"total_used_cost", formatFloat(report.TotalUsedCost)},
		{"wastage_percent", formatFloat(report.WastagePercent)},
		{"month_to_date_loss", formatFloat(report.MonthToDateLoss)},
		{"projected_monthly_loss", formatFloat(report.ProjectedMonthlyLoss)},
	}
	if err := w.WriteAll(summary); err != nil {
		return nil, fmt.Errorf("failed to write csv summary: %w", err)
	}

	if err := w.Write([]string{"top_loss_item_id", "name", "quantity", "cost"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, item := range report.TopLossItems {
		record := []string{item.ItemID, item.Name, formatFloat(item.Quantity), formatFloat(item.Cost)}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	if err := w.Write([]string{"reason", "cost"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, reason := range report.ByReason {
		if err := w.Write([]string{reason.Reason, formatFloat(reason.Cost)}); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
