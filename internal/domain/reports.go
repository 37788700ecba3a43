// internal/domain/reports.go
package domain

// ReportFilter scopes a report request. Start and End are inclusive
// YYYY-MM-DD bounds; an empty bound leaves that side open. ItemID is only
// set for per-item drilldowns.
type ReportFilter struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	ItemID string `json:"item_id,omitempty"`
}

// Projection is the stockout estimate for a single item. When Unbounded is
// true the item has no recorded usage in the window and DaysLeft carries no
// meaning; display layers choose their own rendering for that state.
type Projection struct {
	DaysLeft     float64 `json:"days_left"`
	Unbounded    bool    `json:"unbounded"`
	NeedsRestock bool    `json:"needs_restock"`
}

// RestockSuggestion is a purchase recommendation sized to a 14-day
// coverage target. Only emitted when the item needs restock and the
// suggested quantity is positive.
type RestockSuggestion struct {
	ItemID        string  `json:"item_id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	MinStock      float64 `json:"min_stock"`
	DailyUsage    float64 `json:"daily_usage"`
	DaysLeft      float64 `json:"days_left"`
	Unbounded     bool    `json:"unbounded"`
	SuggestedQty  float64 `json:"suggested_qty"`
	SuggestedCost float64 `json:"suggested_cost"`
}

// RestockPlan is the ranked "what to buy now" output.
type RestockPlan struct {
	Suggestions []RestockSuggestion `json:"suggestions"`
	TotalCost   float64             `json:"total_cost"`
}

// TriageEntry ranks an item already in the minimum-stock danger zone. Its
// reorder sizing clears the danger zone comfortably rather than targeting
// future coverage, which is RestockSuggestion's job.
type TriageEntry struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	MinStock    float64 `json:"min_stock"`
	CostPerUnit float64 `json:"cost_per_unit"`
	DailyUsage  float64 `json:"daily_usage"`
	DaysLeft    float64 `json:"days_left"`
	Unbounded   bool    `json:"unbounded"`
	ReorderQty  float64 `json:"reorder_qty"`
	ReorderCost float64 `json:"reorder_cost"`
	IsZero      bool    `json:"is_zero"`
	IsCritical  bool    `json:"is_critical"`
}

// LowStockTriage is the urgency-ordered danger list.
type LowStockTriage struct {
	Entries          []TriageEntry `json:"entries"`
	TotalReorderCost float64       `json:"total_reorder_cost"`
}

// TruthTableRow reconciles one item's stock over a date range. The opening
// stock is reconstructed by walking back from the current snapshot, so
// Purchased is always zero in current scope: openingStock = closingStock +
// used + wasted.
type TruthTableRow struct {
	ItemID       string  `json:"item_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	CostPerUnit  float64 `json:"cost_per_unit"`
	OpeningStock float64 `json:"opening_stock"`
	ClosingStock float64 `json:"closing_stock"`
	Purchased    float64 `json:"purchased"`
	Used         float64 `json:"used"`
	Wasted       float64 `json:"wasted"`
	AvgDaily     float64 `json:"avg_daily"`
	MoneyBurned  float64 `json:"money_burned"`
	WastageCost  float64 `json:"wastage_cost"`
}

// TruthTable is the reconciled per-item ledger for a date range, sorted by
// highest loss. Totals cover only rows with activity.
type TruthTable struct {
	Rows             []TruthTableRow `json:"rows"`
	TotalMoneyBurned float64         `json:"total_money_burned"`
	TotalWastageCost float64         `json:"total_wastage_cost"`
}

// LossItem is one entry in the top-loss ranking.
type LossItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// ReasonLoss is the loss total for one wastage cause.
type ReasonLoss struct {
	Reason string  `json:"reason"`
	Cost   float64 `json:"cost"`
}

// WastageReport attributes loss value by item and by cause for a period.
type WastageReport struct {
	TotalWastedCost      float64      `json:"total_wasted_cost"`
	TotalUsedCost        float64      `json:"total_used_cost"`
	WastagePercent       float64      `json:"wastage_percent"`
	MonthToDateLoss      float64      `json:"month_to_date_loss"`
	ProjectedMonthlyLoss float64      `json:"projected_monthly_loss"`
	TopLossItems         []LossItem   `json:"top_loss_items"`
	ByReason             []ReasonLoss `json:"by_reason"`
}

// DailyActivity is one day of an item's movement series.
type DailyActivity struct {
	Date   string  `json:"date"`
	Used   float64 `json:"used"`
	Wasted float64 `json:"wasted"`
}

// ItemActivity is the per-item drilldown: lifetime-in-range totals, a
// trailing 30-day daily series and a loss attribution for one item.
type ItemActivity struct {
	ItemID          string          `json:"item_id"`
	TotalUsed       float64         `json:"total_used"`
	TotalWasted     float64         `json:"total_wasted"`
	TotalUsedCost   float64         `json:"total_used_cost"`
	TotalWastedCost float64         `json:"total_wasted_cost"`
	AvgDailyUsage   float64         `json:"avg_daily_usage"`
	DaysLeft        float64         `json:"days_left"`
	Unbounded       bool            `json:"unbounded"`
	UsagePercent    float64         `json:"usage_percent"`
	WastagePercent  float64         `json:"wastage_percent"`
	Series          []DailyActivity `json:"series"`
	ByReason        []ReasonLoss    `json:"by_reason"`
}

// Overview is the headline metric block for a date range.
type Overview struct {
	TotalItems      int     `json:"total_items"`
	TotalStockValue float64 `json:"total_stock_value"`
	ConsumedCost    float64 `json:"consumed_cost"`
	WastedCost      float64 `json:"wasted_cost"`
	MonthToDateLoss float64 `json:"month_to_date_loss"`
	LowStockCount   int     `json:"low_stock_count"`
	ZeroStockCount  int     `json:"zero_stock_count"`
}
