// internal/domain/models.go
package domain

import "time"

// InventoryItem represents the current stock snapshot for one raw item.
type InventoryItem struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Unit        string    `json:"unit" db:"unit"`
	Quantity    float64   `json:"quantity" db:"quantity"`
	MinStock    float64   `json:"min_stock" db:"min_stock"`
	CostPerUnit float64   `json:"cost_per_unit" db:"cost_per_unit"`
	Category    string    `json:"category" db:"category"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Value returns the monetary value of the current stock.
func (i InventoryItem) Value() float64 {
	return i.Quantity * i.CostPerUnit
}

// IsLowStock reports whether the item is at or below its minimum threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinStock
}

// DeductionEvent represents stock leaving through order fulfillment.
// Events are immutable once created; TotalCost is a cost snapshot taken
// at deduction time.
type DeductionEvent struct {
	ID        string    `json:"id" db:"id"`
	ItemID    string    `json:"item_id" db:"item_id"`
	ItemName  string    `json:"item_name" db:"item_name"`
	Quantity  float64   `json:"quantity" db:"quantity"`
	OrderID   string    `json:"order_id" db:"order_id"`
	TotalCost float64   `json:"total_cost" db:"total_cost"`
	Date      string    `json:"date" db:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WastageEvent represents stock lost to spoilage, damage, theft etc.
type WastageEvent struct {
	ID        string    `json:"id" db:"id"`
	ItemID    string    `json:"item_id" db:"item_id"`
	ItemName  string    `json:"item_name" db:"item_name"`
	Quantity  float64   `json:"quantity" db:"quantity"`
	Reason    string    `json:"reason" db:"reason"`
	CostLoss  float64   `json:"cost_loss" db:"cost_loss"`
	Date      string    `json:"date" db:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WastageReasons is the set of loss causes the wastage form offers.
// Reason remains free text at the engine boundary; this list is for hosts
// that want a fixed dropdown.
var WastageReasons = []string{
	"Expired", "Spoiled", "Damaged", "Overcooked", "Dropped", "Theft", "Other",
}
