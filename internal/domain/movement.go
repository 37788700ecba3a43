// internal/domain/movement.go
package domain

import "time"

// MovementKind tags a normalized stock event as consumption or loss.
type MovementKind string

const (
	MovementUsed   MovementKind = "USED"
	MovementWasted MovementKind = "WASTED"
)

// StockEvent is the normalized union of deduction and wastage events.
// It is derived per request and never persisted.
type StockEvent struct {
	ID        string       `json:"id"`
	Kind      MovementKind `json:"kind"`
	ItemID    string       `json:"item_id"`
	ItemName  string       `json:"item_name"`
	Unit      string       `json:"unit"`
	Quantity  float64      `json:"quantity"`
	Value     float64      `json:"value"` // monetary value of the movement
	Date      string       `json:"date"`  // YYYY-MM-DD
	Reference string       `json:"reference"`
	Timestamp time.Time    `json:"timestamp"`
}
