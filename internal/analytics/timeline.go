// internal/analytics/timeline.go
package analytics

import (
	"sort"

	"github.com/iscsys/backend-go/internal/domain"
)

// MergeMovements merges normalized deduction and wastage events into one
// feed sorted newest first by creation timestamp, which orders movements
// within a day where calendar dates cannot. The input is not mutated and
// the output always carries every event; "show first K" truncation belongs
// to the caller.
func MergeMovements(events []domain.StockEvent) []domain.StockEvent {
	merged := make([]domain.StockEvent, len(events))
	copy(merged, events)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	return merged
}
