// internal/analytics/usage.go
package analytics

import (
	"time"

	"github.com/iscsys/backend-go/internal/domain"
)

// DefaultUsageWindowDays is the trailing window for the rolling usage rate.
const DefaultUsageWindowDays = 7

// UsageRates computes the average daily consumption per item over a
// trailing window ending at now. The divisor is the full window length, not
// the number of active days: an item with a single deduction in a 7-day
// window averages quantity/7. Items with no in-window deductions are absent
// from the result; callers treat a missing entry as zero usage.
//
// The window boundary is a calendar-date comparison with an inclusive lower
// bound: a deduction dated exactly windowDays before now is counted.
func UsageRates(deductions []domain.DeductionEvent, windowDays int, now time.Time) map[string]float64 {
	if windowDays <= 0 {
		windowDays = DefaultUsageWindowDays
	}

	windowStart := DateOf(now.AddDate(0, 0, -windowDays))

	rates := make(map[string]float64)
	for _, d := range deductions {
		if d.Date < windowStart {
			continue
		}
		rates[d.ItemID] += d.Quantity
	}

	for id := range rates {
		rates[id] /= float64(windowDays)
	}

	return rates
}
