// internal/analytics/dates.go
package analytics

import "time"

// DateLayout is the calendar-date format used throughout the engine.
// Dates compare correctly as plain strings in this layout, which is what
// every window and range check below relies on.
const DateLayout = "2006-01-02"

// DateOf formats a timestamp as a calendar date.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthStartOf returns the first calendar date of t's month.
func MonthStartOf(t time.Time) string {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Format(DateLayout)
}

// daysInMonth returns the number of calendar days in t's month.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// inRange reports whether date falls within [start, end] inclusive. Empty
// bounds are open. A reversed range (start > end) matches nothing, by
// string comparison alone; callers get an empty result, never an error.
func inRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}
