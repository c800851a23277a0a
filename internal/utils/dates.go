package utils

import "time"

// DayStart normalizes a timestamp to calendar-day granularity: midnight UTC
// of the same date. All "which day" comparisons in the core go through this.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the half-open interval [start, end) covering the
// calendar day of t. Portable across sqlite and postgres, unlike DATE()
// in SQL.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := DayStart(t)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween returns the whole-day difference b - a at day granularity.
func DaysBetween(a, b time.Time) int {
	return int(DayStart(b).Sub(DayStart(a)).Hours() / 24)
}
