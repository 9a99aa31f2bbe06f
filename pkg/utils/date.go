package utils

import (
	"fmt"
	"time"
)

// Now returns the current time. It is a variable so tests can pin the clock.
var Now = time.Now

// AddDays returns date moved by n calendar days. The wall clock time is kept
// across daylight saving changes, so this is not the same as adding n*24h.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// StartOfDay returns 00:00:00.000 of the day of date, in date's location.
func StartOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}

// EndOfDay returns 23:59:59.999 of the day of date, in date's location.
func EndOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), date.Location())
}

// RangesOverlap reports whether the closed ranges a and b intersect. Ranges
// that only touch at an end point overlap.
func RangesOverlap(a, b [2]time.Time) bool {
	return !a[0].After(b[1]) && !b[0].After(a[1])
}

// GetCurrentDate returns the current local date as "YYYY-MM-DD".
func GetCurrentDate() string {
	y, m, d := Now().Date()
	return fmt.Sprintf("%d-%02d-%02d", y, int(m), d)
}
