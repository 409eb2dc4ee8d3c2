package date

import "time"

// AddYears returns <d> moved by <years> (negative to subtract), keeping month, day, clock and location.
//
// If the same calendar date does not exist in the destination year (February 29), the following day is used
// (March 1).
func AddYears(d time.Time, years int) time.Time {
	year, month, day := d.Date()
	out := time.Date(year+years, month, day, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
	if out.Day() != day {
		// time.Date normalized the missing date into the next month
		return time.Date(year+years, month+1, 1, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
	}
	return out
}
