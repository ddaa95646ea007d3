// Package clock implements calendar-day arithmetic in the fixed reference
// timezone (UTC+5:30). All day-level comparisons in the app go through this
// package so results never depend on the host timezone.
package clock

import "time"

// ReferenceZone is the fixed UTC+5:30 offset used for every day boundary.
var ReferenceZone = time.FixedZone("UTC+05:30", 5*60*60+30*60)

const dayLayout = "2006-01-02"

// ReferenceDay truncates t to midnight of its calendar day in the reference
// timezone. The returned time is in ReferenceZone.
func ReferenceDay(t time.Time) time.Time {
	local := t.In(ReferenceZone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, ReferenceZone)
}

// Today returns reference-day midnight for the current instant.
func Today() time.Time {
	return ReferenceDay(time.Now())
}

// DayKey formats t's reference calendar day as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.In(ReferenceZone).Format(dayLayout)
}

// ParseDayKey parses a YYYY-MM-DD key into reference-day midnight.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, key, ReferenceZone)
}

// RangeDays returns the inclusive [start, end] reference days spanning the
// last n calendar days ending today. n must be >= 1.
func RangeDays(n int) (start, end time.Time) {
	end = Today()
	start = end.AddDate(0, 0, -(n - 1))
	return start, end
}
