package clock

import (
	"testing"
	"time"
)

func TestReferenceDayBoundary(t *testing.T) {
	// Reference midnight is 18:30:00 UTC: two instants on the same UTC date
	// straddling it land on different calendar days.
	before := time.Date(2026, 8, 28, 18, 29, 59, 0, time.UTC)
	after := time.Date(2026, 8, 28, 18, 30, 1, 0, time.UTC)

	if got := DayKey(before); got != "2026-08-28" {
		t.Fatalf("before boundary: expected 2026-08-28, got %s", got)
	}
	if got := DayKey(after); got != "2026-08-29" {
		t.Fatalf("after boundary: expected 2026-08-29, got %s", got)
	}
}

func TestReferenceDayIsMidnight(t *testing.T) {
	d := ReferenceDay(time.Date(2026, 8, 28, 3, 17, 42, 999, time.UTC))
	h, m, s := d.Clock()
	if h != 0 || m != 0 || s != 0 || d.Nanosecond() != 0 {
		t.Fatalf("expected midnight, got %v", d)
	}
	if _, offset := d.Zone(); offset != 5*3600+30*60 {
		t.Fatalf("expected +05:30 offset, got %d", offset)
	}
}

func TestReferenceDayHostZoneIndependent(t *testing.T) {
	instant := time.Date(2026, 8, 28, 18, 29, 59, 0, time.UTC)
	inTokyo := instant.In(time.FixedZone("JST", 9*3600))
	if DayKey(instant) != DayKey(inTokyo) {
		t.Fatalf("same instant mapped to different days: %s vs %s", DayKey(instant), DayKey(inTokyo))
	}
}

func TestParseDayKeyRoundTrip(t *testing.T) {
	d, err := ParseDayKey("2026-02-28")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := DayKey(d); got != "2026-02-28" {
		t.Fatalf("round trip: expected 2026-02-28, got %s", got)
	}
}

func TestRangeDaysSpan(t *testing.T) {
	start, end := RangeDays(7)
	if got := end.Sub(start); got != 6*24*time.Hour {
		t.Fatalf("expected 6 days between start and end, got %v", got)
	}
	if DayKey(end) != DayKey(time.Now()) {
		t.Fatalf("range must end today")
	}

	start, end = RangeDays(1)
	if !start.Equal(end) {
		t.Fatalf("single-day range: start %v != end %v", start, end)
	}
}
