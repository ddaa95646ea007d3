package cache

import "testing"

func TestStatsKeyIncludesReferenceDay(t *testing.T) {
	got := statsKey(7, "2026-08-28", 30)
	want := "stats:7:2026-08-28:30"
	if got != want {
		t.Fatalf("statsKey = %q, want %q", got, want)
	}

	// A report cached before reference midnight must not be served after it.
	next := statsKey(7, "2026-08-29", 30)
	if next == got {
		t.Fatalf("keys for consecutive days collide: %q", got)
	}
}
