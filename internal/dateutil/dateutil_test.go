package dateutil

import (
	"testing"
	"time"
)

func TestFormatKey_StableAcrossTimeOfDay(t *testing.T) {
	cases := []time.Time{
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 3, 1, 9, 30, 15, 0, time.Local),
		time.Date(2025, 3, 1, 23, 59, 59, 999999999, time.Local),
	}

	for _, d := range cases {
		if got, want := FormatKey(d), FormatKey(NormalizeToDay(d)); got != want {
			t.Errorf("FormatKey(%v) = %s, want %s", d, got, want)
		}
		if got := FormatKey(d); got != "2025-03-01" {
			t.Errorf("FormatKey(%v) = %s, want 2025-03-01", d, got)
		}
	}
}

func TestParseKey_RoundTrip(t *testing.T) {
	parsed, err := ParseKey("2025-12-31")
	if err != nil {
		t.Fatalf("ParseKey failed: %v", err)
	}
	if got := FormatKey(parsed); got != "2025-12-31" {
		t.Errorf("round trip = %s, want 2025-12-31", got)
	}

	if _, err := ParseKey("31/12/2025"); err == nil {
		t.Error("expected error for non-canonical date format")
	}
}

func TestNormalizeToDay(t *testing.T) {
	d := time.Date(2025, 7, 15, 18, 45, 12, 345, time.Local)
	n := NormalizeToDay(d)

	if n.Hour() != 0 || n.Minute() != 0 || n.Second() != 0 || n.Nanosecond() != 0 {
		t.Errorf("NormalizeToDay left time-of-day: %v", n)
	}
	if n.Year() != 2025 || n.Month() != time.July || n.Day() != 15 {
		t.Errorf("NormalizeToDay changed the calendar day: %v", n)
	}
}

func TestDaysAgoFrom(t *testing.T) {
	ref := time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)

	if got := FormatKey(DaysAgoFrom(ref, 0)); got != "2025-03-10" {
		t.Errorf("DaysAgoFrom(ref, 0) = %s, want 2025-03-10", got)
	}
	if got := FormatKey(DaysAgoFrom(ref, 9)); got != "2025-03-01" {
		t.Errorf("DaysAgoFrom(ref, 9) = %s, want 2025-03-01", got)
	}
	// Crosses a month boundary
	if got := FormatKey(DaysAgoFrom(ref, 10)); got != "2025-02-28" {
		t.Errorf("DaysAgoFrom(ref, 10) = %s, want 2025-02-28", got)
	}
}

func TestEnumerateRange(t *testing.T) {
	start := time.Date(2025, 1, 30, 8, 0, 0, 0, time.Local)
	end := time.Date(2025, 2, 2, 22, 0, 0, 0, time.Local)

	days := EnumerateRange(start, end)
	want := []string{"2025-01-30", "2025-01-31", "2025-02-01", "2025-02-02"}
	if len(days) != len(want) {
		t.Fatalf("EnumerateRange returned %d days, want %d", len(days), len(want))
	}
	for i, d := range days {
		if FormatKey(d) != want[i] {
			t.Errorf("day %d = %s, want %s", i, FormatKey(d), want[i])
		}
	}
}

func TestEnumerateRange_EmptyWhenInverted(t *testing.T) {
	start := time.Date(2025, 2, 2, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)

	if days := EnumerateRange(start, end); len(days) != 0 {
		t.Errorf("expected empty range, got %d days", len(days))
	}
}

func TestEnumerateRange_SingleDay(t *testing.T) {
	d := time.Date(2025, 5, 5, 0, 0, 0, 0, time.Local)
	days := EnumerateRange(d, d)
	if len(days) != 1 || FormatKey(days[0]) != "2025-05-05" {
		t.Errorf("expected single day 2025-05-05, got %v", days)
	}
}
