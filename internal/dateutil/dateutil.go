// Package dateutil holds the calendar-day primitives the rest of the app is
// built on. Every date comparison and lookup goes through the YYYY-MM-DD key
// produced here; raw timestamp equality is never used for day matching.
package dateutil

import (
	"time"

	"github.com/habitflow/habitflow/internal/constants"
)

// FormatKey produces the canonical YYYY-MM-DD key from the date's local
// calendar fields. This is deliberately not a UTC conversion: formatting the
// UTC instant of a late-evening local time would shift the key by a day.
func FormatKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseKey parses a YYYY-MM-DD key back into a local-midnight time.
func ParseKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// NormalizeToDay truncates a time to midnight in its own location, so two
// values can be compared by calendar day regardless of time-of-day noise.
func NormalizeToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysAgo returns today minus n days, normalized to midnight local time.
func DaysAgo(n int) time.Time {
	return DaysAgoFrom(time.Now(), n)
}

// DaysAgoFrom returns ref minus n days, normalized to midnight. The clock is
// a parameter so the rolling-window code stays testable.
func DaysAgoFrom(ref time.Time, n int) time.Time {
	return NormalizeToDay(ref).AddDate(0, 0, -n)
}

// EnumerateRange returns every calendar day in [start, end] inclusive, in
// ascending order. Returns an empty slice when start is after end.
func EnumerateRange(start, end time.Time) []time.Time {
	start = NormalizeToDay(start)
	end = NormalizeToDay(end)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
