package habits

import (
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/dateutil"
)

// ComputeStreak counts consecutive completed days walking backward from
// asOf, stopping at the first day that is absent or not completed. The walk
// starts at asOf itself, so a gap exactly at the reference date zeroes the
// streak regardless of older completions.
//
// The walk is capped at 365 iterations to bound the cost per call; a habit
// completed 400 days running reports 365.
//
// Inactive days are NOT skipped: a day outside the habit's activity window
// with no record breaks the streak just like a missed day. That mirrors the
// observed reference behavior and is kept for compatibility; see DESIGN.md
// for the known ambiguity.
func ComputeStreak(store *CompletionStore, habitID string, asOf time.Time) int {
	day := dateutil.NormalizeToDay(asOf)

	streak := 0
	for i := 0; i < constants.StreakWalkLimit; i++ {
		rec, ok := store.Get(habitID, day.AddDate(0, 0, -i))
		if !ok || !rec.Completed {
			break
		}
		streak++
	}
	return streak
}
