package habits

import (
	"sort"
	"time"

	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/models"
)

// Aggregator answers read-only consistency queries over a committed
// (habits, completions) state as of a reference date. It keeps no mutable
// state of its own, so it is safe to call repeatedly and concurrently.
//
// Everything is re-derived from raw completions on every call; correctness
// over staleness. If high-frequency polling over many habits ever shows up
// in a profile, RollingConsistency is the place to memoize.
type Aggregator struct {
	habits      []models.Habit
	completions *CompletionStore
	ref         time.Time
}

func NewAggregator(habits []models.Habit, completions *CompletionStore, ref time.Time) *Aggregator {
	return &Aggregator{
		habits:      habits,
		completions: completions,
		ref:         dateutil.NormalizeToDay(ref),
	}
}

// CategoryStats summarizes completion records for one category of habits.
type CategoryStats struct {
	HabitCount     int     `json:"habitCount"`
	CompletedCount int     `json:"completedCount"`
	TotalCount     int     `json:"totalCount"`
	Percentage     float64 `json:"percentage"`
}

// HabitPerformance ranks one habit's completion rate over a window.
type HabitPerformance struct {
	Habit            models.Habit `json:"habit"`
	CompletionRate   float64      `json:"completionRate"`
	TotalCompletions int          `json:"totalCompletions"`
}

// StreakBucket names a numeric streak range. Max < 0 means open-ended.
type StreakBucket struct {
	Label string
	Min   int
	Max   int
}

// DefaultStreakBuckets are the ranges shown by the stats view.
func DefaultStreakBuckets() []StreakBucket {
	return []StreakBucket{
		{Label: "1-7", Min: 1, Max: 7},
		{Label: "8-30", Min: 8, Max: 30},
		{Label: "31-90", Min: 31, Max: 90},
		{Label: "90+", Min: 91, Max: -1},
	}
}

// WeeklyData is one weekday's completed count for chart rendering.
type WeeklyData struct {
	Day       string `json:"day"`
	Completed int    `json:"completed"`
}

// activeAndCompleted counts, for one day, how many habits were active and
// how many of those have a completed record.
func (a *Aggregator) activeAndCompleted(date time.Time) (active, completed int) {
	for _, h := range a.habits {
		if !IsActiveOn(h, date) {
			continue
		}
		active++
		if rec, ok := a.completions.Get(h.ID, date); ok && rec.Completed {
			completed++
		}
	}
	return active, completed
}

// CompletionRateForDate returns completed/active*100 for the given day, or 0
// when no habits are active (never NaN).
func (a *Aggregator) CompletionRateForDate(date time.Time) float64 {
	active, completed := a.activeAndCompleted(date)
	if active == 0 {
		return 0
	}
	return float64(completed) / float64(active) * 100
}

// RollingConsistency returns the completion percentage over the trailing
// windowDays days ending at (and including) the reference date. The
// denominator is the sum of each day's own active-habit count; possible
// completions are never assumed constant across the window.
func (a *Aggregator) RollingConsistency(windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	start := dateutil.DaysAgoFrom(a.ref, windowDays-1)

	totalActive := 0
	totalCompleted := 0
	for _, day := range dateutil.EnumerateRange(start, a.ref) {
		active, completed := a.activeAndCompleted(day)
		totalActive += active
		totalCompleted += completed
	}
	if totalActive == 0 {
		return 0
	}
	return float64(totalCompleted) / float64(totalActive) * 100
}

// CategoryBreakdown groups habits by effective category and summarizes their
// completion records: TotalCount is all records for the category's habits,
// CompletedCount the completed ones, Percentage their ratio (0 when no
// records exist).
func (a *Aggregator) CategoryBreakdown() map[string]CategoryStats {
	out := make(map[string]CategoryStats)
	for _, h := range a.habits {
		cat := models.EffectiveCategory(h)
		stats := out[cat]
		stats.HabitCount++
		for _, rec := range a.completions.ListForHabit(h.ID) {
			stats.TotalCount++
			if rec.Completed {
				stats.CompletedCount++
			}
		}
		out[cat] = stats
	}
	for cat, stats := range out {
		if stats.TotalCount > 0 {
			stats.Percentage = float64(stats.CompletedCount) / float64(stats.TotalCount) * 100
		}
		out[cat] = stats
	}
	return out
}

// PriorityBreakdown counts habits per effective priority level.
func (a *Aggregator) PriorityBreakdown() map[models.PriorityLevel]int {
	out := make(map[models.PriorityLevel]int)
	for _, h := range a.habits {
		out[models.EffectivePriority(h)]++
	}
	return out
}

// HabitPerformanceRanking rates each habit over the trailing window and
// sorts descending by rate. The denominator is the habit's own active-day
// count inside the window, not a flat windowDays.
func (a *Aggregator) HabitPerformanceRanking(windowDays int) []HabitPerformance {
	if windowDays <= 0 {
		windowDays = 30
	}
	start := dateutil.DaysAgoFrom(a.ref, windowDays-1)
	days := dateutil.EnumerateRange(start, a.ref)

	out := make([]HabitPerformance, 0, len(a.habits))
	for _, h := range a.habits {
		activeDays := 0
		completions := 0
		for _, day := range days {
			if !IsActiveOn(h, day) {
				continue
			}
			activeDays++
			if rec, ok := a.completions.Get(h.ID, day); ok && rec.Completed {
				completions++
			}
		}

		perf := HabitPerformance{Habit: h, TotalCompletions: completions}
		if activeDays > 0 {
			perf.CompletionRate = float64(completions) / float64(activeDays) * 100
		}
		out = append(out, perf)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CompletionRate != out[j].CompletionRate {
			return out[i].CompletionRate > out[j].CompletionRate
		}
		return out[i].Habit.Name < out[j].Habit.Name
	})
	return out
}

// StreakDistribution counts current streaks (recomputed as of the reference
// date) falling into each named bucket. Streaks matching no bucket are
// dropped, which is how a zero streak stays out of the "1-7" bar.
func (a *Aggregator) StreakDistribution(buckets []StreakBucket) map[string]int {
	out := make(map[string]int, len(buckets))
	for _, b := range buckets {
		out[b.Label] = 0
	}
	for _, h := range a.habits {
		streak := ComputeStreak(a.completions, h.ID, a.ref)
		for _, b := range buckets {
			if streak >= b.Min && (b.Max < 0 || streak <= b.Max) {
				out[b.Label]++
				break
			}
		}
	}
	return out
}

// WeeklyChartData returns completed counts for the last seven days ending at
// the reference date, labeled by weekday abbreviation.
func (a *Aggregator) WeeklyChartData() []WeeklyData {
	out := make([]WeeklyData, 0, 7)
	for i := 6; i >= 0; i-- {
		day := dateutil.DaysAgoFrom(a.ref, i)
		_, completed := a.activeAndCompleted(day)
		out = append(out, WeeklyData{
			Day:       day.Format("Mon"),
			Completed: completed,
		})
	}
	return out
}
