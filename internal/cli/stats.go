package cli

import (
	"fmt"
	"sort"

	"github.com/habitflow/habitflow/internal/habits"
	"github.com/habitflow/habitflow/internal/models"
)

type StatsCmd struct {
	Window int `help:"Rolling window in days for consistency and ranking." default:"30"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if len(ctx.Repo.Habits()) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := ctx.Today()
	agg := ctx.Repo.Aggregator(now)

	fmt.Printf("Today's completion rate: %.0f%%\n", agg.CompletionRateForDate(now))
	fmt.Printf("7-day consistency:       %.0f%%\n", agg.RollingConsistency(7))
	fmt.Printf("%d-day consistency:      %.0f%%\n", c.Window, agg.RollingConsistency(c.Window))

	fmt.Println("\nBy category:")
	breakdown := agg.CategoryBreakdown()
	categories := make([]string, 0, len(breakdown))
	for cat := range breakdown {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		s := breakdown[cat]
		fmt.Printf("  %-16s %d habit(s), %d/%d completed (%.0f%%)\n",
			cat, s.HabitCount, s.CompletedCount, s.TotalCount, s.Percentage)
	}

	fmt.Println("\nBy priority:")
	for _, p := range []models.PriorityLevel{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if count := agg.PriorityBreakdown()[p]; count > 0 {
			fmt.Printf("  %-8s %d\n", p, count)
		}
	}

	fmt.Printf("\nPerformance ranking (last %d days):\n", c.Window)
	for i, perf := range agg.HabitPerformanceRanking(c.Window) {
		fmt.Printf("  %2d. %-25s %.0f%% (%d completions)\n",
			i+1, perf.Habit.Name, perf.CompletionRate, perf.TotalCompletions)
	}

	fmt.Println("\nStreak distribution:")
	dist := agg.StreakDistribution(habits.DefaultStreakBuckets())
	for _, b := range habits.DefaultStreakBuckets() {
		fmt.Printf("  %-6s %d\n", b.Label, dist[b.Label])
	}

	return nil
}
