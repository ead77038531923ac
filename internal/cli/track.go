package cli

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow/internal/dateutil"
)

type TrackCmd struct {
	Done  TrackDoneCmd  `cmd:"" help:"Toggle a habit's completion for a day."`
	Set   TrackSetCmd   `cmd:"" help:"Set a habit's completion explicitly (history editing)."`
	Today TrackTodayCmd `cmd:"" help:"Show today's habit checklist."`
}

func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := dateutil.ParseKey(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

type TrackDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *TrackDoneCmd) Run(ctx *Context) error {
	habit, err := ctx.Repo.HabitByName(c.Name)
	if err != nil {
		return err
	}
	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	rec, err := ctx.Repo.ToggleCompletion(habit.ID, date)
	if err != nil {
		return err
	}

	updated, _ := ctx.Repo.Habit(habit.ID)
	if rec.Completed {
		fmt.Printf("Marked %q done for %s (streak: %d)\n", c.Name, rec.Date, updated.Streak)
	} else {
		fmt.Printf("Unmarked %q for %s (streak: %d)\n", c.Name, rec.Date, updated.Streak)
	}
	return nil
}

type TrackSetCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Date      string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Completed bool   `help:"Completion value to set." default:"true" negatable:""`
}

func (c *TrackSetCmd) Run(ctx *Context) error {
	habit, err := ctx.Repo.HabitByName(c.Name)
	if err != nil {
		return err
	}
	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	rec, err := ctx.Repo.SetCompletion(habit.ID, date, c.Completed)
	if err != nil {
		return err
	}

	fmt.Printf("Set %q to completed=%v for %s\n", c.Name, rec.Completed, rec.Date)
	return nil
}

type TrackTodayCmd struct {
	Date string `help:"Show checklist for another date (YYYY-MM-DD)." default:""`
}

func (c *TrackTodayCmd) Run(ctx *Context) error {
	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}
	dayKey := dateutil.FormatKey(date)

	active := ctx.Repo.HabitsForDate(date)
	if len(active) == 0 {
		fmt.Printf("No habits active on %s.\n", dayKey)
		return nil
	}

	fmt.Printf("Habits for %s:\n\n", dayKey)
	completed := 0
	for _, h := range active {
		status := "[ ]"
		if rec, ok := ctx.Repo.Completions().Get(h.ID, date); ok && rec.Completed {
			status = "[x]"
			completed++
		}
		fmt.Printf("%s %s\n", status, h.Name)
	}

	agg := ctx.Repo.Aggregator(date)
	fmt.Printf("\nCompleted: %d/%d (%.0f%%)\n", completed, len(active), agg.CompletionRateForDate(date))
	return nil
}
