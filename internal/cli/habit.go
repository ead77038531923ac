package cli

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its completion history."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Habit description."`
	Category    string `help:"Category label (default: Uncategorized)."`
	Color       string `help:"Display color (hex)."`
	Frequency   string `help:"Frequency: Daily, Weekly, or Monthly." default:"Daily"`
	Target      int    `help:"Repetitions expected per period." default:"1"`
	Start       string `help:"Start date (YYYY-MM-DD, default: today)."`
	End         string `help:"End date (YYYY-MM-DD, default: open-ended)."`
	Priority    string `help:"Priority: High, Medium, or Low." default:"Medium"`
	Remind      string `help:"Reminder time (HH:MM)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if _, err := ctx.Repo.HabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	draft := models.HabitDraft{
		Name:          c.Name,
		Description:   c.Description,
		Category:      c.Category,
		Color:         c.Color,
		FrequencyType: models.FrequencyType(c.Frequency),
		TargetCount:   c.Target,
		StartDate:     c.Start,
		EndDate:       c.End,
		PriorityLevel: models.PriorityLevel(c.Priority),
		ReminderTime:  c.Remind,
	}
	if err := validation.ValidateDraft(draft); err != nil {
		return err
	}
	if validation.HasInvertedWindow(c.Start, c.End) {
		logger.Warn("Habit start date is after its end date, it will never be active",
			"habit", c.Name, "start", c.Start, "end", c.End)
		fmt.Printf("Warning: start date %s is after end date %s; habit will never be active\n", c.Start, c.End)
	}

	habit, err := ctx.Repo.CreateHabit(draft)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (starts %s)\n", habit.Name, habit.StartDate)
	return nil
}

type HabitListCmd struct {
	Date string `help:"Only habits active on this date (YYYY-MM-DD)."`
	All  bool   `help:"Include habits not active today." default:"true" negatable:""`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habitList := ctx.Repo.Habits()
	switch {
	case c.Date != "":
		date, err := parseDateFlag(c.Date)
		if err != nil {
			return err
		}
		habitList = ctx.Repo.HabitsForDate(date)
	case !c.All:
		habitList = ctx.Repo.HabitsForDate(ctx.Today())
	}

	if len(habitList) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range habitList {
		window := h.StartDate
		if h.EndDate != "" {
			window += " to " + h.EndDate
		} else {
			window += " onward"
		}
		fmt.Printf("%-25s %-8s %-14s %s (streak %d)\n",
			h.Name, models.EffectivePriority(h), models.EffectiveCategory(h), window, h.Streak)
	}
	return nil
}

type HabitEditCmd struct {
	Name        string  `arg:"" help:"Habit name to edit."`
	NewName     *string `help:"Rename the habit."`
	Description *string `help:"New description."`
	Category    *string `help:"New category."`
	Color       *string `help:"New color."`
	Frequency   *string `help:"New frequency: Daily, Weekly, or Monthly."`
	Target      *int    `help:"New target count."`
	Start       *string `help:"New start date (YYYY-MM-DD)."`
	End         *string `help:"New end date (YYYY-MM-DD, empty clears)."`
	Priority    *string `help:"New priority: High, Medium, or Low."`
	Remind      *string `help:"New reminder time (HH:MM, empty clears)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := ctx.Repo.HabitByName(c.Name)
	if err != nil {
		return err
	}

	patch := models.HabitPatch{
		Name:        c.NewName,
		Description: c.Description,
		Category:    c.Category,
		Color:       c.Color,
		TargetCount: c.Target,
		StartDate:   c.Start,
		EndDate:     c.End,
	}
	if c.Frequency != nil {
		f := models.FrequencyType(*c.Frequency)
		patch.FrequencyType = &f
	}
	if c.Priority != nil {
		p := models.PriorityLevel(*c.Priority)
		patch.PriorityLevel = &p
	}
	if c.Remind != nil {
		patch.ReminderTime = c.Remind
	}

	if err := validation.ValidatePatch(patch); err != nil {
		return err
	}
	if err := ctx.Repo.UpdateHabit(habit.ID, patch); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", c.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.Repo.HabitByName(c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Repo.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (completion history removed)\n", c.Name)
	return nil
}
