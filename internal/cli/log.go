package cli

import (
	"fmt"
	"strings"

	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/habits"
	"github.com/habitflow/habitflow/internal/models"
)

type LogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *LogCmd) Run(ctx *Context) error {
	all := ctx.Repo.Habits()
	if len(all) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	var selected []models.Habit
	if c.Habit != "" {
		h, err := ctx.Repo.HabitByName(c.Habit)
		if err != nil {
			return err
		}
		selected = []models.Habit{h}
	} else {
		selected = all
	}

	endDay := dateutil.NormalizeToDay(ctx.Today())
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const maxNameLen = 20
	fmt.Print("Habit               ")
	for _, day := range dateutil.EnumerateRange(startDay, endDay) {
		fmt.Printf(" %5s", day.Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	for i := 0; i < c.Days; i++ {
		fmt.Print("------")
	}
	fmt.Println()

	for _, habit := range selected {
		name := habit.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		for _, day := range dateutil.EnumerateRange(startDay, endDay) {
			marker := "  .   "
			if rec, ok := ctx.Repo.Completions().Get(habit.ID, day); ok && rec.Completed {
				marker = "  x   "
			} else if !habits.IsActiveOn(habit, day) {
				marker = "      "
			}
			fmt.Print(marker)
		}
		fmt.Println()
	}

	return nil
}
