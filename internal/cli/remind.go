package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/reminder"
)

type RemindCmd struct{}

// Run starts the foreground reminder loop. Reminders print to stdout when a
// habit with a reminderTime is active and still unfinished for the day.
func (c *RemindCmd) Run(ctx *Context) error {
	sched := reminder.New(ctx.Repo, func(h models.Habit) {
		fmt.Printf("Reminder: %s", h.Name)
		if h.Description != "" {
			fmt.Printf(" (%s)", h.Description)
		}
		fmt.Println()
	})

	count, err := sched.Schedule()
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Println("No habits with reminder times configured.")
		return nil
	}

	fmt.Printf("Watching %d reminder(s). Press Ctrl+C to stop.\n", count)
	sched.Start()
	defer sched.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("\nStopped.")
	return nil
}
