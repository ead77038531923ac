// Package reminder schedules habit reminder notifications with cron. Only
// habits that carry a reminderTime and are active on the day the reminder
// fires produce output.
package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/habitflow/habitflow/internal/habits"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
)

// Notify receives a habit whose reminder is due.
type Notify func(models.Habit)

// Scheduler wraps cron-based reminder jobs for the habit catalog.
type Scheduler struct {
	cron   *cron.Cron
	repo   *habits.Repository
	notify Notify
}

func New(repo *habits.Repository, notify Notify) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.Local)),
		repo:   repo,
		notify: notify,
	}
}

// Schedule registers one daily cron entry per habit with a reminder time.
// Returns the number of scheduled reminders.
func (s *Scheduler) Schedule() (int, error) {
	count := 0
	for _, h := range s.repo.Habits() {
		if h.ReminderTime == "" {
			continue
		}
		spec, err := dailySpec(h.ReminderTime)
		if err != nil {
			logger.Warn("Skipping habit with invalid reminder time",
				"habit", h.Name, "reminderTime", h.ReminderTime)
			continue
		}

		habit := h
		if _, err := s.cron.AddFunc(spec, func() { s.fire(habit) }); err != nil {
			return count, fmt.Errorf("failed to schedule reminder for %q: %w", h.Name, err)
		}
		count++
	}
	return count, nil
}

func (s *Scheduler) fire(h models.Habit) {
	now := time.Now()
	if !habits.IsActiveOn(h, now) {
		return
	}
	if rec, ok := s.repo.Completions().Get(h.ID, now); ok && rec.Completed {
		return // already done today
	}
	logger.Info("Reminder fired", "habit", h.Name)
	s.notify(h)
}

// Start begins dispatching reminders.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts dispatching and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func dailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
