package habits

import (
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/models"
)

// IsActiveOn reports whether a habit is schedulable on the given date: the
// normalized date must fall within [StartDate, EndDate]. A missing start
// date falls back to a fixed epoch; a missing end date means open-ended.
// Frequency is not consulted: all frequencies are treated as active every
// day inside the window.
//
// A habit whose start date is after its end date is never active; that is a
// user data error, not something worth raising here.
func IsActiveOn(h models.Habit, date time.Time) bool {
	day := dateutil.NormalizeToDay(date)

	startStr := h.StartDate
	if startStr == "" {
		startStr = constants.DefaultEpoch
	}
	start, err := dateutil.ParseKey(startStr)
	if err != nil {
		return false
	}

	if day.Before(start) {
		return false
	}

	if h.EndDate == "" {
		return true
	}
	end, err := dateutil.ParseKey(h.EndDate)
	if err != nil {
		return false
	}
	return !day.After(end)
}
