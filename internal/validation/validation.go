// Package validation rejects bad habit input at the boundary, before it
// reaches the repository.
package validation

import (
	"strings"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	apperrors "github.com/habitflow/habitflow/internal/errors"
	"github.com/habitflow/habitflow/internal/models"
)

func isValidDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

func isValidTime(s string) bool {
	_, err := time.Parse(constants.TimeFormat, s)
	return err == nil
}

// ValidateDraft checks a habit draft for hard failures. An inverted
// start/end window is deliberately not an error here; the activity
// predicate simply treats such a habit as never active.
func ValidateDraft(draft models.HabitDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return &apperrors.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if draft.TargetCount < 0 {
		return &apperrors.ValidationError{Field: "targetCount", Reason: "must be positive"}
	}
	if draft.StartDate != "" && !isValidDate(draft.StartDate) {
		return &apperrors.ValidationError{Field: "startDate", Reason: "expected YYYY-MM-DD"}
	}
	if draft.EndDate != "" && !isValidDate(draft.EndDate) {
		return &apperrors.ValidationError{Field: "endDate", Reason: "expected YYYY-MM-DD"}
	}
	if draft.ReminderTime != "" && !isValidTime(draft.ReminderTime) {
		return &apperrors.ValidationError{Field: "reminderTime", Reason: "expected HH:MM"}
	}
	return nil
}

// ValidatePatch checks the mutable fields of a habit patch.
func ValidatePatch(patch models.HabitPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return &apperrors.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if patch.TargetCount != nil && *patch.TargetCount <= 0 {
		return &apperrors.ValidationError{Field: "targetCount", Reason: "must be positive"}
	}
	if patch.StartDate != nil && *patch.StartDate != "" && !isValidDate(*patch.StartDate) {
		return &apperrors.ValidationError{Field: "startDate", Reason: "expected YYYY-MM-DD"}
	}
	if patch.EndDate != nil && *patch.EndDate != "" && !isValidDate(*patch.EndDate) {
		return &apperrors.ValidationError{Field: "endDate", Reason: "expected YYYY-MM-DD"}
	}
	if patch.ReminderTime != nil && *patch.ReminderTime != "" && !isValidTime(*patch.ReminderTime) {
		return &apperrors.ValidationError{Field: "reminderTime", Reason: "expected HH:MM"}
	}
	return nil
}

// HasInvertedWindow reports a habit whose start date falls after its end
// date. Callers may log a warning; the habit is simply never active.
func HasInvertedWindow(startDate, endDate string) bool {
	if startDate == "" || endDate == "" {
		return false
	}
	if !isValidDate(startDate) || !isValidDate(endDate) {
		return false
	}
	return startDate > endDate
}
