package validation

import (
	"errors"
	"testing"

	apperrors "github.com/habitflow/habitflow/internal/errors"
	"github.com/habitflow/habitflow/internal/models"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return verr.Field
}

func TestValidateDraft(t *testing.T) {
	cases := []struct {
		name      string
		draft     models.HabitDraft
		wantField string
	}{
		{"valid minimal", models.HabitDraft{Name: "Read"}, ""},
		{"valid full", models.HabitDraft{
			Name: "Read", TargetCount: 2,
			StartDate: "2025-01-01", EndDate: "2025-12-31", ReminderTime: "08:30",
		}, ""},
		{"empty name", models.HabitDraft{Name: ""}, "name"},
		{"blank name", models.HabitDraft{Name: "   "}, "name"},
		{"negative target", models.HabitDraft{Name: "Read", TargetCount: -1}, "targetCount"},
		{"bad start date", models.HabitDraft{Name: "Read", StartDate: "01/01/2025"}, "startDate"},
		{"bad end date", models.HabitDraft{Name: "Read", EndDate: "2025-13-01"}, "endDate"},
		{"bad reminder", models.HabitDraft{Name: "Read", ReminderTime: "8:30pm"}, "reminderTime"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDraft(tc.draft)
			if tc.wantField == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if got := fieldOf(t, err); got != tc.wantField {
				t.Errorf("field = %s, want %s", got, tc.wantField)
			}
		})
	}
}

func TestValidateDraft_InvertedWindowIsNotAnError(t *testing.T) {
	draft := models.HabitDraft{Name: "Odd", StartDate: "2025-02-01", EndDate: "2025-01-01"}
	if err := ValidateDraft(draft); err != nil {
		t.Errorf("inverted window should pass validation, got %v", err)
	}
	if !HasInvertedWindow(draft.StartDate, draft.EndDate) {
		t.Error("HasInvertedWindow should flag it for a warning")
	}
}

func TestValidatePatch(t *testing.T) {
	empty := "  "
	zero := 0
	badDate := "soon"
	goodName := "Renamed"

	if err := ValidatePatch(models.HabitPatch{Name: &goodName}); err != nil {
		t.Errorf("valid patch rejected: %v", err)
	}
	if got := fieldOf(t, ValidatePatch(models.HabitPatch{Name: &empty})); got != "name" {
		t.Errorf("field = %s, want name", got)
	}
	if got := fieldOf(t, ValidatePatch(models.HabitPatch{TargetCount: &zero})); got != "targetCount" {
		t.Errorf("field = %s, want targetCount", got)
	}
	if got := fieldOf(t, ValidatePatch(models.HabitPatch{EndDate: &badDate})); got != "endDate" {
		t.Errorf("field = %s, want endDate", got)
	}
}

func TestHasInvertedWindow(t *testing.T) {
	cases := []struct {
		start, end string
		want       bool
	}{
		{"2025-02-01", "2025-01-01", true},
		{"2025-01-01", "2025-02-01", false},
		{"2025-01-01", "2025-01-01", false},
		{"", "2025-01-01", false},
		{"2025-01-01", "", false},
		{"bogus", "2025-01-01", false},
	}
	for _, tc := range cases {
		if got := HasInvertedWindow(tc.start, tc.end); got != tc.want {
			t.Errorf("HasInvertedWindow(%q, %q) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}
