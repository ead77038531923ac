package models

// HabitCompletion records whether a habit was done on a given day.
// At most one record exists per (HabitID, Date) pair; writes overwrite.
type HabitCompletion struct {
	HabitID     string `json:"habitId"`
	Date        string `json:"date"` // YYYY-MM-DD
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt,omitempty"` // RFC3339, set while completed
}
