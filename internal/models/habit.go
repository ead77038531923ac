package models

type FrequencyType string

const (
	FrequencyDaily   FrequencyType = "Daily"
	FrequencyWeekly  FrequencyType = "Weekly"
	FrequencyMonthly FrequencyType = "Monthly"
)

type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "High"
	PriorityMedium PriorityLevel = "Medium"
	PriorityLow    PriorityLevel = "Low"
)

const (
	DefaultCategory = "Uncategorized"
	DefaultColor    = "#3B82F6"
)

// Habit is a recurring task definition. Dates are YYYY-MM-DD day keys;
// an empty EndDate means the habit is active indefinitely.
type Habit struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Image         string        `json:"image,omitempty"`
	Category      string        `json:"category,omitempty"`
	Color         string        `json:"color,omitempty"`
	FrequencyType FrequencyType `json:"frequencyType,omitempty"`
	TargetCount   int           `json:"targetCount,omitempty"`
	StartDate     string        `json:"startDate,omitempty"`
	EndDate       string        `json:"endDate,omitempty"`
	PriorityLevel PriorityLevel `json:"priorityLevel,omitempty"`
	ReminderTime  string        `json:"reminderTime,omitempty"` // HH:MM
	Completed     bool          `json:"completed"`
	Streak        int           `json:"streak"`
	Current       int           `json:"current"`
	CreatedAt     string        `json:"createdAt,omitempty"` // RFC3339
}

// HabitDraft carries the caller-supplied fields for habit creation.
// Everything except Name is optional and gets defaulted by the repository.
type HabitDraft struct {
	Name          string
	Description   string
	Image         string
	Category      string
	Color         string
	FrequencyType FrequencyType
	TargetCount   int
	StartDate     string
	EndDate       string
	PriorityLevel PriorityLevel
	ReminderTime  string
}

// HabitPatch enumerates the mutable habit fields for partial updates.
// Nil pointers mean "leave unchanged"; unknown fields are rejected at the
// CLI boundary because there is nowhere to put them.
type HabitPatch struct {
	Name          *string        `json:"name,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Image         *string        `json:"image,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Color         *string        `json:"color,omitempty"`
	FrequencyType *FrequencyType `json:"frequencyType,omitempty"`
	TargetCount   *int           `json:"targetCount,omitempty"`
	StartDate     *string        `json:"startDate,omitempty"`
	EndDate       *string        `json:"endDate,omitempty"`
	PriorityLevel *PriorityLevel `json:"priorityLevel,omitempty"`
	ReminderTime  *string        `json:"reminderTime,omitempty"`
}

// Apply merges the patch into the habit, field by field.
func (p HabitPatch) Apply(h *Habit) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.Image != nil {
		h.Image = *p.Image
	}
	if p.Category != nil {
		h.Category = *p.Category
	}
	if p.Color != nil {
		h.Color = *p.Color
	}
	if p.FrequencyType != nil {
		h.FrequencyType = *p.FrequencyType
	}
	if p.TargetCount != nil {
		h.TargetCount = *p.TargetCount
	}
	if p.StartDate != nil {
		h.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		h.EndDate = *p.EndDate
	}
	if p.PriorityLevel != nil {
		h.PriorityLevel = *p.PriorityLevel
	}
	if p.ReminderTime != nil {
		h.ReminderTime = *p.ReminderTime
	}
}

// EffectiveCategory returns the habit's category, defaulting to
// "Uncategorized". Every consumer must go through this accessor so that
// grouping agrees across the app.
func EffectiveCategory(h Habit) string {
	if h.Category == "" {
		return DefaultCategory
	}
	return h.Category
}

// EffectivePriority returns the habit's priority, defaulting to Medium.
func EffectivePriority(h Habit) PriorityLevel {
	return h.PriorityLevel.OrDefault()
}

// EffectiveFrequency returns the habit's frequency, defaulting to Daily.
// Frequency is advisory: the activity window treats all frequencies as
// active every day within [StartDate, EndDate].
func EffectiveFrequency(h Habit) FrequencyType {
	return h.FrequencyType.OrDefault()
}

// EffectiveTargetCount returns the repetitions expected per period,
// defaulting to 1.
func EffectiveTargetCount(h Habit) int {
	if h.TargetCount <= 0 {
		return 1
	}
	return h.TargetCount
}

// OrDefault maps unknown priority values to Medium.
func (p PriorityLevel) OrDefault() PriorityLevel {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p
	default:
		return PriorityMedium
	}
}

// OrDefault maps unknown frequency values to Daily.
func (f FrequencyType) OrDefault() FrequencyType {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return f
	default:
		return FrequencyDaily
	}
}
