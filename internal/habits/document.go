// Package habits implements the habit/completion data model and the derived
// metrics engine: activity windows, completion records, streaks, and
// consistency aggregation. All persistence goes through a storage.Provider
// holding one JSON document under a single key.
package habits

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
)

// Document is the single persisted blob: the habit catalog, the completion
// log, and the user profile live together and are read/written as a unit.
type Document struct {
	Habits           []models.Habit           `json:"habits"`
	UserProfile      *models.UserProfile      `json:"userProfile"`
	HabitCompletions []models.HabitCompletion `json:"habitCompletions,omitempty"`
	LastSync         string                   `json:"lastSync"`
	Version          string                   `json:"version"`
}

// DefaultDocument returns the empty state used when nothing is stored yet or
// the stored blob fails validation.
func DefaultDocument(now time.Time) *Document {
	return &Document{
		Habits:           []models.Habit{},
		UserProfile:      nil,
		HabitCompletions: []models.HabitCompletion{},
		LastSync:         now.Format(time.RFC3339),
		Version:          constants.DataVersion,
	}
}

// ParseDocument decodes and structurally validates a stored blob. A document
// must carry "habits" as an array and "userProfile" as null or an object;
// anything else is rejected so the caller can fall back to defaults.
func ParseDocument(data string) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}

	habitsRaw, ok := raw["habits"]
	if !ok {
		return nil, fmt.Errorf("document missing habits field")
	}
	var habitsProbe []json.RawMessage
	if err := json.Unmarshal(habitsRaw, &habitsProbe); err != nil {
		return nil, fmt.Errorf("habits field is not an array: %w", err)
	}

	if profileRaw, ok := raw["userProfile"]; ok {
		var profileProbe map[string]json.RawMessage
		if string(profileRaw) != "null" {
			if err := json.Unmarshal(profileRaw, &profileProbe); err != nil {
				return nil, fmt.Errorf("userProfile is neither null nor an object: %w", err)
			}
		}
	}

	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}
	if doc.Habits == nil {
		doc.Habits = []models.Habit{}
	}
	if doc.HabitCompletions == nil {
		doc.HabitCompletions = []models.HabitCompletion{}
	}
	return &doc, nil
}

// Encode serializes the document for storage.
func (d *Document) Encode() (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	return string(data), nil
}

// Fingerprint hashes the habit and completion state, ignoring the sync
// metadata, so redundant saves can be detected.
func (d *Document) Fingerprint() (uint64, error) {
	state := struct {
		Habits      []models.Habit
		Completions []models.HabitCompletion
		Profile     *models.UserProfile
	}{d.Habits, d.HabitCompletions, d.UserProfile}

	return hashstructure.Hash(state, hashstructure.FormatV2, nil)
}
