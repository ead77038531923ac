package habits

import (
	"sort"
	"time"

	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/models"
)

// Clock supplies the current time; injectable for tests.
type Clock func() time.Time

// CompletionStore maps (habit id, day key) to at most one completion record.
// Writes are last-write-wins on that key, never append-only.
type CompletionStore struct {
	records map[string]models.HabitCompletion
	clock   Clock
}

func completionKey(habitID, dateKey string) string {
	return habitID + "|" + dateKey
}

// NewCompletionStore builds a store from a record slice. Duplicate
// (habitId, date) entries collapse to the last one seen.
func NewCompletionStore(records []models.HabitCompletion, clock Clock) *CompletionStore {
	if clock == nil {
		clock = time.Now
	}
	s := &CompletionStore{
		records: make(map[string]models.HabitCompletion, len(records)),
		clock:   clock,
	}
	for _, r := range records {
		s.records[completionKey(r.HabitID, r.Date)] = r
	}
	return s
}

// Get returns the record for (habitID, date) and whether it exists.
func (s *CompletionStore) Get(habitID string, date time.Time) (models.HabitCompletion, bool) {
	r, ok := s.records[completionKey(habitID, dateutil.FormatKey(date))]
	return r, ok
}

// Toggle flips the completed state for (habitID, date), creating the record
// if absent so the first toggle on a missing key lands on completed=true.
// CompletedAt is stamped on the transition to completed and cleared on
// un-complete.
func (s *CompletionStore) Toggle(habitID string, date time.Time) models.HabitCompletion {
	key := dateutil.FormatKey(date)
	existing, ok := s.records[completionKey(habitID, key)]

	completed := true
	if ok {
		completed = !existing.Completed
	}
	return s.put(habitID, key, completed)
}

// SetExplicit sets the completed state directly, with the same
// create-or-update semantics as Toggle. Used by history-editing flows.
func (s *CompletionStore) SetExplicit(habitID string, date time.Time, completed bool) models.HabitCompletion {
	return s.put(habitID, dateutil.FormatKey(date), completed)
}

func (s *CompletionStore) put(habitID, dateKey string, completed bool) models.HabitCompletion {
	rec := models.HabitCompletion{
		HabitID:   habitID,
		Date:      dateKey,
		Completed: completed,
	}
	if completed {
		rec.CompletedAt = s.clock().Format(time.RFC3339)
	}
	s.records[completionKey(habitID, dateKey)] = rec
	return rec
}

// ListForHabit returns the habit's records ordered by date ascending.
func (s *CompletionStore) ListForHabit(habitID string) []models.HabitCompletion {
	var out []models.HabitCompletion
	for _, r := range s.records {
		if r.HabitID == habitID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ListAll returns every record, ordered by habit id then date for
// deterministic serialization.
func (s *CompletionStore) ListAll() []models.HabitCompletion {
	out := make([]models.HabitCompletion, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HabitID != out[j].HabitID {
			return out[i].HabitID < out[j].HabitID
		}
		return out[i].Date < out[j].Date
	})
	return out
}

// RemoveForHabit deletes every record belonging to the habit. Used when the
// owning habit is deleted.
func (s *CompletionStore) RemoveForHabit(habitID string) {
	for key, r := range s.records {
		if r.HabitID == habitID {
			delete(s.records, key)
		}
	}
}

// Remove deletes a single record if present.
func (s *CompletionStore) Remove(habitID string, date time.Time) {
	delete(s.records, completionKey(habitID, dateutil.FormatKey(date)))
}

// Len returns the number of stored records.
func (s *CompletionStore) Len() int {
	return len(s.records)
}
