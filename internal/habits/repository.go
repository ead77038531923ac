package habits

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/habitflow/habitflow/internal/errors"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/storage"
)

// Repository owns the habit catalog and the completion log, persisting both
// as one document through an injected storage provider. Operations are
// whole-document read-modify-write: a save replaces the entire stored blob,
// so concurrent external writers are not supported. Overlapping toggles on
// the same (habit, date) key are last-write-wins; callers serialize
// user-triggered mutations.
type Repository struct {
	store storage.Provider
	key   string
	clock Clock

	doc         *Document
	completions *CompletionStore
	savedHash   uint64
}

// Option configures a Repository.
type Option func(*Repository)

// WithKey overrides the storage key the document lives under.
func WithKey(key string) Option {
	return func(r *Repository) { r.key = key }
}

// WithClock injects the time source, for tests.
func WithClock(clock Clock) Option {
	return func(r *Repository) { r.clock = clock }
}

// NewRepository builds a repository around the given storage provider. Call
// Load before anything else.
func NewRepository(store storage.Provider, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		key:   constants.StorageKey,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads the document from storage. A missing blob, a read failure, or a
// blob failing structural validation all fall back to the empty default
// state; the app must stay usable offline-first, so load never fails.
func (r *Repository) Load() error {
	data, ok, err := r.store.Get(r.key)
	if err != nil {
		logger.Warn("Storage read failed, using default data",
			"error", &apperrors.StorageReadError{Err: err})
		r.reset(DefaultDocument(r.clock()))
		return nil
	}
	if !ok {
		r.reset(DefaultDocument(r.clock()))
		return nil
	}

	doc, err := ParseDocument(data)
	if err != nil {
		logger.Warn("Stored document rejected, using default data", "error", err)
		r.reset(DefaultDocument(r.clock()))
		return nil
	}

	r.reset(doc)
	if hash, err := doc.Fingerprint(); err == nil {
		r.savedHash = hash
	}
	return nil
}

func (r *Repository) reset(doc *Document) {
	r.doc = doc
	r.completions = NewCompletionStore(doc.HabitCompletions, r.clock)
	r.savedHash = 0
}

// save stamps sync metadata and writes the whole document. The write is
// skipped when the habit/completion state hash matches the last saved one.
// A write failure propagates as StorageWriteError; the in-memory mutation is
// not rolled back, which callers must treat as a known consistency gap.
func (r *Repository) save() error {
	r.doc.HabitCompletions = r.completions.ListAll()

	hash, hashErr := r.doc.Fingerprint()
	if hashErr == nil && hash == r.savedHash && r.savedHash != 0 {
		logger.Debug("Skipping save, state unchanged", "fingerprint", hash)
		return nil
	}

	r.doc.LastSync = r.clock().Format(time.RFC3339)
	r.doc.Version = constants.DataVersion

	data, err := r.doc.Encode()
	if err != nil {
		return &apperrors.StorageWriteError{Err: err}
	}
	if err := r.store.Set(r.key, data); err != nil {
		return &apperrors.StorageWriteError{Err: err}
	}
	if hashErr == nil {
		r.savedHash = hash
	}
	return nil
}

// Habits returns the full catalog regardless of date constraints.
func (r *Repository) Habits() []models.Habit {
	return r.doc.Habits
}

// Habit returns the habit with the given id.
func (r *Repository) Habit(id string) (models.Habit, error) {
	for _, h := range r.doc.Habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
}

// HabitByName returns the first habit with the given name. CLI commands
// address habits by name; ids stay an internal concern.
func (r *Repository) HabitByName(name string) (models.Habit, error) {
	for _, h := range r.doc.Habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperrors.ErrNotFound)
}

// HabitsForDate returns the habits active on the given date.
func (r *Repository) HabitsForDate(date time.Time) []models.Habit {
	var out []models.Habit
	for _, h := range r.doc.Habits {
		if IsActiveOn(h, date) {
			out = append(out, h)
		}
	}
	return out
}

// CreateHabit assigns an id, fills defaults, and persists the new habit.
// The start date defaults to today; provided dates are normalized through
// the canonical day-key format.
func (r *Repository) CreateHabit(draft models.HabitDraft) (models.Habit, error) {
	now := r.clock()

	startDate := draft.StartDate
	if startDate == "" {
		startDate = dateutil.FormatKey(now)
	} else {
		parsed, err := dateutil.ParseKey(startDate)
		if err != nil {
			return models.Habit{}, &apperrors.ValidationError{Field: "startDate", Reason: err.Error()}
		}
		startDate = dateutil.FormatKey(parsed)
	}

	endDate := draft.EndDate
	if endDate != "" {
		parsed, err := dateutil.ParseKey(endDate)
		if err != nil {
			return models.Habit{}, &apperrors.ValidationError{Field: "endDate", Reason: err.Error()}
		}
		endDate = dateutil.FormatKey(parsed)
	}

	color := draft.Color
	if color == "" {
		color = models.DefaultColor
	}

	targetCount := draft.TargetCount
	if targetCount <= 0 {
		targetCount = 1
	}

	habit := models.Habit{
		ID:            uuid.New().String(),
		Name:          draft.Name,
		Description:   draft.Description,
		Image:         draft.Image,
		Category:      draft.Category,
		Color:         color,
		FrequencyType: draft.FrequencyType.OrDefault(),
		TargetCount:   targetCount,
		StartDate:     startDate,
		EndDate:       endDate,
		PriorityLevel: draft.PriorityLevel.OrDefault(),
		ReminderTime:  draft.ReminderTime,
		Completed:     false,
		Streak:        0,
		Current:       0,
		CreatedAt:     now.Format(time.RFC3339),
	}

	r.doc.Habits = append(r.doc.Habits, habit)
	if err := r.save(); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// UpdateHabit merges the patch into the existing habit and persists.
func (r *Repository) UpdateHabit(id string, patch models.HabitPatch) error {
	for i := range r.doc.Habits {
		if r.doc.Habits[i].ID == id {
			patch.Apply(&r.doc.Habits[i])
			return r.save()
		}
	}
	return fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
}

// DeleteHabit removes the habit and cascades deletion of its completion
// records, persisting both in a single save.
func (r *Repository) DeleteHabit(id string) error {
	idx := -1
	for i, h := range r.doc.Habits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
	}

	r.doc.Habits = append(r.doc.Habits[:idx], r.doc.Habits[idx+1:]...)
	r.completions.RemoveForHabit(id)
	return r.save()
}

// ToggleCompletion flips the completion for (habit, date), recomputes the
// habit's streak as of today, and persists the combined state.
func (r *Repository) ToggleCompletion(id string, date time.Time) (models.HabitCompletion, error) {
	if _, err := r.Habit(id); err != nil {
		return models.HabitCompletion{}, err
	}

	rec := r.completions.Toggle(id, date)
	r.refreshStreak(id)
	if err := r.save(); err != nil {
		return rec, err
	}
	return rec, nil
}

// SetCompletion sets the completion directly (history editing), then
// recomputes the streak and persists.
func (r *Repository) SetCompletion(id string, date time.Time, completed bool) (models.HabitCompletion, error) {
	if _, err := r.Habit(id); err != nil {
		return models.HabitCompletion{}, err
	}

	rec := r.completions.SetExplicit(id, date, completed)
	r.refreshStreak(id)
	if err := r.save(); err != nil {
		return rec, err
	}
	return rec, nil
}

// refreshStreak recomputes the cached streak from scratch. Incremental
// patching would drift when history edits land behind the reference date.
func (r *Repository) refreshStreak(id string) {
	for i := range r.doc.Habits {
		if r.doc.Habits[i].ID == id {
			r.doc.Habits[i].Streak = ComputeStreak(r.completions, id, r.clock())
			return
		}
	}
}

// Completions returns the completion store for derived-metric queries.
func (r *Repository) Completions() *CompletionStore {
	return r.completions
}

// CompletionsForHabit returns the habit's completion history.
func (r *Repository) CompletionsForHabit(id string) []models.HabitCompletion {
	return r.completions.ListForHabit(id)
}

// Aggregator builds a consistency aggregator over the current state as of
// the given reference date.
func (r *Repository) Aggregator(ref time.Time) *Aggregator {
	return NewAggregator(r.doc.Habits, r.completions, ref)
}

// Profile returns the stored user profile, or nil when signed out.
func (r *Repository) Profile() *models.UserProfile {
	return r.doc.UserProfile
}

// SaveProfile creates or replaces the user profile.
func (r *Repository) SaveProfile(profile models.UserProfile) error {
	r.doc.UserProfile = &profile
	return r.save()
}

// UpdateProfile merges the patch into the existing profile.
func (r *Repository) UpdateProfile(patch models.ProfilePatch) (models.UserProfile, error) {
	if r.doc.UserProfile == nil {
		return models.UserProfile{}, fmt.Errorf("user profile: %w", apperrors.ErrNotFound)
	}
	patch.Apply(r.doc.UserProfile)
	if err := r.save(); err != nil {
		return models.UserProfile{}, err
	}
	return *r.doc.UserProfile, nil
}

// CreateProfileFromIdentity seeds a profile from the identity collaborator.
func (r *Repository) CreateProfileFromIdentity(id, name, email, avatar string) (models.UserProfile, error) {
	if name == "" {
		name = "User"
	}
	now := r.clock().Format(time.RFC3339)
	profile := models.UserProfile{
		ID:        id,
		Name:      name,
		Email:     email,
		Avatar:    avatar,
		Bio:       "Building consistent habits, one day at a time.",
		CreatedAt: now,
		LastLogin: now,
	}
	if err := r.SaveProfile(profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// ClearProfile removes the user profile while keeping habit data.
func (r *Repository) ClearProfile() error {
	r.doc.UserProfile = nil
	return r.save()
}

// Flush persists the current in-memory state unconditionally, bypassing the
// unchanged-state check. Used by init to materialize the default document.
func (r *Repository) Flush() error {
	r.savedHash = 0
	return r.save()
}

// Export serializes the whole document for backup or transfer.
func (r *Repository) Export() (string, error) {
	r.doc.HabitCompletions = r.completions.ListAll()
	return r.doc.Encode()
}

// Import validates and replaces the whole document. Unlike Load, a rejected
// payload is an error here; silently replacing good data with defaults would
// be worse than failing.
func (r *Repository) Import(data string) error {
	doc, err := ParseDocument(data)
	if err != nil {
		return err
	}
	r.reset(doc)
	return r.save()
}

// Fingerprint exposes the current state hash for diagnostics.
func (r *Repository) Fingerprint() (uint64, error) {
	r.doc.HabitCompletions = r.completions.ListAll()
	return r.doc.Fingerprint()
}

// LastSync returns the stored sync timestamp.
func (r *Repository) LastSync() string {
	return r.doc.LastSync
}
