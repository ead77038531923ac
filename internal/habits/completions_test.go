package habits

import (
	"testing"
	"time"

	"github.com/habitflow/habitflow/internal/models"
)

func fixedClock(s string) Clock {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestToggle_PairsBackToFalse(t *testing.T) {
	store := NewCompletionStore(nil, fixedClock("2025-03-01 10:00"))

	first := store.Toggle("h1", day("2025-03-01"))
	if !first.Completed {
		t.Error("first toggle on a fresh key should set completed=true")
	}
	if first.CompletedAt == "" {
		t.Error("completedAt should be stamped on completion")
	}
	if rec, ok := store.Get("h1", day("2025-03-01")); !ok || !rec.Completed {
		t.Error("Get after first toggle should see completed=true")
	}

	second := store.Toggle("h1", day("2025-03-01"))
	if second.Completed {
		t.Error("second toggle should set completed=false")
	}
	if second.CompletedAt != "" {
		t.Error("completedAt should be cleared on un-complete")
	}
	if rec, ok := store.Get("h1", day("2025-03-01")); !ok || rec.Completed {
		t.Error("Get after second toggle should see completed=false")
	}
}

func TestSetExplicit_CreateOrUpdate(t *testing.T) {
	store := NewCompletionStore(nil, fixedClock("2025-03-01 10:00"))

	rec := store.SetExplicit("h1", day("2025-02-14"), true)
	if !rec.Completed || rec.Date != "2025-02-14" {
		t.Errorf("unexpected record %+v", rec)
	}

	rec = store.SetExplicit("h1", day("2025-02-14"), false)
	if rec.Completed {
		t.Error("explicit set to false should stick")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 record after overwrite, got %d", store.Len())
	}
}

func TestCompletionStore_OneRecordPerKey(t *testing.T) {
	// Duplicate entries in the loaded slice collapse to the last one.
	records := []models.HabitCompletion{
		{HabitID: "h1", Date: "2025-03-01", Completed: false},
		{HabitID: "h1", Date: "2025-03-01", Completed: true},
	}
	store := NewCompletionStore(records, fixedClock("2025-03-02 08:00"))

	if store.Len() != 1 {
		t.Fatalf("expected duplicates to collapse, got %d records", store.Len())
	}
	if rec, _ := store.Get("h1", day("2025-03-01")); !rec.Completed {
		t.Error("last write should win for duplicate keys")
	}
}

func TestListForHabit_SortedByDate(t *testing.T) {
	store := NewCompletionStore(nil, fixedClock("2025-03-05 08:00"))
	store.SetExplicit("h1", day("2025-03-03"), true)
	store.SetExplicit("h1", day("2025-03-01"), true)
	store.SetExplicit("h2", day("2025-03-02"), true)

	list := store.ListForHabit("h1")
	if len(list) != 2 {
		t.Fatalf("expected 2 records for h1, got %d", len(list))
	}
	if list[0].Date != "2025-03-01" || list[1].Date != "2025-03-03" {
		t.Errorf("records not sorted by date: %v", list)
	}
}

func TestRemoveForHabit(t *testing.T) {
	store := NewCompletionStore(nil, fixedClock("2025-03-05 08:00"))
	store.SetExplicit("h1", day("2025-03-01"), true)
	store.SetExplicit("h1", day("2025-03-02"), true)
	store.SetExplicit("h2", day("2025-03-01"), true)

	store.RemoveForHabit("h1")

	if got := store.ListForHabit("h1"); len(got) != 0 {
		t.Errorf("expected no records for h1 after removal, got %d", len(got))
	}
	if got := store.ListForHabit("h2"); len(got) != 1 {
		t.Errorf("removal must not touch other habits, h2 has %d records", len(got))
	}
}
