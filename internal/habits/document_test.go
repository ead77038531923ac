package habits

import (
	"strings"
	"testing"

	"github.com/habitflow/habitflow/internal/models"
)

func TestParseDocument_Valid(t *testing.T) {
	data := `{
  "habits": [{"id": "h1", "name": "Read", "startDate": "2025-01-01"}],
  "userProfile": null,
  "habitCompletions": [{"habitId": "h1", "date": "2025-01-02", "completed": true}],
  "lastSync": "2025-01-02T08:00:00Z",
  "version": "1.0.0"
}`

	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(doc.Habits) != 1 || doc.Habits[0].Name != "Read" {
		t.Errorf("habits = %+v", doc.Habits)
	}
	if len(doc.HabitCompletions) != 1 || !doc.HabitCompletions[0].Completed {
		t.Errorf("completions = %+v", doc.HabitCompletions)
	}
	if doc.UserProfile != nil {
		t.Error("null userProfile should decode to nil")
	}
}

func TestParseDocument_Rejections(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", "{nope"},
		{"top level array", `[1, 2, 3]`},
		{"missing habits", `{"userProfile": null}`},
		{"habits not array", `{"habits": "oops"}`},
		{"habits object", `{"habits": {"id": "h1"}}`},
		{"profile scalar", `{"habits": [], "userProfile": 42}`},
		{"profile array", `{"habits": [], "userProfile": []}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseDocument(tc.data); err == nil {
				t.Errorf("ParseDocument accepted %s", tc.data)
			}
		})
	}
}

func TestParseDocument_MissingOptionalFields(t *testing.T) {
	doc, err := ParseDocument(`{"habits": []}`)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Habits == nil || doc.HabitCompletions == nil {
		t.Error("missing collections should decode to empty, not nil")
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	doc := DefaultDocument(day("2025-05-01"))
	doc.Habits = append(doc.Habits, models.Habit{ID: "h1", Name: "Read", StartDate: "2025-05-01"})

	data, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(data, `"habits"`) {
		t.Errorf("encoded document missing habits key:\n%s", data)
	}

	back, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument(Encode()): %v", err)
	}
	if len(back.Habits) != 1 || back.Habits[0].ID != "h1" {
		t.Errorf("round trip lost habits: %+v", back.Habits)
	}
}

func TestFingerprint_IgnoresSyncMetadata(t *testing.T) {
	a := DefaultDocument(day("2025-05-01"))
	b := DefaultDocument(day("2025-05-02"))

	ha, err := a.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	hb, err := b.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if ha != hb {
		t.Error("fingerprint must not depend on lastSync")
	}

	b.Habits = append(b.Habits, models.Habit{ID: "h1", Name: "Read"})
	hb2, err := b.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if hb2 == ha {
		t.Error("fingerprint must change when habit state changes")
	}
}
