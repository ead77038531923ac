package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SetGetDelete(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get on empty store = ok=%v err=%v, want absent", ok, err)
	}

	if err := store.Set("data", `{"habits": []}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := store.Get("data")
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v", ok, err)
	}
	if got != `{"habits": []}` {
		t.Errorf("Get = %q", got)
	}

	if err := store.Set("data", "v2"); err != nil {
		t.Fatalf("overwrite Set: %v", err)
	}
	if got, _, _ := store.Get("data"); got != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", got)
	}

	if err := store.Delete("data"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get("data"); ok {
		t.Error("key should be gone after Delete")
	}
	// Deleting an absent key is a no-op.
	if err := store.Delete("data"); err != nil {
		t.Errorf("Delete of absent key: %v", err)
	}
}

func TestFileStore_CreatesDirectoryOnWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir)

	if err := store.Set("data", "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "data.json")); err != nil {
		t.Errorf("expected data file on disk: %v", err)
	}
}
