package history

import (
	"path/filepath"
	"testing"
)

func TestRecordRecent_RoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.Record("/docs/a.md", "desc a", "x, y", "gpt-3.5-turbo"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record("/docs/b.md", "desc b", "z", "gpt-3.5-turbo"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Newest first.
	if entries[0].Path != "/docs/b.md" {
		t.Errorf("entries[0].Path = %q", entries[0].Path)
	}
	if entries[0].Description != "desc b" {
		t.Errorf("entries[0].Description = %q", entries[0].Description)
	}
	if entries[1].Keywords != "x, y" {
		t.Errorf("entries[1].Keywords = %q", entries[1].Keywords)
	}
	if entries[1].Model != "gpt-3.5-turbo" {
		t.Errorf("entries[1].Model = %q", entries[1].Model)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestRecent_Limit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if err := store.Record("/docs/a.md", "d", "k", "m"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := store.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestRecent_Empty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
