package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRetrieveScores(t *testing.T) {
	store := newTestStore(t)

	scores := []int{10, 25, 5, 42, 17}
	for _, s := range scores {
		if _, err := store.SaveScore("gridsnake", s); err != nil {
			t.Fatalf("SaveScore(%d) error = %v", s, err)
		}
	}

	entries, err := store.TopScores("gridsnake", 3)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("TopScores() returned %d entries, want 3", len(entries))
	}

	want := []int{42, 25, 17}
	for i, e := range entries {
		if e.Score != want[i] {
			t.Errorf("entry %d: score = %d, want %d", i, e.Score, want[i])
		}
		if e.GameID != "gridsnake" {
			t.Errorf("entry %d: game_id = %q, want %q", i, e.GameID, "gridsnake")
		}
	}
}

func TestHighScore(t *testing.T) {
	store := newTestStore(t)

	high, err := store.HighScore("gridsnake")
	if err != nil {
		t.Fatalf("HighScore() error = %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty db = %d, want 0", high)
	}

	store.SaveScore("gridsnake", 7)
	store.SaveScore("gridsnake", 31)
	store.SaveScore("gridsnake", 12)

	high, err = store.HighScore("gridsnake")
	if err != nil {
		t.Fatalf("HighScore() error = %v", err)
	}
	if high != 31 {
		t.Errorf("HighScore() = %d, want 31", high)
	}
}

func TestScoresIsolatedByGameID(t *testing.T) {
	store := newTestStore(t)

	store.SaveScore("gridsnake", 50)
	store.SaveScore("other", 99)

	entries, err := store.TopScores("gridsnake", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("TopScores() returned %d entries, want 1", len(entries))
	}
	if entries[0].Score != 50 {
		t.Errorf("score = %d, want 50", entries[0].Score)
	}
}

func TestClearScores(t *testing.T) {
	store := newTestStore(t)

	store.SaveScore("gridsnake", 10)
	store.SaveScore("gridsnake", 20)
	store.SaveScore("other", 5)

	if err := store.ClearScores("gridsnake"); err != nil {
		t.Fatalf("ClearScores() error = %v", err)
	}

	entries, err := store.TopScores("gridsnake", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("TopScores() after clear returned %d entries, want 0", len(entries))
	}

	// Other games untouched
	others, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores(other) error = %v", err)
	}
	if len(others) != 1 {
		t.Errorf("TopScores(other) returned %d entries, want 1", len(others))
	}
}

func TestTopScoresDefaultLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveScore("gridsnake", i)
	}

	entries, err := store.TopScores("gridsnake", 0)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("TopScores(limit=0) returned %d entries, want 10", len(entries))
	}
}
