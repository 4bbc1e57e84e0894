package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, level int }{{100, 2}, {50, 1}, {200, 4}} {
		if _, err := store.SaveScore("blobs", s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("blobs_endless", 500, 9); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("blobs", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[0].Level != 4 {
		t.Errorf("Expected 200 on level 4 first, got %+v", scores[0])
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected lowest score last, got %d", scores[2].Score)
	}

	endless, err := store.TopScores("blobs_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("blobs", (i+1)*100, 1)
	}

	scores, err := store.TopScores("blobs", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blobs")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("blobs", 100, 1)
	store.SaveScore("blobs", 300, 3)
	store.SaveScore("blobs", 200, 2)

	high, err = store.HighScore("blobs")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{GameID: "blobs", Level: 1, Title: "Warm-up", Outcome: OutcomeFailed, Reason: "You were absorbed", Score: 12, Radius: 0, Ticks: 300},
		{GameID: "blobs", Level: 1, Title: "Warm-up", Outcome: OutcomeCleared, Score: 140, Radius: 18.5, Ticks: 900},
		{GameID: "blobs", Level: 2, Title: "Bulk up", Outcome: OutcomeCleared, Score: 220, Radius: 27, Ticks: 1200},
		{GameID: "blobs_endless", Level: 1, Title: "Warm-up", Outcome: OutcomeCleared, Score: 99},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("blobs", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].Title != "Bulk up" || recent[0].Radius != 27 || recent[0].Ticks != 1200 {
		t.Errorf("Expected newest run first, got %+v", recent[0])
	}

	all, _ := store.RecentRuns("blobs", 0)
	last := all[len(all)-1]
	if last.Outcome != OutcomeFailed || last.Reason != "You were absorbed" {
		t.Errorf("Expected the failed attempt last, got %+v", last)
	}

	summary, err := store.LevelSummary("blobs")
	if err != nil {
		t.Fatalf("LevelSummary() failed: %v", err)
	}
	expected := []LevelStats{
		{Level: 1, Title: "Warm-up", Attempts: 2, Clears: 1, Best: 140},
		{Level: 2, Title: "Bulk up", Attempts: 1, Clears: 1, Best: 220},
	}
	if len(summary) != len(expected) {
		t.Fatalf("Expected %d levels, got %d", len(expected), len(summary))
	}
	for i := range expected {
		if summary[i] != expected[i] {
			t.Errorf("level %d: got %+v, expected %+v", i+1, summary[i], expected[i])
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blobs", 100, 1)
	store.SaveScore("blobs_endless", 300, 1)
	store.RecordRun(RunEntry{GameID: "blobs", Level: 1, Title: "Warm-up", Outcome: OutcomeCleared})

	if err := store.ClearScores("blobs"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("blobs", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("blobs", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("blobs_endless", 10); len(scores) != 1 {
		t.Error("Endless scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blobs", 100, 1)
	store.SaveScore("blobs", 300, 2)

	stats, err := store.GetGameStats("blobs")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for an unplayed game: %+v", empty)
	}
}
