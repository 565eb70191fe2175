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

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "chase", Score: 100, Level: 1},
		{GameID: "chase", Score: 50, Level: 1},
		{GameID: "chase", Score: 200, Level: 2},
		{GameID: "chase", Score: 200, Level: 3},
		{GameID: "chase_hard", Score: 500, Level: 4},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("chase", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	want := []struct{ score, level int }{{200, 3}, {200, 2}, {100, 1}, {50, 1}}
	for i, w := range want {
		if top[i].Score != w.score || top[i].Level != w.level {
			t.Errorf("TopRuns()[%d] = %d/L%d, expected %d/L%d", i, top[i].Score, top[i].Level, w.score, w.level)
		}
		if top[i].CreatedAt.IsZero() {
			t.Errorf("TopRuns()[%d] has no timestamp", i)
		}
	}

	limited, err := store.TopRuns("chase", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}

	recent, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].GameID != "chase_hard" {
		t.Errorf("RecentRuns(1) = %+v, expected the chase_hard run", recent)
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("chase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 without runs, got %d", high)
	}

	for _, score := range []int{30, 90, 60} {
		if _, err := store.SaveRun(Run{GameID: "chase", Score: score, Level: 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if high, _ = store.HighScore("chase"); high != 90 {
		t.Errorf("Expected high score 90, got %d", high)
	}

	if err := store.ClearRuns("chase"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if high, _ = store.HighScore("chase"); high != 0 {
		t.Errorf("Expected 0 after clear, got %d", high)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("chase")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	for _, r := range []Run{
		{GameID: "chase", Score: 100, Level: 2},
		{GameID: "chase", Score: 300, Level: 1},
		{GameID: "chase_easy", Score: 40},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.GameStats("chase")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.BestLevel != 2 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 variants, got %d", len(all))
	}
	if easy := all["chase_easy"]; easy == nil || easy.BestLevel != 1 {
		t.Errorf("chase_easy stats = %+v, expected level clamped to 1", easy)
	}
}
