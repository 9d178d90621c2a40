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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenCreatesNestedDirectories(t *testing.T) {
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

	runs := []RunEntry{
		{Mode: ModeNormal, Result: ResultGameOver, Stage: 0, Frames: 900, Seed: 1},
		{Mode: ModeNormal, Result: ResultWin, Stage: 1, Frames: 4200, Seed: 2},
		{Mode: ModeBoss, Result: ResultGameOver, Stage: 0, Frames: 300, Seed: 3},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	// Newest first.
	if recent[0].Mode != ModeBoss || recent[0].Frames != 300 {
		t.Errorf("Expected boss run first, got %+v", recent[0])
	}

	normal, err := store.RunsByMode(ModeNormal, 10)
	if err != nil {
		t.Fatalf("RunsByMode() failed: %v", err)
	}
	if len(normal) != 2 {
		t.Errorf("Expected 2 normal runs, got %d", len(normal))
	}
	for _, r := range normal {
		if r.Mode != ModeNormal {
			t.Errorf("RunsByMode(normal) returned a %q run", r.Mode)
		}
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Mode: ModeNormal, Result: ResultGameOver, Frames: uint64(i) * 100})
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
}

func TestStoreBestWin(t *testing.T) {
	store := openTestStore(t)

	// No wins yet
	best, err := store.BestWin(ModeNormal)
	if err != nil {
		t.Fatalf("BestWin() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best win for empty mode, got %+v", best)
	}

	store.SaveRun(RunEntry{Mode: ModeNormal, Result: ResultGameOver, Frames: 100})
	store.SaveRun(RunEntry{Mode: ModeNormal, Result: ResultWin, Frames: 5000})
	store.SaveRun(RunEntry{Mode: ModeNormal, Result: ResultWin, Frames: 3200})
	store.SaveRun(RunEntry{Mode: ModeBoss, Result: ResultWin, Frames: 1000})

	best, err = store.BestWin(ModeNormal)
	if err != nil {
		t.Fatalf("BestWin() failed: %v", err)
	}
	if best == nil {
		t.Fatal("BestWin() returned nil with wins recorded")
	}
	if best.Frames != 3200 {
		t.Errorf("Expected fastest win at 3200 frames, got %d", best.Frames)
	}
	if best.Mode != ModeNormal {
		t.Errorf("BestWin(normal) returned a %q run", best.Mode)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Mode: ModeNormal, Result: ResultWin, Frames: 100})
	store.SaveRun(RunEntry{Mode: ModeNormal, Result: ResultGameOver, Frames: 200})
	store.SaveRun(RunEntry{Mode: ModeBoss, Result: ResultGameOver, Frames: 300})

	if err := store.ClearRuns(ModeNormal); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	normal, _ := store.RunsByMode(ModeNormal, 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(normal))
	}

	boss, _ := store.RunsByMode(ModeBoss, 10)
	if len(boss) != 1 {
		t.Errorf("Boss runs should not be affected by clearing normal runs")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetModeStats(ModeNormal)
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.Wins != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunEntry{Mode: ModeNormal, Result: ResultGameOver, Stage: 0})
	store.SaveRun(RunEntry{Mode: ModeNormal, Result: ResultGameOver, Stage: 1})
	store.SaveRun(RunEntry{Mode: ModeNormal, Result: ResultWin, Stage: 1})

	stats, err = store.GetModeStats(ModeNormal)
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, want 3", stats.RunsCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.BestStage != 1 {
		t.Errorf("BestStage = %d, want 1", stats.BestStage)
	}
}
