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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
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

	matches := []MatchResult{
		{Mode: "ai", Difficulty: "medium", ScoreLeft: 11, ScoreRight: 7, Winner: "left", LongestRally: 9, Duration: 180},
		{Mode: "ai", Difficulty: "hard", ScoreLeft: 5, ScoreRight: 11, Winner: "right", LongestRally: 14, Duration: 240},
		{Mode: "pvp", ScoreLeft: 11, ScoreRight: 9, Winner: "left", LongestRally: 6, Duration: 300},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch(%+v) failed: %v", m, err)
		}
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(recent))
	}

	// Newest first
	if recent[0].Mode != "pvp" || recent[0].ScoreRight != 9 {
		t.Errorf("Expected most recent match to be the pvp one, got %+v", recent[0])
	}
	if recent[2].Difficulty != "medium" {
		t.Errorf("Expected oldest match difficulty medium, got %q", recent[2].Difficulty)
	}
	if recent[1].Winner != "right" || recent[1].LongestRally != 14 {
		t.Errorf("Middle match fields not preserved: %+v", recent[1])
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveMatch(MatchResult{Mode: "ai", Difficulty: "easy", ScoreLeft: 11, ScoreRight: i, Winner: "left"})
	}

	recent, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 matches with limit, got %d", len(recent))
	}

	// Newest first: right scores 4, 3, 2
	if recent[0].ScoreRight != 4 || recent[1].ScoreRight != 3 || recent[2].ScoreRight != 2 {
		t.Errorf("Matches not in expected order: %v", recent)
	}
}

func TestStoreMatchesByMode(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(MatchResult{Mode: "ai", Difficulty: "easy", ScoreLeft: 11, ScoreRight: 2, Winner: "left"})
	store.SaveMatch(MatchResult{Mode: "pvp", ScoreLeft: 8, ScoreRight: 11, Winner: "right"})
	store.SaveMatch(MatchResult{Mode: "ai", Difficulty: "hard", ScoreLeft: 9, ScoreRight: 11, Winner: "right"})

	aiMatches, err := store.MatchesByMode("ai", 10)
	if err != nil {
		t.Fatalf("MatchesByMode() failed: %v", err)
	}
	if len(aiMatches) != 2 {
		t.Errorf("Expected 2 ai matches, got %d", len(aiMatches))
	}

	pvpMatches, _ := store.MatchesByMode("pvp", 10)
	if len(pvpMatches) != 1 {
		t.Errorf("Expected 1 pvp match, got %d", len(pvpMatches))
	}
}

func TestStoreGetStats(t *testing.T) {
	store := openTestStore(t)

	// Empty database
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.MatchesCount != 0 || stats.LongestRally != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveMatch(MatchResult{Mode: "ai", Difficulty: "medium", ScoreLeft: 11, ScoreRight: 3, Winner: "left", LongestRally: 7, Duration: 100})
	store.SaveMatch(MatchResult{Mode: "ai", Difficulty: "medium", ScoreLeft: 6, ScoreRight: 11, Winner: "right", LongestRally: 12, Duration: 200})
	store.SaveMatch(MatchResult{Mode: "pvp", ScoreLeft: 11, ScoreRight: 9, Winner: "left", LongestRally: 5, Duration: 300})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.MatchesCount != 3 {
		t.Errorf("Expected 3 matches, got %d", stats.MatchesCount)
	}
	if stats.LeftWins != 2 || stats.RightWins != 1 {
		t.Errorf("Expected 2 left wins and 1 right win, got %d and %d", stats.LeftWins, stats.RightWins)
	}
	if stats.LongestRally != 12 {
		t.Errorf("Expected longest rally 12, got %d", stats.LongestRally)
	}
	if stats.AvgDuration != 200 {
		t.Errorf("Expected average duration 200, got %v", stats.AvgDuration)
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(MatchResult{Mode: "ai", Difficulty: "easy", ScoreLeft: 11, ScoreRight: 0, Winner: "left"})
	store.SaveMatch(MatchResult{Mode: "pvp", ScoreLeft: 11, ScoreRight: 4, Winner: "left"})

	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	recent, _ := store.RecentMatches(10)
	if len(recent) != 0 {
		t.Errorf("Expected 0 matches after clear, got %d", len(recent))
	}
}
