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

func save(t *testing.T, store *Store, r Result) {
	t.Helper()
	if _, err := store.SaveScore(r); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
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

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, Result{GameID: "2048", Score: 42})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("high score after reopen = %d, want 42", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Result{GameID: "2048", Score: 100, MaxTile: 64, Moves: 30})
	save(t, store, Result{GameID: "2048", Score: 50, MaxTile: 32, Moves: 20})
	save(t, store, Result{GameID: "2048", Score: 20000, MaxTile: 2048, Moves: 900, Won: true})
	save(t, store, Result{GameID: "other", Score: 500})

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{20000, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	top := scores[0]
	if top.MaxTile != 2048 || top.Moves != 900 || !top.Won || top.GameID != "2048" {
		t.Errorf("top entry fields not round-tripped: %+v", top)
	}
	if scores[1].Won {
		t.Error("non-winning game stored as won")
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(Result{Score: 10}); err == nil {
		t.Error("SaveScore() without game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, Result{GameID: "2048", Score: (i + 1) * 100})
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{10, 5},
		{0, 5}, // default limit
		{-1, 5},
	}
	for _, tt := range tests {
		scores, err := store.TopScores("2048", tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tt.limit, err)
		}
		if len(scores) != tt.want {
			t.Errorf("TopScores(%d) returned %d entries, want %d", tt.limit, len(scores), tt.want)
		}
	}

	scores, _ := store.TopScores("2048", 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Result{GameID: "2048", Score: 100, Moves: 1})
	save(t, store, Result{GameID: "2048", Score: 100, Moves: 2})

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Moves != 1 || scores[1].Moves != 2 {
		t.Errorf("tied scores out of order: %+v", scores)
	}
}

func TestStoreEmptyTopScores(t *testing.T) {
	store := openTestStore(t)

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores == nil || len(scores) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, Result{GameID: "2048", Score: 100})
	save(t, store, Result{GameID: "2048", Score: 300})
	save(t, store, Result{GameID: "2048", Score: 200})

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Result{GameID: "2048", Score: 100})
	save(t, store, Result{GameID: "2048", Score: 200})
	save(t, store, Result{GameID: "other", Score: 300})

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("2048", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game scores should not be affected by clearing")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, Result{GameID: "2048", Score: i * 10})
	}

	scores, err := store.AllScores("2048")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, Result{GameID: "2048", Score: 100, MaxTile: 128})
	save(t, store, Result{GameID: "2048", Score: 300, MaxTile: 2048, Won: true})

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 {
		t.Errorf("games/wins = %d/%d, want 2/1", stats.GamesCount, stats.Wins)
	}
	if stats.HighScore != 300 || stats.BestTile != 2048 {
		t.Errorf("high/best = %d/%d", stats.HighScore, stats.BestTile)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("avg/total = %v/%d", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
