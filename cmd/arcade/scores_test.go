package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/storage"
)

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var empty bytes.Buffer
	if err := printScores(&empty, store, 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(empty.String(), "No scores recorded yet.") {
		t.Errorf("empty leaderboard output:\n%s", empty.String())
	}

	for _, r := range []storage.Result{
		{GameID: t2048.ID, Score: 1200, MaxTile: 128, Moves: 150},
		{GameID: t2048.ID, Score: 20480, MaxTile: 2048, Moves: 950, Won: true},
	} {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := printScores(&out, store, 1); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	text := out.String()

	if !strings.Contains(text, "20480") || strings.Contains(text, "  1200  ") {
		t.Errorf("limit 1 should list only the best score:\n%s", text)
	}
	if !strings.Contains(text, "Best: 20480  Games: 2  Wins: 1  Best tile: 2048") {
		t.Errorf("summary line missing:\n%s", text)
	}
}
