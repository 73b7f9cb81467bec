package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores for 2048.

Examples:
  arcade scores
  arcade scores --limit 25
  arcade scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	return printScores(os.Stdout, store, flagLimit)
}

// printScores writes the leaderboard table.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(t2048.ID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - 2048")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'arcade play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "Rank", "Score", "Tile", "Moves", "Won", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "----", "-----", "----", "-----", "---", "----")

	for i, e := range scores {
		won := ""
		if e.Won {
			won = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-6d  %-3s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, won, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(t2048.ID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Games: %d  Wins: %d  Best tile: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.BestTile)
	}
	return nil
}
