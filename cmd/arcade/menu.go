package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a menu",
	Long: `Start the arcade in interactive menu mode.

Pick Play to start a game or High Scores to see the leaderboard.
After a game ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	restore := redirectLogs()
	defer restore()

	deps := tui.Deps{
		Store:    store,
		Logger:   logger,
		ShareURL: appConfig.Share.URL,
	}
	if err := tui.RunSession(deps, t2048.ID, runtimeConfig()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
