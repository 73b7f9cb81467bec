package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-2048/internal/core"
	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/platform/tui"
	"github.com/vovakirdan/arcade-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game of 2048 in this terminal.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P/Esc            - Pause
  R                - Restart (after game over)
  C                - Copy share text (after game over)
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Examples:
  arcade play
  arcade play --seed 42
  arcade play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// runtimeConfig returns the game runtime settings for this terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg = cfg.WithSize(w, h)
	}
	cfg.TickRate = appConfig.TickRate
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(t2048.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

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
	if err := tui.Run(game, deps, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
