// arcade is a terminal, SSH and browser shell for the 2048 puzzle game.
//
// Usage:
//
//	arcade play              - Play 2048 in this terminal
//	arcade menu              - Start the menu (play, high scores)
//	arcade scores            - Show high scores
//	arcade serve             - Start SSH server for remote play
//	arcade web               - Serve the browser version
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Use a specific config file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-2048/internal/config"
	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

// Resolved by the root command before any subcommand runs.
var (
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "2048 in your terminal, over SSH and in the browser",
	Long: `Arcade 2048 is the sliding tile puzzle: merge equal tiles to reach 2048.

Available commands:
  play     - Play directly in this terminal
  menu     - Menu with play and high scores
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Serve the browser version

Configuration is read from --config, ~/.arcade/configs/2048.yaml or
./configs/2048.yaml. A .env file and ARCADE_* variables override it.

Examples:
  arcade play
  arcade play --seed 42
  arcade menu
  arcade serve --ssh :2222
  arcade web --addr :8080`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(webCmd)
}

// setup loads configuration and builds the logger.
// Precedence: flags, then environment (.env included), then config file.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})

	appConfig = cfg
	t2048.SetRules(t2048.Rules{
		Prob4:   cfg.Game.Spawn4Probability,
		WinTile: cfg.Game.WinTile,
	})

	logger.Debug("configuration loaded",
		"db", cfg.Storage.DBPath,
		"tick_rate", cfg.TickRate,
		"win_tile", cfg.Game.WinTile,
	)
	return nil
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", appConfig.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// redirectLogs sends log output to ~/.arcade/arcade.log while a full-screen
// program owns the terminal. The returned func restores stderr.
func redirectLogs() func() {
	home, err := os.UserHomeDir()
	var out io.Writer = io.Discard
	var f *os.File
	if err == nil {
		dir := filepath.Join(home, ".arcade")
		if os.MkdirAll(dir, 0o755) == nil {
			f, err = os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				out = f
			}
		}
	}

	logger.SetOutput(out)
	return func() {
		logger.SetOutput(os.Stderr)
		if f != nil {
			f.Close()
		}
	}
}
