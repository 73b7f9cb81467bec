package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play 2048.

Each SSH connection gets its own session with the menu and its own game.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle timeout before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:     appConfig.Server.SSHAddr,
		HostKeyPath: appConfig.Server.HostKeyPath,
		IdleTimeout: appConfig.Server.IdleTimeout,
		TickRate:    appConfig.TickRate,
		GameID:      t2048.ID,
		ShareURL:    appConfig.Share.URL,
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("arcade-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("press Ctrl+C to stop", "connect", "ssh localhost -p "+port(cfg.Address))

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
