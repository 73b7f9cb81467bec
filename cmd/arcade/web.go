package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/platform/web"
)

var (
	flagWebAddr  string
	flagShareURL string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser version",
	Long: `Serve 2048 to browsers.

The page plays over a WebSocket; the server owns one game per connection,
so reloading the page starts a new game. Finished games are recorded in
the same leaderboard as the terminal and SSH versions.

Endpoints:
  GET /             - the game page
  GET /ws           - game WebSocket
  GET /api/scores   - top scores (?limit=N)
  GET /api/stats    - aggregate statistics
  GET /healthz      - health check

Examples:
  arcade web
  arcade web --addr :9000
  arcade web --url https://2048.example.com`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
	webCmd.Flags().StringVar(&flagShareURL, "url", "", "Public URL appended to share text")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	cfg := web.Config{
		Addr:     appConfig.Server.WebAddr,
		ShareURL: appConfig.Share.URL,
		Rules: t2048.Rules{
			Prob4:   appConfig.Game.Spawn4Probability,
			WinTile: appConfig.Game.WinTile,
		},
		Seed: flagSeed,
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = flagWebAddr
	}
	if flags.Changed("url") {
		cfg.ShareURL = flagShareURL
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(cfg, store, logger.WithPrefix("arcade-web"))
	logger.Info("open the game in a browser", "url", "http://localhost:"+port(cfg.Addr))

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
