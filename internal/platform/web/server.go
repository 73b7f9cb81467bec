// Package web serves 2048 to browsers: an embedded page plus a WebSocket
// through which each connection plays its own server-side game.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// maxScoresLimit caps /api/scores requests.
const maxScoresLimit = 100

// Config holds the browser server settings.
type Config struct {
	Addr     string
	ShareURL string
	Rules    t2048.Rules
	Seed     int64 // Fixed seed for every connection; 0 uses the clock
}

// Server routes browser requests.
type Server struct {
	config Config
	store  *storage.Store
	logger *log.Logger
	router *mux.Router
}

// NewServer creates a browser server. The store may be nil.
func NewServer(cfg Config, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Rules == (t2048.Rules{}) {
		cfg.Rules = t2048.DefaultRules()
	}

	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
		router: mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/scores", s.handleScores).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.handleWebSocket)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("web: embedded static files: %v", err))
	}
	s.router.PathPrefix("/").Handler(http.FileServer(http.FS(static))).Methods(http.MethodGet)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("web: listen %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()
	s.logger.Info("starting web server", "address", l.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := storage.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxScoresLimit)
	}

	if s.store == nil {
		respondJSON(w, http.StatusOK, []storage.ScoreEntry{})
		return
	}

	scores, err := s.store.TopScores(t2048.ID, limit)
	if err != nil {
		s.logger.Error("could not load scores", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load scores")
		return
	}
	respondJSON(w, http.StatusOK, scores)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondJSON(w, http.StatusOK, storage.GameStats{GameID: t2048.ID})
		return
	}

	stats, err := s.store.GetGameStats(t2048.ID)
	if err != nil {
		s.logger.Error("could not load stats", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// handleWebSocket upgrades the request and starts a new game for the connection.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id := uuid.NewString()
	c := &client{
		conn:    conn,
		send:    make(chan ServerMessage, sendBuffer),
		done:    make(chan struct{}),
		session: newSession(id, seed, s.config.Rules, s.store, s.config.ShareURL, s.logger),
		logger:  s.logger,
	}
	s.logger.Info("browser connected", "session", id, "remote", r.RemoteAddr)

	go c.writePump()
	go func() {
		c.readPump()
		s.logger.Info("browser disconnected", "session", id)
	}()
}
