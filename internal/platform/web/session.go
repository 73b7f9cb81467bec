package web

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/games/t2048/board"
	"github.com/vovakirdan/arcade-2048/internal/storage"
)

// session owns the game of one WebSocket connection.
// It is only used by the connection's read goroutine.
type session struct {
	id       string
	rules    t2048.Rules
	rng      *rand.Rand
	state    t2048.State
	saved    bool // Score of the current game already recorded
	store    *storage.Store
	shareURL string
	logger   *log.Logger
}

func newSession(id string, seed int64, rules t2048.Rules, store *storage.Store, shareURL string, logger *log.Logger) *session {
	s := &session{
		id:       id,
		rules:    rules,
		rng:      rand.New(rand.NewSource(seed)),
		store:    store,
		shareURL: shareURL,
		logger:   logger,
	}
	s.restart()
	return s
}

func (s *session) restart() {
	s.state = t2048.Start(s.rng, s.rules)
	s.saved = false
}

// snapshot returns the state message for the current game.
func (s *session) snapshot() ServerMessage {
	return stateMessage(s.state, s.shareURL)
}

// handle applies one raw client message. It returns the reply and whether
// one should be sent; no-op moves produce no reply.
func (s *session) handle(data []byte) (ServerMessage, bool) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return errorMessage("invalid message: " + err.Error()), true
	}

	switch msg.Type {
	case TypeMove:
		dir, err := board.ParseDirection(msg.Direction)
		if err != nil {
			return errorMessage(err.Error()), true
		}
		next, ok := s.state.Apply(dir, s.rng)
		if !ok {
			return ServerMessage{}, false
		}
		s.state = next
		if s.state.Over {
			s.finish()
		}
		return s.snapshot(), true

	case TypeRestart:
		s.restart()
		return s.snapshot(), true

	default:
		return errorMessage(fmt.Sprintf("unknown message type %q", msg.Type)), true
	}
}

// finish records the finished game once. Failures are logged only.
func (s *session) finish() {
	if s.saved {
		return
	}
	s.saved = true

	s.logger.Info("game finished",
		"session", s.id,
		"score", s.state.Score,
		"moves", s.state.Moves,
		"max_tile", s.state.MaxTile(),
		"won", s.state.Won,
	)

	if s.store == nil {
		return
	}
	_, err := s.store.SaveScore(storage.Result{
		GameID:  t2048.ID,
		Score:   s.state.Score,
		MaxTile: s.state.MaxTile(),
		Moves:   s.state.Moves,
		Won:     s.state.Won,
	})
	if err != nil {
		s.logger.Warn("could not save score", "session", s.id, "error", err)
	}
}
