package web

import (
	"github.com/vovakirdan/arcade-2048/internal/games/t2048"
	"github.com/vovakirdan/arcade-2048/internal/games/t2048/board"
)

// Message types exchanged over the WebSocket.
const (
	TypeMove    = "move"
	TypeRestart = "restart"
	TypeState   = "state"
	TypeError   = "error"
)

// ClientMessage is sent by the browser.
type ClientMessage struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
}

// ServerMessage is sent to the browser.
type ServerMessage struct {
	Type  string     `json:"type"`
	State *StateView `json:"state,omitempty"`
	Error string     `json:"error,omitempty"`
}

// StateView is the JSON form of a game snapshot.
type StateView struct {
	Board   board.Board `json:"board"`
	Score   int         `json:"score"`
	Moves   int         `json:"moves"`
	MaxTile int         `json:"max_tile"`
	Over    bool        `json:"over"`
	Won     bool        `json:"won"`
	Status  string      `json:"status"`
	Banner  string      `json:"banner,omitempty"`
	Share   string      `json:"share,omitempty"`
}

// NewStateView converts a snapshot. Share text is only offered once the game is over.
func NewStateView(s t2048.State, shareURL string) *StateView {
	v := &StateView{
		Board:   s.Board,
		Score:   s.Score,
		Moves:   s.Moves,
		MaxTile: s.MaxTile(),
		Over:    s.Over,
		Won:     s.Won,
		Status:  string(s.Status()),
		Banner:  s.Banner(),
	}
	if s.Over {
		v.Share = s.ShareText(shareURL)
	}
	return v
}

func stateMessage(s t2048.State, shareURL string) ServerMessage {
	return ServerMessage{Type: TypeState, State: NewStateView(s, shareURL)}
}

func errorMessage(text string) ServerMessage {
	return ServerMessage{Type: TypeError, Error: text}
}
