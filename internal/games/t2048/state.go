package t2048

import (
	"fmt"

	"github.com/vovakirdan/arcade-2048/internal/games/t2048/board"
)

// Rules holds the tunable game parameters.
type Rules struct {
	Prob4   float64 // Probability of spawning a 4 instead of a 2
	WinTile int     // Tile value that wins the game
}

// DefaultRules returns the classic 2048 rules.
func DefaultRules() Rules {
	return Rules{
		Prob4:   board.DefaultProb4,
		WinTile: board.WinTile,
	}
}

// Status describes where a game is in its lifecycle.
type Status string

const (
	StatusPlaying     Status = "playing"
	StatusWon         Status = "won"
	StatusGameOver    Status = "game_over"
	StatusWonGameOver Status = "won_game_over"
)

// State is an immutable snapshot of one game.
// Apply never mutates the receiver; callers replace their snapshot with the result.
type State struct {
	Board board.Board
	Score int
	Moves int
	Over  bool
	Won   bool
	Rules Rules
}

// Start creates a game with two tiles spawned on an empty board.
func Start(src board.Source, rules Rules) State {
	b := board.New()
	b = board.SpawnTileWith(b, src, rules.Prob4)
	b = board.SpawnTileWith(b, src, rules.Prob4)
	return State{Board: b, Rules: rules}
}

// Apply plays one move. It returns the new snapshot and whether the move was accepted.
// Moves after game over and moves that leave the board unchanged return s untouched.
func (s State) Apply(dir board.Direction, src board.Source) (State, bool) {
	if s.Over {
		return s, false
	}

	res := board.Move(s.Board, dir)
	if !res.Changed {
		return s, false
	}

	next := s
	next.Board = board.SpawnTileWith(res.Board, src, s.Rules.Prob4)
	next.Score = s.Score + res.Score
	next.Moves = s.Moves + 1
	next.Won = s.Won || board.HasTile(next.Board, s.winTile())
	next.Over = !board.HasMoves(next.Board)
	return next, true
}

func (s State) winTile() int {
	if s.Rules.WinTile <= 0 {
		return board.WinTile
	}
	return s.Rules.WinTile
}

// MaxTile returns the highest tile on the board.
func (s State) MaxTile() int {
	return board.MaxTile(s.Board)
}

// Status returns the lifecycle status of the snapshot.
func (s State) Status() Status {
	switch {
	case s.Over && s.Won:
		return StatusWonGameOver
	case s.Over:
		return StatusGameOver
	case s.Won:
		return StatusWon
	default:
		return StatusPlaying
	}
}

// Banner returns the terminal message, or "" while the game is running.
func (s State) Banner() string {
	if !s.Over {
		return ""
	}
	if s.Won {
		return "You won!"
	}
	return "Game Over"
}

// ShareText returns the text shared after a game. url may be empty.
func (s State) ShareText(url string) string {
	text := fmt.Sprintf("I scored %d in 2048!", s.Score)
	if url != "" {
		text += " " + url
	}
	return text
}
