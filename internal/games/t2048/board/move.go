package board

import (
	"fmt"
	"strings"
)

// Direction is the edge tiles slide towards.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses "up", "down", "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("board: unknown direction %q", s)
}

// orientation maps a board so that the direction becomes "slide left",
// and maps the slid board back. inverse(forward(b)) == b for every board.
type orientation struct {
	forward func(Board) Board
	inverse func(Board) Board
}

func identity(b Board) Board { return b }

var orientations = map[Direction]orientation{
	Left:  {forward: identity, inverse: identity},
	Right: {forward: Reverse, inverse: Reverse},
	Up:    {forward: Transpose, inverse: Transpose},
	// Columns become rows with the bottom edge first.
	Down: {
		forward: func(b Board) Board { return Reverse(Transpose(b)) },
		inverse: func(b Board) Board { return Transpose(Reverse(b)) },
	},
}

// MoveResult is the outcome of sliding a board in one direction.
type MoveResult struct {
	Board   Board
	Score   int  // Sum of all tiles produced by merges
	Changed bool // False for a no-op move
}

// slideRow compacts a row to the left and merges equal neighbours once.
func slideRow(row [Size]int) (result [Size]int, score int) {
	writePos := 0
	merged := false // whether result[writePos-1] came from a merge

	for _, v := range row {
		if v == 0 {
			continue
		}
		if writePos > 0 && !merged && result[writePos-1] == v {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged = true
			continue
		}
		result[writePos] = v
		writePos++
		merged = false
	}

	return result, score
}

// Move slides every tile towards the given edge.
// An unknown direction is treated as a no-op.
func Move(b Board, dir Direction) MoveResult {
	o, ok := orientations[dir]
	if !ok {
		return MoveResult{Board: b}
	}

	oriented := o.forward(b)
	var slid Board
	total := 0
	for r := 0; r < Size; r++ {
		row, score := slideRow(oriented[r])
		slid[r] = row
		total += score
	}

	out := o.inverse(slid)
	return MoveResult{
		Board:   out,
		Score:   total,
		Changed: out != b,
	}
}

// HasMoves reports whether any empty cell or any adjacent equal pair exists.
func HasMoves(b Board) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b[r][c]
			if v == 0 {
				return true
			}
			if c < Size-1 && b[r][c+1] == v {
				return true
			}
			if r < Size-1 && b[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// HasWon reports whether the board holds a WinTile.
func HasWon(b Board) bool {
	return HasTile(b, WinTile)
}
