// Package board implements the 2048 board engine: the grid representation,
// sliding and merging, tile spawning and terminal-state detection.
// Everything here is pure; a Board is a value and every operation returns a new one.
package board

import (
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// WinTile is the tile value that wins the game.
const WinTile = 2048

// Board is a row-major Size x Size grid of tile values. 0 is an empty cell.
// Being an array, assignment copies it and == compares it cell by cell.
type Board [Size][Size]int

// Cell addresses a single board cell.
type Cell struct {
	Row int
	Col int
}

// New returns an empty board.
func New() Board {
	return Board{}
}

// Transpose swaps rows and columns.
func Transpose(b Board) Board {
	var out Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = b[c][r]
		}
	}
	return out
}

// Reverse mirrors every row horizontally.
func Reverse(b Board) Board {
	var out Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = b[r][Size-1-c]
		}
	}
	return out
}

// EmptyCells returns all empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the highest tile on the board, 0 for an empty board.
func MaxTile(b Board) int {
	maxVal := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}

// HasTile reports whether any cell holds at least the given value.
func HasTile(b Board, value int) bool {
	return MaxTile(b) >= value
}

// String renders the board as Size lines of right-aligned values, "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if b[r][c] != 0 {
				cell = strconv.Itoa(b[r][c])
			}
			sb.WriteString(strings.Repeat(" ", max(0, 5-len(cell))))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
