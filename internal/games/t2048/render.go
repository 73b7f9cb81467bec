package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/arcade-2048/internal/core"
	"github.com/vovakirdan/arcade-2048/internal/games/t2048/board"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	switch {
	case value == 0:
		return core.ColorDefault
	case value <= 4:
		return core.ColorWhite
	case value <= 16:
		return core.ColorYellow
	case value <= 64:
		return core.ColorOrange
	case value <= 256:
		return core.ColorRed
	case value <= 1024:
		return core.ColorBrightRed
	case value == 2048:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightMagenta
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := board.Size*cellWidth + 1  // +1 for right border
	boardH := board.Size*cellHeight + 1 // +1 for bottom border
	boardX := core.Max(0, (g.screenW-boardW)/2)
	boardY := hudHeight + 1
	area := core.NewRect(boardX, boardY, boardW, boardH)

	g.renderHUD(dst, area)
	g.renderBoard(dst, area)
	dst.DrawTextCentered(area.Bottom()+1, g.Controls())
	g.renderOverlays(dst, area)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and progress line.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	dst.DrawTextCentered(0, "2 0 4 8")

	dst.DrawText(area.X, 1, fmt.Sprintf("Score: %d", g.state.Score))

	info := fmt.Sprintf("Best: %d", g.state.MaxTile())
	infoX := core.Max(area.X, area.Right()-len(info))
	dst.DrawTextColor(infoX, 1, info, TileColor(g.state.MaxTile()))

	dst.DrawText(area.X, 2, fmt.Sprintf("Moves: %d", g.state.Moves))
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	for y := 0; y < board.Size+1; y++ {
		for x := 0; x < board.Size+1; x++ {
			px := area.X + x*cellWidth
			py := area.Y + y*cellHeight
			dst.SetColor(px, py, gridCorner(x, y), core.ColorGray)

			if x < board.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < board.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			val := g.state.Board[r][c]
			if val == 0 {
				continue
			}
			cellX := area.X + c*cellWidth + 1
			cellY := area.Y + r*cellHeight + 1
			valStr := strconv.Itoa(val)
			padLeft := core.Clamp((cellWidth-1-len(valStr))/2, 0, cellWidth)
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// gridCorner picks the box-drawing rune for a grid intersection.
func gridCorner(x, y int) rune {
	last := board.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws pause, win and game over banners.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	cx, cy := area.Center()

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.state.Over:
		drawOverlay(dst, cx, cy,
			g.state.Banner(),
			fmt.Sprintf("Score: %d", g.state.Score),
			"R: restart  C: share",
		)
	case g.showWin:
		drawOverlay(dst, cx, cy, "You won!", "Keep going?")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | P: Pause | Q: Quit"
}
