package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardWidth  = BoardSize*cellWidth + 1  // +1 for right border
	boardHeight = BoardSize*cellHeight + 1 // +1 for bottom border
	hudHeight   = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Calculate board position (centered)
	boardX := (g.screenW - boardWidth) / 2
	boardY := hudHeight + 1
	board := core.NewRect(boardX, boardY, boardWidth, boardHeight)

	g.renderHUD(dst, board)
	g.renderGrid(dst, board)

	if g.anim.phase == PhaseSlide {
		g.renderSliding(dst, board)
	} else {
		g.renderTiles(dst, board)
	}

	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and scores above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawTextColored(board.X+(board.W-len(title))/2, 0, title, core.ColorTitle)

	st := g.session.State()
	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", st.Score))

	best := fmt.Sprintf("Best: %d", st.BestScore)
	dst.DrawText(core.Max(board.Right()-len(best), board.X), 1, best)

	info := fmt.Sprintf("Max tile: %d", MaxTile(g.session.Tiles(), g.session.Board()))
	dst.DrawTextColored(board.X+(board.W-len(info))/2, 2, info, core.ColorGray)
}

// renderGrid draws the 4x4 grid lines.
func (g *Game) renderGrid(dst *core.Screen, board core.Rect) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorBorder)

			// Draw horizontal line to the right
			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorBorder)
				}
			}

			// Draw vertical line down
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorBorder)
				}
			}
		}
	}
}

// renderTiles draws the settled board, highlighting popping tiles.
func (g *Game) renderTiles(dst *core.Screen, board core.Rect) {
	grid := g.session.Grid()
	for row := range BoardSize {
		for col := range BoardSize {
			val := grid[row][col]
			if val == 0 {
				continue
			}

			color := core.TileColor(val)
			if g.anim.popping(Pos{Row: row, Col: col}) {
				color = core.ColorHighlight
			}
			drawTile(dst, board, float64(row), float64(col), val, color)
		}
	}
}

// renderSliding draws tiles at their interpolated slide positions.
func (g *Game) renderSliding(dst *core.Screen, board core.Rect) {
	for i := range g.anim.slide {
		t := &g.anim.slide[i]
		row, col := t.interpolatePosition()
		drawTile(dst, board, row, col, t.Value, core.TileColor(t.Value))
	}
}

// drawTile draws a value centered in the cell at a (possibly fractional)
// board position.
func drawTile(dst *core.Screen, board core.Rect, row, col float64, value int, color core.Color) {
	cellX := board.X + int(math.Round(col*cellWidth)) + 1
	cellY := board.Y + int(math.Round(row*cellHeight)) + 1

	valStr := strconv.Itoa(value)
	padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)

	dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.paused {
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	switch g.session.State().Status() {
	case StatusWon:
		drawOverlay(dst, centerX, centerY, "YOU WIN!", "Enter: keep going", "R: new game")
	case StatusGameOver:
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(g.session.Tiles(), g.session.Board()))
		drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorTitle)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | Enter: Keep going | P: Pause | R: New game | Q: Quit"
}
