package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

const (
	cellWidth  = 6 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	minWidth  = BoardSize*cellWidth + 1
	minHeight = BoardSize*cellHeight + 1 + hudHeight
	hudHeight = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minWidth || dst.Height() < minHeight {
		renderTooSmall(dst)
		return
	}

	boardW := BoardSize*cellWidth + 1
	boardH := BoardSize*cellHeight + 1

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and target.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	info := fmt.Sprintf("Target: %d", g.cfg.Target)
	dst.DrawText(max(boardX, boardX+boardW-len(info)), 1, info)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.SetColored(px, py, gridCorner(x, y), core.ColorGray)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r := range BoardSize {
		for c := range BoardSize {
			val := g.board[r][c]
			if val == 0 {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			text := strconv.Itoa(val)
			pad := max(0, (cellWidth-1-len(text))/2)

			color := tileColor(val)
			switch {
			case g.merged[r][c]:
				color = core.ColorBrightWhite
			case g.spawned[r][c]:
				color = core.ColorBrightGreen
			}
			dst.DrawTextColored(cellX+pad, cellY, text, color)
		}
	}
}

func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

func tileColor(val int) core.Color {
	switch {
	case val <= 4:
		return core.ColorWhite
	case val <= 16:
		return core.ColorOrange
	case val <= 64:
		return core.ColorRed
	case val <= 256:
		return core.ColorYellow
	case val <= 1024:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightMagenta
	}
}

// renderOverlays draws status overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch g.status {
	case core.StatusIdle:
		dst.DrawPanel(centerX, centerY, "2048", "Press SPACE or move to start")
	case core.StatusWon:
		dst.DrawPanel(centerX, centerY, "YOU WIN!", fmt.Sprintf("Reached %d", g.cfg.Target), "Press R to restart")
	case core.StatusOver:
		dst.DrawPanel(centerX, centerY, "GAME OVER", fmt.Sprintf("Max tile: %d", MaxTile(g.board)), "Press R to restart")
	}
}
