package snake

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

const hudHeight = 2

// Render draws the game to the screen. Each board cell is two characters
// wide so the field looks square in a terminal.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	fieldW := Cols*2 + 2
	fieldH := Rows + 2
	if dst.Width() < fieldW || dst.Height() < fieldH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	field := core.NewRect((dst.Width()-fieldW)/2, hudHeight, fieldW, fieldH)
	dst.DrawBox(field)

	snap := g.Snapshot()
	for r := range Rows {
		for c := range Cols {
			x := field.X + 1 + c*2
			y := field.Y + 1 + r
			switch snap.Cells[r][c] {
			case KindHead:
				dst.DrawTextColored(x, y, "██", core.ColorBrightGreen)
			case KindBody:
				dst.DrawTextColored(x, y, "▓▓", core.ColorGreen)
			case KindFood:
				dst.DrawTextColored(x, y, "()", core.ColorBrightRed)
			}
		}
	}

	cx := field.X + fieldW/2
	cy := field.Y + fieldH/2
	switch g.status {
	case core.StatusIdle:
		dst.DrawPanel(cx, cy, "Snake", "Press SPACE or an arrow to start")
	case core.StatusOver:
		dst.DrawPanel(cx, cy, "Game Over", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d", g.score, len(g.snake))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}
