package tetris

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

const (
	hudHeight = 2
	panelW    = 16
)

// Render draws the well, the falling piece and a side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(0, 0, fmt.Sprintf(" Tetris | Score: %d  Lines: %d", g.score, g.lines))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	wellW := Cols*2 + 2
	wellH := Rows + 2
	if dst.Width() < wellW+panelW || dst.Height() < wellH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	well := core.NewRect((dst.Width()-wellW-panelW)/2, hudHeight, wellW, wellH)
	dst.DrawBox(well)

	snap := g.Snapshot()
	for r := range Rows {
		for c := range Cols {
			if snap.Board.Filled(r, c) {
				drawBlock(dst, well, Cell{Row: r, Col: c}, "[]", snap.Board[r][c])
			}
		}
	}
	if snap.Falls {
		for _, c := range snap.Active {
			if inBounds(c) {
				drawBlock(dst, well, c, "██", snap.Piece.Kind.Color())
			}
		}
	}

	px := well.Right() + 2
	dst.DrawText(px, well.Y+1, "SCORE")
	dst.DrawTextColored(px, well.Y+2, fmt.Sprintf("%d", g.score), core.ColorBrightYellow)
	dst.DrawText(px, well.Y+4, "LINES")
	dst.DrawTextColored(px, well.Y+5, fmt.Sprintf("%d", g.lines), core.ColorBrightYellow)
	dst.DrawText(px, well.Y+7, "PIECE")
	if snap.Falls {
		dst.DrawTextColored(px, well.Y+8, g.piece.Kind.String(), g.piece.Kind.Color())
	}

	cx := well.X + wellW/2
	cy := well.Y + wellH/2
	switch g.status {
	case core.StatusIdle:
		dst.DrawPanel(cx, cy, "TETRIS", "SPACE to start")
	case core.StatusOver:
		dst.DrawPanel(cx, cy, "GAME OVER", fmt.Sprintf("Lines: %d", g.lines), "R to restart")
	}
}

func drawBlock(dst *core.Screen, well core.Rect, c Cell, glyph string, color core.Color) {
	dst.DrawTextColored(well.X+1+c.Col*2, well.Y+1+c.Row, glyph, color)
}
