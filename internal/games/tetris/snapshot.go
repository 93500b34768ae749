package tetris

import "github.com/vovakirdan/grid-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and rendering.
type Snapshot struct {
	Score  int
	Lines  int
	Locked int
	Status core.Status
	Board  Board
	Piece  Piece
	Active [4]Cell // Absolute cells of the falling piece
	Falls  bool    // False once a spawn has failed
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Score:  g.score,
		Lines:  g.lines,
		Locked: g.locked,
		Status: g.status,
		Board:  g.board,
		Piece:  g.piece,
		Active: g.piece.Cells(),
		Falls:  g.active,
	}
}
