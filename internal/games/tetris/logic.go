package tetris

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Board dimensions.
const (
	Rows = 20
	Cols = 10
)

// DefaultLineScore is awarded per cleared row.
const DefaultLineScore = 100

// SpawnAnchor is where new pieces appear.
var SpawnAnchor = Cell{Row: 0, Col: 4}

// Cell addresses a board position or an offset from an anchor.
type Cell struct {
	Row, Col int
}

// Add returns c translated by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Board holds locked cells. ColorDefault marks an empty cell.
type Board [Rows][Cols]core.Color

// Filled reports whether the cell at r, c holds a locked block.
func (b *Board) Filled(r, c int) bool {
	return b[r][c] != core.ColorDefault
}

func inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// CanPlace reports whether every offset from anchor is on the board and empty.
func CanPlace(b Board, offsets [4]Cell, anchor Cell) bool {
	for _, o := range offsets {
		c := anchor.Add(o)
		if !inBounds(c) || b.Filled(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// Rotate turns the piece a quarter turn in place. If the rotated piece does
// not fit at the current anchor the piece is returned unchanged; there are
// no wall kicks.
func Rotate(b Board, p Piece) Piece {
	next := rotated(p.Offsets)
	if !CanPlace(b, next, p.Anchor) {
		return p
	}
	p.Offsets = next
	return p
}

// TryMove translates the anchor by delta. It returns the new anchor and true,
// or the old anchor and false when the piece would collide.
func TryMove(b Board, p Piece, delta Cell) (Cell, bool) {
	next := p.Anchor.Add(delta)
	if !CanPlace(b, p.Offsets, next) {
		return p.Anchor, false
	}
	return next, true
}

// LockPiece writes the piece into the board and clears completed rows.
// Rows are scanned bottom to top; after a clear the same index is checked
// again since the row above has moved into it.
func LockPiece(b Board, p Piece) (Board, int) {
	color := p.Kind.Color()
	for _, c := range p.Cells() {
		if inBounds(c) {
			b[c.Row][c.Col] = color
		}
	}

	cleared := 0
	for r := Rows - 1; r >= 0; {
		if !rowFull(&b, r) {
			r--
			continue
		}
		for rr := r; rr > 0; rr-- {
			b[rr] = b[rr-1]
		}
		b[0] = [Cols]core.Color{}
		cleared++
	}
	return b, cleared
}

func rowFull(b *Board, r int) bool {
	for c := range Cols {
		if !b.Filled(r, c) {
			return false
		}
	}
	return true
}

// SpawnPiece picks a uniformly random shape at SpawnAnchor. It returns false
// when the new piece cannot be placed.
func SpawnPiece(b Board, rng *rand.Rand) (Piece, bool) {
	p := NewPiece(Kinds[rng.Intn(len(Kinds))], SpawnAnchor)
	return p, CanPlace(b, p.Offsets, p.Anchor)
}
