package tetris

import "github.com/vovakirdan/grid-arcade/internal/core"

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// Kinds lists every shape in spawn order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}

var shapes = [...]struct {
	name    string
	color   core.Color
	offsets [4]Cell
}{
	KindI: {"I", core.ColorBrightCyan, [4]Cell{{0, -1}, {0, 0}, {0, 1}, {0, 2}}},
	KindO: {"O", core.ColorBrightYellow, [4]Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	KindT: {"T", core.ColorMagenta, [4]Cell{{0, -1}, {0, 0}, {0, 1}, {1, 0}}},
	KindL: {"L", core.ColorOrange, [4]Cell{{0, -1}, {0, 0}, {0, 1}, {1, -1}}},
	KindJ: {"J", core.ColorBrightBlue, [4]Cell{{0, -1}, {0, 0}, {0, 1}, {1, 1}}},
	KindS: {"S", core.ColorBrightGreen, [4]Cell{{0, 0}, {0, 1}, {1, -1}, {1, 0}}},
	KindZ: {"Z", core.ColorBrightRed, [4]Cell{{0, -1}, {0, 0}, {1, 0}, {1, 1}}},
}

func (k Kind) String() string {
	if int(k) < len(shapes) {
		return shapes[k].name
	}
	return "?"
}

// Color returns the color locked cells of this kind take.
func (k Kind) Color() core.Color {
	return shapes[k].color
}

// SpawnOffsets returns the block offsets a new piece of this kind starts with.
func (k Kind) SpawnOffsets() [4]Cell {
	return shapes[k].offsets
}

// Piece is the falling tetromino. Offsets are relative to Anchor.
type Piece struct {
	Kind    Kind
	Offsets [4]Cell
	Anchor  Cell
}

// NewPiece returns a piece of kind k at anchor in its spawn orientation.
func NewPiece(k Kind, anchor Cell) Piece {
	return Piece{Kind: k, Offsets: k.SpawnOffsets(), Anchor: anchor}
}

// Cells returns the absolute board cells the piece covers.
func (p Piece) Cells() [4]Cell {
	var out [4]Cell
	for i, o := range p.Offsets {
		out[i] = p.Anchor.Add(o)
	}
	return out
}

// rotated turns offsets a quarter turn: (dr, dc) -> (-dc, dr).
func rotated(offsets [4]Cell) [4]Cell {
	var out [4]Cell
	for i, o := range offsets {
		out[i] = Cell{Row: -o.Col, Col: o.Row}
	}
	return out
}
