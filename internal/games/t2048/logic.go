package t2048

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// BoardSize is the board dimension.
const BoardSize = 4

// DefaultTarget is the tile value that wins a standard game.
const DefaultTarget = 2048

// Board represents a 4x4 game board. Zero is an empty cell; every other
// value is a power of two >= 2.
type Board [BoardSize][BoardSize]int

// Mask flags individual board cells.
type Mask [BoardSize][BoardSize]bool

// Cell addresses a board position.
type Cell struct {
	Row, Col int
}

// LineResult is the outcome of compacting and merging one line toward index 0.
type LineResult struct {
	Line   [BoardSize]int
	Score  int
	Merged [BoardSize]bool // Positions in Line that are merge products
}

// MoveOutcome is the deterministic result of one directional move.
type MoveOutcome struct {
	Board   Board
	Score   int
	Merged  Mask
	Changed bool // False when Board equals the input board
}

// CompactAndMergeLine slides the non-zero values of line toward index 0 and
// merges each value with its right neighbour once when they are equal.
// A merge product never merges again in the same call, so [2 2 2 2]
// becomes [4 4 0 0].
func CompactAndMergeLine(line [BoardSize]int) LineResult {
	tiles := make([]int, 0, BoardSize)
	for _, v := range line {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}

	var res LineResult
	merged := make([]bool, len(tiles))
	for i := 0; i < len(tiles)-1; i++ {
		if tiles[i] != 0 && tiles[i] == tiles[i+1] {
			tiles[i] *= 2
			tiles[i+1] = 0
			merged[i] = true
			res.Score += tiles[i]
		}
	}

	pos := 0
	for i, v := range tiles {
		if v == 0 {
			continue
		}
		res.Line[pos] = v
		res.Merged[pos] = merged[i]
		pos++
	}
	return res
}

// RotateClockwise returns the board turned 90 degrees clockwise.
// Four rotations give back the original board.
func RotateClockwise(b Board) Board {
	return rotate[int](b)
}

func rotate[T any](g [BoardSize][BoardSize]T) [BoardSize][BoardSize]T {
	var out [BoardSize][BoardSize]T
	for r := range BoardSize {
		for c := range BoardSize {
			out[c][BoardSize-1-r] = g[r][c]
		}
	}
	return out
}

// turns returns how many clockwise rotations bring the edge a move slides
// toward onto the left edge.
func turns(dir core.Direction) int {
	switch dir {
	case core.DirDown:
		return 1
	case core.DirRight:
		return 2
	case core.DirUp:
		return 3
	default:
		return 0
	}
}

// ApplyMove slides and merges every line of the board toward dir.
// The board is rotated so the move becomes a left move, merged row by row
// and rotated back.
func ApplyMove(b Board, dir core.Direction) MoveOutcome {
	k := turns(dir)

	work := b
	for range k {
		work = RotateClockwise(work)
	}

	var out MoveOutcome
	var merged Mask
	for r := range BoardSize {
		res := CompactAndMergeLine(work[r])
		work[r] = res.Line
		merged[r] = res.Merged
		out.Score += res.Score
	}

	for range (BoardSize - k) % BoardSize {
		work = RotateClockwise(work)
		merged = rotate[bool](merged)
	}

	out.Board = work
	out.Merged = merged
	out.Changed = work != b
	return out
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// SpawnTile places a 2 (or a 4 with probability fourProb) on a uniformly
// chosen empty cell. A full board is returned unchanged with ok == false.
func SpawnTile(b Board, rng *rand.Rand, fourProb float64) (Board, Cell, bool) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b, Cell{}, false
	}

	cell := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}

	b[cell.Row][cell.Col] = value
	return b, cell, true
}

// HasAnyLegalMove reports whether some move can change the board: an empty
// cell exists or two 4-adjacent cells hold the same value.
func HasAnyLegalMove(b Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			val := b[r][c]
			if val == 0 {
				return true
			}
			if c < BoardSize-1 && b[r][c+1] == val {
				return true
			}
			if r < BoardSize-1 && b[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// ContainsTarget reports whether any tile has reached target.
func ContainsTarget(b Board, target int) bool {
	return MaxTile(b) >= target
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			maxVal = max(maxVal, b[r][c])
		}
	}
	return maxVal
}
