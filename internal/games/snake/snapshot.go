package snake

import "github.com/vovakirdan/grid-arcade/internal/core"

// Kind classifies a board cell for rendering.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindHead
	KindBody
	KindFood
)

// Snapshot captures the complete game state for determinism testing and rendering.
type Snapshot struct {
	Ticks    uint64
	Score    int
	SnakeLen int
	Head     Cell
	Food     Cell
	Heading  core.Direction
	Status   core.Status
	Cells    [Rows][Cols]Kind
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Ticks:    g.ticks,
		Score:    g.score,
		SnakeLen: len(g.snake),
		Food:     g.food,
		Heading:  g.heading,
		Status:   g.status,
	}

	if g.food.InBounds() {
		snap.Cells[g.food.Row][g.food.Col] = KindFood
	}
	for i, seg := range g.snake {
		kind := KindBody
		if i == 0 {
			kind = KindHead
			snap.Head = seg
		}
		snap.Cells[seg.Row][seg.Col] = kind
	}
	return snap
}
