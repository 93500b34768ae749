package t2048

import "github.com/vovakirdan/grid-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and rendering.
type Snapshot struct {
	Moves   uint64
	Target  int
	Score   int
	Board   Board
	Merged  Mask
	Spawned Mask
	MaxTile int
	Status  core.Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Moves:   g.moves,
		Target:  g.cfg.Target,
		Score:   g.score,
		Board:   g.board,
		Merged:  g.merged,
		Spawned: g.spawned,
		MaxTile: MaxTile(g.board),
		Status:  g.status,
	}
}
