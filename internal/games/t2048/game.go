package t2048

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Game implements the 2048 sliding puzzle.
type Game struct {
	cfg    config.T2048Config
	rng    *rand.Rand
	moves  uint64
	score  int
	status core.Status
	board  Board

	// Highlights from the latest accepted move only.
	merged  Mask
	spawned Mask
}

var configPath string

// SetConfigPath sets the YAML config used by subsequent resets.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{cfg: config.DefaultT2048Config()}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a fresh board seeded with two tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadT2048(configPath)
	if err != nil {
		// Engines have no logger; the CLI validates --config-dir up front.
		gameCfg = config.DefaultT2048Config()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.moves = 0
	g.score = 0
	g.status = core.StatusIdle
	g.board = Board{}
	g.merged = Mask{}
	g.spawned = Mask{}

	for range 2 {
		g.board, _, _ = SpawnTile(g.board, g.rng, g.cfg.SpawnFourProbability)
	}
}

// Apply handles a single command.
func (g *Game) Apply(cmd core.Command) core.StepResult {
	switch cmd.Kind {
	case core.CmdReset:
		var seed int64
		if g.rng != nil {
			seed = g.rng.Int63()
		}
		g.Reset(core.RuntimeConfig{Seed: seed})
		return core.StepResult{State: g.State(), Accepted: true}
	case core.CmdStart:
		if g.status != core.StatusIdle {
			return core.StepResult{State: g.State()}
		}
		g.status = core.StatusPlaying
		return core.StepResult{State: g.State(), Accepted: true}
	case core.CmdMove:
		return g.move(cmd.Dir)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) move(dir core.Direction) core.StepResult {
	if g.status.Terminal() {
		return core.StepResult{State: g.State()}
	}
	if g.status == core.StatusIdle {
		g.status = core.StatusPlaying
	}

	out := ApplyMove(g.board, dir)
	if !out.Changed {
		g.merged = Mask{}
		g.spawned = Mask{}
		return core.StepResult{State: g.State()}
	}

	g.moves++
	g.board = out.Board
	g.score += out.Score
	g.merged = out.Merged
	g.spawned = Mask{}

	var cell Cell
	var ok bool
	g.board, cell, ok = SpawnTile(g.board, g.rng, g.cfg.SpawnFourProbability)
	if ok {
		g.spawned[cell.Row][cell.Col] = true
	}

	switch {
	case ContainsTarget(g.board, g.cfg.Target):
		g.status = core.StatusWon
	case !HasAnyLegalMove(g.board):
		g.status = core.StatusOver
	}

	return core.StepResult{State: g.State(), Accepted: true, Scored: out.Score > 0}
}

// Tick is unused: 2048 only advances on moves.
func (g *Game) Tick() core.StepResult {
	return core.StepResult{State: g.State()}
}

// Timing asks the platform for a move cooldown window.
func (g *Game) Timing() core.Timing {
	return core.Timing{MoveCooldown: g.cfg.MoveCooldown()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.status}
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}
