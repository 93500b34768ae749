package snake

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Game implements the Snake game on a fixed 20x20 board.
type Game struct {
	cfg    config.SnakeConfig
	rng    *rand.Rand
	ticks  uint64
	score  int
	status core.Status

	snake   []Cell // Head at index 0
	food    Cell
	heading core.Direction // Applied on the last tick
	pending core.Direction // Latest accepted request, applied on the next tick
}

var configPath string

// SetConfigPath sets the YAML config used by subsequent resets.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Snake game.
func New() *Game {
	return &Game{cfg: config.DefaultSnakeConfig()}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset places the initial snake heading right and spawns food.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadSnake(configPath)
	if err != nil {
		// Engines have no logger; the CLI validates --config-dir up front.
		gameCfg = config.DefaultSnakeConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.ticks = 0
	g.score = 0
	g.status = core.StatusIdle
	g.snake = InitialSnake()
	g.heading = core.DirRight
	g.pending = core.DirRight
	g.food = SpawnFood(g.snake, g.rng)
}

// Apply handles a single command. Directions are buffered until the next tick;
// only the latest valid request is kept.
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
		if g.status.Terminal() {
			return core.StepResult{State: g.State()}
		}
		accepted := g.status == core.StatusIdle
		g.status = core.StatusPlaying

		// A reversal is dropped without touching the latest valid request.
		if SetDirection(g.heading, cmd.Dir) != cmd.Dir {
			return core.StepResult{State: g.State(), Accepted: accepted}
		}
		if cmd.Dir != g.pending {
			g.pending = cmd.Dir
			accepted = true
		}
		return core.StepResult{State: g.State(), Accepted: accepted}
	}
	return core.StepResult{State: g.State()}
}

// Tick moves the snake one cell.
func (g *Game) Tick() core.StepResult {
	if g.status != core.StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.heading = g.pending

	res := Tick(g.snake, g.food, g.heading, g.rng)
	if res.Terminal {
		g.status = core.StatusOver
		return core.StepResult{State: g.State(), Accepted: true}
	}

	g.snake = res.Snake
	g.food = res.Food
	if res.Ate {
		g.score += g.cfg.FoodScore
	}
	if g.food == NoFood {
		// Board is full.
		g.status = core.StatusOver
	}

	return core.StepResult{State: g.State(), Accepted: true, Scored: res.Ate}
}

// Timing asks the platform for a fixed movement interval.
func (g *Game) Timing() core.Timing {
	return core.Timing{TickEvery: g.cfg.Tick()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.status}
}

// Snake returns a copy of the snake, head first.
func (g *Game) Snake() []Cell {
	return slices.Clone(g.snake)
}

// Food returns the food cell.
func (g *Game) Food() Cell {
	return g.food
}
