package tetris

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Game implements the falling-block stacker.
type Game struct {
	cfg    config.TetrisConfig
	rng    *rand.Rand
	score  int
	lines  int
	locked int // Pieces locked since reset
	status core.Status

	board  Board
	piece  Piece
	active bool // False once a spawn has failed
}

var configPath string

// SetConfigPath sets the YAML config used by subsequent resets.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{cfg: config.DefaultTetrisConfig()}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset clears the board and spawns the first piece. The game stays idle
// until started.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadTetris(configPath)
	if err != nil {
		// Engines have no logger; the CLI validates --config-dir up front.
		gameCfg = config.DefaultTetrisConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.score = 0
	g.lines = 0
	g.locked = 0
	g.status = core.StatusIdle
	g.board = Board{}
	g.spawn()
}

// Apply handles a single command.
func (g *Game) Apply(cmd core.Command) core.StepResult {
	if cmd.Kind == core.CmdReset {
		var seed int64
		if g.rng != nil {
			seed = g.rng.Int63()
		}
		g.Reset(core.RuntimeConfig{Seed: seed})
		return core.StepResult{State: g.State(), Accepted: true}
	}

	switch g.status {
	case core.StatusIdle:
		// Start or a soft drop begins the game without moving the piece.
		if cmd.Kind == core.CmdStart || (cmd.Kind == core.CmdMove && cmd.Dir == core.DirDown) {
			g.status = core.StatusPlaying
			return core.StepResult{State: g.State(), Accepted: true}
		}
		return core.StepResult{State: g.State()}
	case core.StatusPlaying:
	default:
		return core.StepResult{State: g.State()}
	}

	switch cmd.Kind {
	case core.CmdRotate:
		next := Rotate(g.board, g.piece)
		moved := next != g.piece
		g.piece = next
		return core.StepResult{State: g.State(), Accepted: moved}
	case core.CmdMove:
		switch cmd.Dir {
		case core.DirLeft, core.DirRight:
			dr, dc := cmd.Dir.Delta()
			anchor, ok := TryMove(g.board, g.piece, Cell{Row: dr, Col: dc})
			g.piece.Anchor = anchor
			return core.StepResult{State: g.State(), Accepted: ok}
		case core.DirDown:
			return g.drop()
		}
	}
	return core.StepResult{State: g.State()}
}

// Tick applies gravity.
func (g *Game) Tick() core.StepResult {
	if g.status != core.StatusPlaying {
		return core.StepResult{State: g.State()}
	}
	return g.drop()
}

// drop moves the piece one row down. A blocked piece is locked, full rows
// are cleared and the next piece is spawned within the same event.
func (g *Game) drop() core.StepResult {
	anchor, ok := TryMove(g.board, g.piece, Cell{Row: 1})
	if ok {
		g.piece.Anchor = anchor
		return core.StepResult{State: g.State(), Accepted: true}
	}

	var cleared int
	g.board, cleared = LockPiece(g.board, g.piece)
	g.locked++
	g.lines += cleared
	g.score += cleared * g.cfg.LineScore

	g.spawn()
	return core.StepResult{State: g.State(), Accepted: true, Scored: cleared > 0}
}

func (g *Game) spawn() {
	p, ok := SpawnPiece(g.board, g.rng)
	if !ok {
		g.active = false
		g.status = core.StatusOver
		return
	}
	g.piece = p
	g.active = true
}

// Timing asks the platform for a gravity interval.
func (g *Game) Timing() core.Timing {
	return core.Timing{TickEvery: g.cfg.Gravity()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.status}
}
