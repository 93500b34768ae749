package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// counterGame scores one point per accepted move and ends at three.
type counterGame struct {
	cooldown time.Duration
	score    int
	ticks    int
	status   core.Status
}

func (g *counterGame) ID() string    { return "counter" }
func (g *counterGame) Title() string { return "Counter" }

func (g *counterGame) Reset(core.RuntimeConfig) {
	g.score, g.ticks, g.status = 0, 0, core.StatusIdle
}

func (g *counterGame) Apply(cmd core.Command) core.StepResult {
	if g.status.Terminal() || cmd.Kind != core.CmdMove {
		return core.StepResult{State: g.State()}
	}
	g.status = core.StatusPlaying
	g.score++
	if g.score >= 3 {
		g.status = core.StatusOver
	}
	return core.StepResult{State: g.State(), Accepted: true, Scored: true}
}

func (g *counterGame) Tick() core.StepResult {
	g.ticks++
	return core.StepResult{State: g.State()}
}

func (g *counterGame) Timing() core.Timing {
	return core.Timing{TickEvery: 100 * time.Millisecond, MoveCooldown: g.cooldown}
}

func (g *counterGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "counter")
}

func (g *counterGame) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.status}
}

func init() {
	registry.Register("counter", func() registry.Game { return &counterGame{} })
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
}

func memoryDeps(t *testing.T) Deps {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewDeps(store, nil)
}

func TestResolve(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		game   string
		action ShellAction
		cmd    core.Command
		ok     bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, "2048", ShellNone, core.Move(core.DirLeft), true},
		{"wasd down", runes("s"), "snake", ShellNone, core.Move(core.DirDown), true},
		{"up moves", tea.KeyMsg{Type: tea.KeyUp}, "2048", ShellNone, core.Move(core.DirUp), true},
		{"up rotates tetris", tea.KeyMsg{Type: tea.KeyUp}, "tetris", ShellNone, core.Rotate(), true},
		{"rotate key", runes("x"), "tetris", ShellNone, core.Rotate(), true},
		{"space starts", tea.KeyMsg{Type: tea.KeySpace}, "snake", ShellNone, core.Start(), true},
		{"pause", runes("p"), "snake", ShellPause, core.Command{}, false},
		{"reset", runes("r"), "snake", ShellReset, core.Command{}, false},
		{"back", tea.KeyMsg{Type: tea.KeyEscape}, "snake", ShellBack, core.Command{}, false},
		{"quit", runes("q"), "snake", ShellQuit, core.Command{}, false},
		{"unbound", runes("m"), "snake", ShellNone, core.Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, cmd, ok := keys.Resolve(tt.msg, tt.game)
			if action != tt.action || cmd != tt.cmd || ok != tt.ok {
				t.Errorf("Resolve() = (%v, %+v, %v), want (%v, %+v, %v)",
					action, cmd, ok, tt.action, tt.cmd, tt.ok)
			}
		})
	}
}

func TestGameModelTick(t *testing.T) {
	g := &counterGame{}
	m := NewGameModel(g, NewDeps(nil, nil), testConfig())
	tok := m.interval.Start()

	m = send(t, m, TickMsg{Token: tok})
	m = send(t, m, TickMsg{Token: tok})
	if g.ticks != 2 {
		t.Errorf("ticks = %d, want 2", g.ticks)
	}
}

func TestGameModelStaleTickAfterReset(t *testing.T) {
	g := &counterGame{}
	m := NewGameModel(g, NewDeps(nil, nil), testConfig())
	old := m.interval.Start()

	m = send(t, m, runes("r"))
	m = send(t, m, TickMsg{Token: old})

	if g.ticks != 0 {
		t.Errorf("stale tick was applied after reset, ticks = %d", g.ticks)
	}
	if !m.interval.Running() {
		t.Error("reset should re-arm the interval")
	}
}

func TestGameModelPause(t *testing.T) {
	g := &counterGame{}
	m := NewGameModel(g, NewDeps(nil, nil), testConfig())
	tok := m.interval.Start()

	m = send(t, m, runes("p"))
	if !m.Paused() {
		t.Fatal("p should pause")
	}
	m = send(t, m, TickMsg{Token: tok})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if g.ticks != 0 || g.score != 0 {
		t.Errorf("paused game advanced: ticks=%d score=%d", g.ticks, g.score)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show PAUSED")
	}

	m = send(t, m, runes("p"))
	if m.Paused() || !m.interval.Running() {
		t.Error("second p should resume the interval")
	}
}

func TestGameModelCooldownDropsMoves(t *testing.T) {
	g := &counterGame{cooldown: time.Second}
	m := NewGameModel(g, NewDeps(nil, nil), testConfig())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if g.score != 1 {
		t.Errorf("score = %d, want 1 (second move inside cooldown)", g.score)
	}

	// A stale close does not end the window.
	m = send(t, m, CooldownMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if g.score != 1 {
		t.Errorf("score = %d after stale cooldown message, want 1", g.score)
	}

	m.cooldown.Cancel()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if g.score != 2 {
		t.Errorf("score = %d after cooldown closed, want 2", g.score)
	}
}

func TestGameModelRecordsScores(t *testing.T) {
	deps := memoryDeps(t)
	g := &counterGame{}
	m := NewGameModel(g, deps, testConfig())
	m.interval.Start()

	for range 3 {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}

	if m.State().Status != core.StatusOver {
		t.Fatalf("status = %v, want Over", m.State().Status)
	}
	if m.interval.Running() {
		t.Error("interval should stop when the game ends")
	}
	if best, ok := deps.Keeper.Best("counter"); !ok || best != 3 {
		t.Errorf("Best() = %d, %v, want 3, true", best, ok)
	}
	if last, ok := deps.Keeper.Last("counter"); !ok || last != 3 {
		t.Errorf("Last() = %d, %v, want 3, true", last, ok)
	}

	history, err := deps.Store.TopScores("counter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(history) != 1 || history[0].Score != 3 {
		t.Errorf("history = %+v, want a single score of 3", history)
	}

	// A lower round keeps the best score.
	m = send(t, m, runes("r"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if best, _ := deps.Keeper.Best("counter"); best != 3 {
		t.Errorf("Best() = %d after lower round, want 3", best)
	}
	if last, _ := deps.Keeper.Last("counter"); last != 1 {
		t.Errorf("Last() = %d, want 1", last)
	}
	if !strings.Contains(m.View(), "Best: 3") {
		t.Error("view should show the best score")
	}
}

func TestGameModelBack(t *testing.T) {
	m := NewGameModel(&counterGame{}, NewDeps(nil, nil), testConfig())
	m.interval.Start()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("esc should request the menu")
	}
	if m.interval.Running() {
		t.Error("leaving a game should stop its interval")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&counterGame{}, NewDeps(nil, nil), testConfig())
	next, cmd := m.Update(runes("q"))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &counterGame{}
	m := NewGameModel(g, NewDeps(nil, nil), testConfig())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.score != 1 {
		t.Errorf("resize reset the game, score = %d", g.score)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-footerHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 40-footerHeight)
	}
}
