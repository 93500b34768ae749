package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/logging"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/sched"
	"github.com/vovakirdan/grid-arcade/internal/scores"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// footerHeight is the number of rows reserved below the game screen.
const footerHeight = 2

// Deps bundles the collaborators shared by every screen.
type Deps struct {
	Store  *storage.Store // May be nil; history is then not kept
	Keeper *scores.Keeper
	Logger *log.Logger

	// Renderer styles game output. Nil uses the local terminal.
	Renderer *lipgloss.Renderer
}

// NewDeps wires a keeper to store. A nil store or logger is allowed.
func NewDeps(store *storage.Store, logger *log.Logger) Deps {
	if logger == nil {
		logger = logging.Discard()
	}
	var kv scores.KV
	if store != nil {
		kv = store
	}
	return Deps{
		Store:  store,
		Keeper: scores.NewKeeper(kv, logger),
		Logger: logger,
	}
}

// GameModel runs one game. It owns the game's timers: a repeating interval
// for gravity or movement and a cooldown window after accepted moves.
// Timer messages carry a token; messages from a cancelled generation are
// dropped so a restart never sees a stale tick.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	deps     Deps
	config   core.RuntimeConfig
	keys     GameKeyMap
	help     help.Model
	interval *sched.Interval
	cooldown *sched.Cooldown
	palette  Palette
	chrome   chromeStyles

	state      core.GameState
	best       int
	hasBest    bool
	paused     bool
	recorded   bool // Final score of the current round persisted
	standalone bool // Back quits the program instead of returning to a parent
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and resets the game. Init arms the timers.
func NewGameModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-footerHeight)),
		deps:     deps,
		config:   cfg,
		keys:     DefaultGameKeyMap(),
		help:     h,
		interval: sched.NewInterval(0),
		cooldown: sched.NewCooldown(0),
		palette:  NewPalette(deps.Renderer),
		chrome:   newChromeStyles(deps.Renderer),
	}
	m.reset()
	return m
}

// Init starts the game's interval.
// Handles are pointers, so arming them from a value receiver is visible to
// the model Bubble Tea keeps.
func (m GameModel) Init() tea.Cmd {
	return m.armInterval()
}

// start resets the game and re-arms its interval.
func (m *GameModel) start() tea.Cmd {
	m.reset()
	return m.armInterval()
}

// reset cancels pending timers before resetting the game with the current seed.
func (m *GameModel) reset() {
	sched.CancelAll(m.cooldown, m.interval)

	m.game.Reset(m.config)
	m.state = m.game.State()
	m.paused = false
	m.recorded = false
	m.best, m.hasBest = m.deps.Keeper.Best(m.game.ID())

	timing := m.game.Timing()
	m.interval.Every = timing.TickEvery
	m.cooldown.Every = timing.MoveCooldown

	m.deps.Logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
}

func (m *GameModel) armInterval() tea.Cmd {
	tok := m.interval.Start()
	if !m.interval.Running() {
		return nil
	}
	return tickCmd(m.interval.Every, tok)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(0, msg.Height-footerHeight))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case CooldownMsg:
		m.cooldown.Close(msg.Token)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd, ok := m.keys.Resolve(msg, m.game.ID())

	switch action {
	case ShellQuit:
		m.stop()
		m.quitting = true
		return m, tea.Quit

	case ShellBack:
		m.stop()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case ShellReset:
		m.config.Seed = time.Now().UnixNano()
		return m, m.start()

	case ShellPause:
		return m, m.togglePause()
	}

	if !ok || m.paused {
		return m, nil
	}

	if cmd.Kind == core.CmdMove && m.cooldown.Active() {
		// Dropped, not queued.
		return m, nil
	}

	res := m.game.Apply(cmd)
	m.afterStep(res)

	if res.Accepted && cmd.Kind == core.CmdMove && m.cooldown.Enabled() {
		tok := m.cooldown.Open()
		return m, cooldownCmd(m.cooldown.Every, tok)
	}
	return m, nil
}

// togglePause stops or resumes the interval. Finished games do not pause.
func (m *GameModel) togglePause() tea.Cmd {
	if m.state.Terminal() {
		return nil
	}

	m.paused = !m.paused
	if m.paused {
		sched.CancelAll(m.cooldown, m.interval)
		return nil
	}
	return m.armInterval()
}

// handleTick applies one interval step if the message is current.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.interval.Fire(msg.Token) {
		return m, nil
	}

	res := m.game.Tick()
	m.afterStep(res)

	if !m.interval.Running() {
		return m, nil
	}
	return m, tickCmd(m.interval.Every, msg.Token)
}

// afterStep persists scores and stops timers once the game ends.
func (m *GameModel) afterStep(res core.StepResult) {
	m.state = res.State

	if res.Scored {
		m.record()
	}

	if m.state.Terminal() && !m.recorded {
		m.recorded = true
		m.record()
		m.saveHistory()
		m.interval.Stop()
		m.deps.Logger.Info("game finished", "game", m.game.ID(), "status", m.state.Status, "score", m.state.Score)
	}
}

func (m *GameModel) record() {
	id := m.game.ID()
	m.deps.Keeper.Record(id, m.state.Score)
	if !m.hasBest || m.state.Score > m.best {
		m.best, m.hasBest = m.state.Score, true
	}
}

func (m *GameModel) saveHistory() {
	if m.deps.Store == nil || m.state.Score == 0 {
		return
	}
	if _, err := m.deps.Store.SaveScore(m.game.ID(), m.state.Score); err != nil {
		m.deps.Logger.Warn("cannot save score history", "game", m.game.ID(), "err", err)
	}
}

// stop cancels every pending timer.
func (m *GameModel) stop() {
	sched.CancelAll(m.cooldown, m.interval)
}

// chromeStyles style the lines below the game screen.
type chromeStyles struct {
	footer lipgloss.Style
	best   lipgloss.Style
	paused lipgloss.Style
}

func newChromeStyles(r *lipgloss.Renderer) chromeStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return chromeStyles{
		footer: r.NewStyle().Foreground(lipgloss.Color("241")),
		best:   r.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		paused: r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	}
}

// View renders the game screen and the footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := fmt.Sprintf("Best: %d", m.best)
	if !m.hasBest {
		status = "Best: -"
	}
	line := m.chrome.best.Render(status)
	if m.paused {
		line += "  " + m.chrome.paused.Render("PAUSED")
	}

	return m.palette.Render(m.screen) + "\n" + line + "\n" + m.chrome.footer.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// Paused reports whether the interval is suspended by the player.
func (m GameModel) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in its own program.
// It reports whether the player asked to go back to a menu.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, deps, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
