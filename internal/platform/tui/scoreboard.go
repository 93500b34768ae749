package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grid-arcade/internal/logging"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

const (
	historyLimit = 50
	// Rows taken by the title, tabs, summary and help around the table.
	scoreboardChrome = 9
)

// gameScores is everything the scores screen shows for one game.
type gameScores struct {
	best, last       int
	hasBest, hasLast bool
	rounds           int
	average          float64
	history          []storage.ScoreEntry
}

type scoreboardStyles struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	dim       lipgloss.Style
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return scoreboardStyles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		tab:       r.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		activeTab: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
		label:     r.NewStyle().Foreground(lipgloss.Color("241")),
		value:     r.NewStyle().Bold(true),
		dim:       r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// ScoreboardModel shows the kept best/last score of one game at a time
// together with its finished rounds.
type ScoreboardModel struct {
	deps      Deps
	games     []registry.GameInfo
	cursor    int
	current   gameScores
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	styles    scoreboardStyles
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scores screen opened on the first game.
func NewScoreboardModel(deps Deps, width, height int) ScoreboardModel {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}

	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		deps:   deps,
		games:  registry.List(),
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		styles: newScoreboardStyles(deps.Renderer),
		width:  width,
		height: height,
	}
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 10},
			{Title: "Finished", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	m.load()
	return m
}

func (m ScoreboardModel) tableHeight() int {
	return max(3, m.height-scoreboardChrome)
}

// load refreshes the current game's scores. Read failures are logged and
// shown as missing data.
func (m *ScoreboardModel) load() {
	m.current = gameScores{}
	if len(m.games) > 0 {
		m.current = loadGameScores(m.deps, m.games[m.cursor].ID)
	}

	rows := make([]table.Row, len(m.current.history))
	for i, e := range m.current.history {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func loadGameScores(deps Deps, gameID string) gameScores {
	var gs gameScores
	gs.best, gs.hasBest = deps.Keeper.Best(gameID)
	gs.last, gs.hasLast = deps.Keeper.Last(gameID)

	if deps.Store == nil {
		return gs
	}

	history, err := deps.Store.TopScores(gameID, historyLimit)
	if err != nil {
		deps.Logger.Warn("cannot load score history", "game", gameID, "err", err)
	}
	gs.history = history

	stats, err := deps.Store.GameStats(gameID)
	if err != nil {
		deps.Logger.Warn("cannot load score stats", "game", gameID, "err", err)
		return gs
	}
	gs.rounds = stats.GamesCount
	gs.average = stats.AvgScore
	return gs
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(m.tableHeight())
	}
	return m, nil
}

// step moves the game cursor by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.title.Render("S C O R E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderSummary(), m.width))
	b.WriteString("\n\n")

	if len(m.current.history) == 0 {
		b.WriteString(centerText(m.styles.dim.Render("No finished rounds yet."), m.width))
	} else {
		for _, line := range strings.Split(m.table.View(), "\n") {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.label.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = m.styles.activeTab.Render(g.Title)
		} else {
			tabs[i] = m.styles.tab.Render(g.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) renderSummary() string {
	field := func(label, value string) string {
		return m.styles.label.Render(label) + " " + m.styles.value.Render(value)
	}
	optional := func(v int, ok bool) string {
		if !ok {
			return "-"
		}
		return fmt.Sprintf("%d", v)
	}

	parts := []string{
		field("Best", optional(m.current.best, m.current.hasBest)),
		field("Last", optional(m.current.last, m.current.hasLast)),
	}
	if m.current.rounds > 0 {
		parts = append(parts,
			field("Rounds", fmt.Sprintf("%d", m.current.rounds)),
			field("Avg", fmt.Sprintf("%.0f", m.current.average)),
		)
	}
	return strings.Join(parts, "   ")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(deps Deps, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(deps, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
