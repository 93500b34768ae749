package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/registry"
)

func TestScoreboardSummary(t *testing.T) {
	deps := memoryDeps(t)
	deps.Keeper.Record("counter", 7)
	deps.Keeper.Record("counter", 3)
	for _, s := range []int{3, 7} {
		if _, err := deps.Store.SaveScore("counter", s); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(deps, 80, 24)

	got := m.current
	if got.best != 7 || !got.hasBest || got.last != 3 || !got.hasLast {
		t.Errorf("best/last = %d/%d, want 7/3", got.best, got.last)
	}
	if got.rounds != 2 || len(got.history) != 2 || got.history[0].Score != 7 {
		t.Errorf("history = %+v (rounds %d), want [7 3]", got.history, got.rounds)
	}

	view := m.View()
	for _, want := range []string{"Best 7", "Last 3", "Rounds 2", "Counter"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(NewDeps(nil, nil), 80, 24)

	view := m.View()
	for _, want := range []string{"Best -", "Last -", "No finished rounds yet."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Rounds") {
		t.Error("rounds should be hidden without history")
	}
}

func TestScoreboardSwitchGames(t *testing.T) {
	m := NewScoreboardModel(NewDeps(nil, nil), 80, 24)
	m.games = append(m.games, registry.GameInfo{ID: "other", Title: "Other"})

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, 1},
		{tea.KeyMsg{Type: tea.KeyTab}, 0},
		{tea.KeyMsg{Type: tea.KeyLeft}, 1},
	}
	for _, st := range steps {
		next, _ := m.Update(st.msg)
		m = next.(ScoreboardModel)
		if m.cursor != st.want {
			t.Errorf("after %s cursor = %d, want %d", st.msg, m.cursor, st.want)
		}
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(NewDeps(nil, nil), 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if sb := next.(ScoreboardModel); !sb.IsGoingBack() || sb.IsQuitting() {
		t.Error("esc should go back without quitting")
	}

	next, _ = m.Update(runes("q"))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
