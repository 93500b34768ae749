package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm
}

func TestSessionGameRoundTrip(t *testing.T) {
	deps := memoryDeps(t)
	m := NewSessionModel(deps, testConfig())
	m.menu = menuCursorAt(t, m.menu, "counter")

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen = %v, want game", m.screen)
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.gameModel.State().Score; got != 1 {
		t.Errorf("score = %d, want 1", got)
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after esc", m.screen)
	}
	if m.quitting {
		t.Error("leaving a game must not end the session")
	}

	// The rebuilt menu reflects the recorded score.
	m.menu = menuCursorAt(t, m.menu, "counter")
	if item := m.menu.items[m.menu.cursor]; item.Best != 1 {
		t.Errorf("menu best = %d, want 1", item.Best)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(memoryDeps(t), testConfig())

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(NewDeps(nil, nil), testConfig())
	next, cmd := m.Update(runes("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
