// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/sched"
)

// TickMsg is sent when a game's interval elapses.
type TickMsg struct {
	Token sched.Token
}

// CooldownMsg is sent when a move cooldown window elapses.
type CooldownMsg struct {
	Token sched.Token
}

// tickCmd schedules the next interval message for tok.
func tickCmd(every time.Duration, tok sched.Token) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return TickMsg{Token: tok}
	})
}

// cooldownCmd schedules the end of a cooldown window.
func cooldownCmd(d time.Duration, tok sched.Token) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return CooldownMsg{Token: tok}
	})
}
