// Package tui provides the Bubble Tea integration for the snake platform.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// winDoneMsg ends the session after the win message has been shown.
type winDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends one tick message after
// the frame budget for the given rate. Rates below 1 are treated as 1.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameInterval is the delay between ticks at the given rate.
func frameInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(max(tickRate, 1))
}

// winCmd quits after the win pause.
func winCmd(pause time.Duration) tea.Cmd {
	if pause <= 0 {
		return func() tea.Msg { return winDoneMsg{} }
	}
	return tea.Tick(pause, func(time.Time) tea.Msg {
		return winDoneMsg{}
	})
}
