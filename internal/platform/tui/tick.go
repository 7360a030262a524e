// Package tui runs games in the terminal with Bubble Tea, locally or over
// SSH. It maps keys to game input, drives the fixed-rate tick loop and
// persists finished runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends a tick after one tick interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
