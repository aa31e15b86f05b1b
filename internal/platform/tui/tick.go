// Package tui provides the Bubble Tea integration for chomp: the fixed-rate
// tick loop, key-to-action mapping, screen rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that emits tick messages at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
