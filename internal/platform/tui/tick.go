// Package tui drives the starcatch screen stack from Bubble Tea. It maps
// terminal keys to input snapshots, ticks the stack at a fixed rate and
// renders the character grid with lipgloss, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a scheduled tick. The stack
// always advances by the fixed tick duration; the time only feeds the
// frame-rate monitor.
type TickMsg time.Time

// tickCmd schedules the next tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
