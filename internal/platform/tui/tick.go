// Package tui provides the Bubble Tea shells for the arcade: the local
// terminal game, the menu session and the Wish SSH server that serves it.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the configured rate is not positive.
const defaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the duration of one tick.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
