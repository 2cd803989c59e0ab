// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/interval"
)

// FrameMsg is sent once per driver frame. Every frame polls the scheduler;
// the scheduler decides whether the simulation steps.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	return tea.Tick(interval.IntervalForRate(frameRate), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
