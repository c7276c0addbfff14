// Package tui provides the Bubble Tea integration for the movement sandbox.
// It handles the terminal UI loop, input mapping and scene rendering on top
// of the fixed-step kernel.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/platkit/internal/sim"
)

// TickMsg is sent to trigger one fixed simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// kernel's fixed rate.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/sim.Hz, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
