package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/arcadelab/platkit/internal/sim"
)

// Terminals report key presses but not releases, so a press arms its button
// for a short window of ticks and repeat events keep re-arming it. This is
// the standard terminal approximation of held movement keys.
const holdTicks = 6

// SandboxKeyMap defines the key bindings for the movement sandbox.
type SandboxKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Down      key.Binding
	Run       key.Binding
	Jump      key.Binding
	Respawn   key.Binding
	NextScene key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SandboxKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Respawn, k.NextScene, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k SandboxKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Run, k.Jump},
		{k.Respawn, k.NextScene, k.Help, k.Quit},
	}
}

// DefaultSandboxKeyMap returns default key bindings.
func DefaultSandboxKeyMap() SandboxKeyMap {
	return SandboxKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "move right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "fast fall"),
		),
		Run: key.NewBinding(
			key.WithKeys("shift+left", "shift+right", "e"),
			key.WithHelp("e", "run"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "w", "up"),
			key.WithHelp("space", "jump"),
		),
		Respawn: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "respawn"),
		),
		NextScene: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next scene"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// holdState tracks per-button hold windows, in remaining ticks.
type holdState map[sim.Buttons]int

// press arms a button for the next holdTicks ticks.
func (h holdState) press(b sim.Buttons) {
	h[b] = holdTicks
}

// bits collects the currently armed buttons and decays every window by one
// tick. Call exactly once per simulation tick.
func (h holdState) bits() sim.Buttons {
	var out sim.Buttons
	for b, left := range h {
		if left > 0 {
			out |= b
			h[b] = left - 1
		}
	}
	return out
}
