package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/platkit/internal/host"
	"github.com/arcadelab/platkit/internal/scenario"
	"github.com/arcadelab/platkit/internal/sim"
)

// Rows reserved below the scene for the HUD and the help bar.
const chromeRows = 2

var (
	hudStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for the movement sandbox: one actor in one
// scene, stepped at the kernel's fixed rate with live keyboard input.
type Model struct {
	scenes   []scenario.Info
	sceneIdx int
	override *sim.Params // non-nil replaces every scene's own tuning

	core   *host.Core
	screen *Screen
	keys   SandboxKeyMap
	help   help.Model
	holds  holdState

	snap           host.Snapshot
	jumped, landed int
	bonked         int
	width, height  int
	quitting       bool
}

// NewModel creates a sandbox model starting in the given scene. An empty
// sceneID starts in the first listed scene; a non-nil params override
// replaces the scene tuning.
func NewModel(sceneID string, override *sim.Params, width, height int) (Model, error) {
	scenes := scenario.List()
	if len(scenes) == 0 {
		return Model{}, fmt.Errorf("tui: no scenes registered")
	}

	idx := 0
	if sceneID != "" {
		found := false
		for i, info := range scenes {
			if info.ID == sceneID {
				idx, found = i, true
				break
			}
		}
		if !found {
			return Model{}, fmt.Errorf("tui: unknown scene %q", sceneID)
		}
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		scenes:   scenes,
		sceneIdx: idx,
		override: override,
		core:     host.New(),
		screen:   NewScreen(width, max(height-chromeRows, 1)),
		keys:     DefaultSandboxKeyMap(),
		help:     h,
		holds:    make(holdState),
		width:    width,
		height:   height,
	}
	if err := m.loadScene(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// loadScene rebuilds the core from the current scene: tuning, geometry and
// spawn. Event counters restart with the scene.
func (m *Model) loadScene() error {
	scn, err := scenario.Create(m.scenes[m.sceneIdx].ID)
	if err != nil {
		return err
	}

	params := scn.Params
	if m.override != nil {
		params = *m.override
	}
	m.core.SetParamsStruct(params)

	packed := make([]float32, 0, len(scn.World)*4)
	for _, r := range scn.World {
		packed = append(packed, r.X, r.Y, r.W, r.H)
	}
	m.core.SetWorld(packed)

	m.core.Reset(scn.Spawn.X, scn.Spawn.Y, scn.Spawn.W, scn.Spawn.H)
	m.snap = host.Snapshot{}
	m.jumped, m.landed, m.bonked = 0, 0, 0
	return nil
}

// respawn puts the actor back on the scene spawn without touching tuning,
// geometry or counters.
func (m *Model) respawn() {
	scn, err := scenario.Create(m.scenes[m.sceneIdx].ID)
	if err != nil {
		return
	}
	m.core.Reset(scn.Spawn.X, scn.Spawn.Y, scn.Spawn.W, scn.Spawn.H)
}

// Init starts the fixed tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Respawn):
		m.respawn()
		return m, nil

	case key.Matches(msg, m.keys.NextScene):
		m.sceneIdx = (m.sceneIdx + 1) % len(m.scenes)
		//nolint:errcheck // Registered scenes always rebuild.
		m.loadScene()
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.holds.press(sim.ButtonLeft)
	case key.Matches(msg, m.keys.Right):
		m.holds.press(sim.ButtonRight)
	case key.Matches(msg, m.keys.Down):
		m.holds.press(sim.ButtonDown)
	case key.Matches(msg, m.keys.Run):
		m.holds.press(sim.ButtonRun)
	case key.Matches(msg, m.keys.Jump):
		m.holds.press(sim.ButtonJump)
	}

	return m, nil
}

// handleTick advances the simulation by exactly one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	bits := m.holds.bits()
	m.snap = m.core.Step(uint8(bits))

	if m.snap.Jumped {
		m.jumped++
	}
	if m.snap.Landed {
		m.landed++
	}
	if m.snap.Bonked {
		m.bonked++
	}

	return m, tickCmd()
}

// View renders the scene, the HUD line and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	drawScene(m.screen, m.core.World(), m.core.State(), m.core.Params().WorldW, m.screen.Height())

	hud := fmt.Sprintf("[%s] x=%.0f y=%.0f vx=%.0f vy=%.0f grounded=%t jumps=%d lands=%d bonks=%d",
		m.scenes[m.sceneIdx].ID,
		m.snap.X, m.snap.Y, m.snap.VX, m.snap.VY, m.snap.Grounded,
		m.jumped, m.landed, m.bonked,
	)

	return RenderScreen(m.screen) + "\n" +
		hudStyle.Render(hud) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// Run starts the sandbox in the local terminal.
func Run(sceneID string, override *sim.Params, width, height int) error {
	model, err := NewModel(sceneID, override, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
