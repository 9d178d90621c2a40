package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vbelenko/termblast/internal/config"
	"github.com/vbelenko/termblast/internal/core"
	"github.com/vbelenko/termblast/internal/game"
	"github.com/vbelenko/termblast/internal/storage"
)

// Model is the Bubble Tea model running one game session. The terminal
// size only affects rendering; the simulation runs in its own playfield
// coordinates, so resizing never resets a run.
type Model struct {
	sim      *game.Simulation
	renderer *Renderer
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper
	tracker  *InputTracker
	paused   bool
	quitting bool
	runSaved bool
}

// NewModel creates a model for the given game configuration.
func NewModel(gcfg config.GameConfig, store *storage.Store, rcfg core.RuntimeConfig, sounds game.Sounds, logger *log.Logger) Model {
	if rcfg.Seed == 0 {
		rcfg.Seed = time.Now().UnixNano()
	}
	if rcfg.TickRate <= 0 {
		rcfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		sim:      game.NewSimulation(gcfg, logger, sounds),
		renderer: NewRenderer(gcfg.Playfield),
		screen:   core.NewScreen(rcfg.ScreenW, rcfg.ScreenH),
		store:    store,
		config:   rcfg,
		keys:     NewKeyMapper(),
		tracker:  NewInputTracker(rcfg.TickRate / 5),
	}
}

// Init resets the simulation and starts the tick loop.
func (m Model) Init() tea.Cmd {
	// Simulation is a pointer; the reset survives the value receiver.
	if err := m.sim.Reset(m.config); err != nil {
		return tea.Quit
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey feeds key events into the input tracker.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionPause {
		m.paused = !m.paused
		m.tracker.Reset()
		return m, nil
	}
	m.tracker.Key(action)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.sim.Step(m.tracker.Frame())

	switch result.State {
	case game.StateGameOver, game.StateBossGameOver, game.StateWin:
		if !m.runSaved {
			m.saveRun(result)
			m.runSaved = true
		}
	default:
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run, best effort.
func (m Model) saveRun(result game.StepResult) {
	if m.store == nil {
		return
	}

	entry := storage.RunEntry{
		Mode:   storage.ModeNormal,
		Result: storage.ResultGameOver,
		Stage:  m.sim.LevelIndex(),
		Frames: result.Frame,
		Seed:   m.config.Seed,
	}
	if m.sim.BossMode() {
		entry.Mode = storage.ModeBoss
		entry.Stage = 0
	}
	if result.State == game.StateWin {
		entry.Result = storage.ResultWin
	}

	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveRun(entry)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.sim, m.screen)
	out := RenderScreen(m.screen)
	if m.paused {
		return out + "\npaused (p to resume)"
	}
	return out
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(gcfg config.GameConfig, store *storage.Store, rcfg core.RuntimeConfig, sounds game.Sounds, logger *log.Logger) error {
	model := NewModel(gcfg, store, rcfg, sounds, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
