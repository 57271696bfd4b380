package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/core"
	"github.com/vovakirdan/tui-robots/internal/logging"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

// Options carries what a model needs besides the game itself.
type Options struct {
	Store   *storage.Store // May be nil; clears are then not recorded
	Logger  *log.Logger    // May be nil
	Theme   Theme
	Runtime core.RuntimeConfig
	Player  string
	RunID   string // Generated when empty

	// ExitOnBack quits instead of returning to a menu.
	ExitOnBack bool
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Theme == nil {
		o.Theme = NewTheme(config.Default().Theme, nil)
	}
	if o.RunID == "" {
		o.RunID = storage.NewRunID()
	}
	if o.Runtime.TickRate <= 0 {
		o.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	return o
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	id         int64 // Tags this model's ticks
	game       core.Game
	screen     *core.Screen
	opts       Options
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	clearSaved bool // Whether the current clear has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, opts Options) Model {
	opts = opts.withDefaults()
	return Model{
		id:         nextModelID(),
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tickCmd(m.id, m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		// A tick from an earlier model would start a second loop.
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		if m.opts.ExitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}
	return m, nil
}

// handleTick steps the game with the input collected since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case !m.gameState.Cleared:
		m.clearSaved = false
	case !m.clearSaved:
		m.recordClear()
		m.clearSaved = true
	}

	m.inputFrame.Clear()
	if m.backToMenu {
		return m, nil
	}
	return m, tickCmd(m.id, m.opts.Runtime.TickRate)
}

// recordClear stores the current clear. Failures are logged, not fatal.
func (m Model) recordClear() {
	st := m.gameState
	m.opts.Logger.Info("puzzle cleared",
		"problem", st.Problem,
		"target", st.Target,
		"moves", st.Moves,
		"player", m.opts.Player,
	)
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveClear(storage.ClearRecord{
		RunID:    m.opts.RunID,
		Problem:  st.Problem,
		Target:   st.Target,
		Moves:    st.Moves,
		Solution: st.Solution,
		Player:   m.opts.Player,
	})
	if err != nil {
		m.opts.Logger.Warn("could not record clear", "problem", st.Problem, "error", err)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".robots", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.opts.Theme.RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the user quits.
func Run(game core.Game, opts Options) error {
	opts.ExitOnBack = true
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
