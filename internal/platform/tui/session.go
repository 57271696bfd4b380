package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-robots/internal/games/robots"
	"github.com/vovakirdan/tui-robots/internal/games/robots/problems"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the clears scoreboard reachable from the menu. It is the top-level model
// for local play without a problem argument and for every SSH session.
type SessionModel struct {
	catalog    *problems.Catalog
	opts       Options
	view       sessionView
	menu       MenuModel
	gameModel  *Model
	scoreboard *ScoreboardModel
	lastPlayed string
	quitting   bool
}

// NewSessionModel creates a new session model. All games of the session
// share one run ID.
func NewSessionModel(catalog *problems.Catalog, opts Options) SessionModel {
	opts = opts.withDefaults()
	opts.ExitOnBack = false
	return SessionModel{
		catalog: catalog,
		opts:    opts,
		menu:    NewMenuModel(catalog, opts.Store, opts.Runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		current := m.lastPlayed
		if sel := m.menu.Selected(); sel != nil {
			current = sel.Name
		}
		sb := NewScoreboardModel(m.catalog, m.opts.Store, current, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.scoreboard = &sb
		m.view = viewScores
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game := robots.New(m.catalog)
		if err := game.SetProblem(selected.Name); err != nil {
			m.opts.Logger.Warn("could not load problem", "problem", selected.Name, "error", err)
		}
		m.lastPlayed = selected.Name

		gameModel := NewModel(game, m.opts)
		m.gameModel = &gameModel
		m.view = viewGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		// Rebuild the menu so new clears show up
		m.menu = NewMenuModel(m.catalog, m.opts.Store, m.opts.Runtime)
		m.menu.cursor = max(m.catalog.Index(m.lastPlayed), 0)
		m.menu.scrollToCursor()
		m.view = viewMenu
		// The pending tick from the game is dropped by the menu.
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.menu = NewMenuModel(m.catalog, m.opts.Store, m.opts.Runtime)
		m.menu.cursor = max(m.catalog.Index(m.lastPlayed), 0)
		m.menu.scrollToCursor()
		m.view = viewMenu
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session until the user quits.
func RunSession(catalog *problems.Catalog, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(catalog, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
