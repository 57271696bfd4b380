package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-robots/internal/core"
	"github.com/vovakirdan/tui-robots/internal/games/robots/problems"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

// MenuItem is one problem in the picker.
type MenuItem struct {
	Name      string
	Clears    int
	BestMoves int // Zero when never cleared
}

// MenuModel is the Bubble Tea model for the problem picker.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	offset     int // First visible item
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem // Set when user picks a problem
	wantScores bool      // Set when user asks for the scoreboard
	statsErr   error
}

// NewMenuModel creates a problem picker over catalog, annotated with clear
// statistics when store is not nil.
func NewMenuModel(catalog *problems.Catalog, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.ProblemStats
	var statsErr error
	if store != nil {
		stats, statsErr = store.AllProblemStats()
	}

	names := catalog.Names()
	items := make([]MenuItem, 0, len(names))
	for _, name := range names {
		item := MenuItem{Name: name}
		if s, ok := stats[name]; ok {
			item.Clears = s.Clears
			item.BestMoves = s.BestMoves
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		statsErr:  statsErr,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.scrollToCursor()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScores:
		m.wantScores = true
	}

	m.scrollToCursor()
	return m, nil
}

// visibleRows is how many items fit between the header and the footer.
func (m MenuModel) visibleRows() int {
	return max(m.height-8, 1)
}

func (m *MenuModel) scrollToCursor() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("R I C O C H E T   R O B O T S", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a problem", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(menuDimStyle.Render(centerText("No problems found.", m.width)))
		b.WriteString("\n")
	}

	end := min(m.offset+m.visibleRows(), len(m.items))
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		best := "unsolved"
		if item.Clears > 0 {
			best = fmt.Sprintf("best %2d  (%d clears)", item.BestMoves, item.Clears)
		}
		line := fmt.Sprintf("%-24s %s", item.Name, best)
		if i == m.cursor {
			b.WriteString(menuCursorStyle.Render(centerText("> "+line, m.width)))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.statsErr != nil {
		b.WriteString(menuDimStyle.Render(centerText("(clear statistics unavailable)", m.width)))
		b.WriteString("\n")
	}
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Clears  |  Q: Quit"
	b.WriteString(menuDimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.wantScores
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}
