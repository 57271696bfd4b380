package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/core"
)

// Theme maps core.Color to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

var themeRoles = []core.Color{
	core.ColorRed,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorWall,
	core.ColorFloor,
	core.ColorDestination,
	core.ColorHUD,
	core.ColorHighlight,
}

// NewTheme builds styles for the configured colors. Styles are bound to r
// so SSH sessions get the color profile of the remote terminal; a nil r
// uses the default renderer.
func NewTheme(cfg config.ThemeConfig, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	colors := cfg.Colors()

	t := Theme{core.ColorDefault: r.NewStyle()}
	for _, role := range themeRoles {
		style := r.NewStyle().Foreground(lipgloss.Color(colors[role.String()]))
		switch role {
		case core.ColorHighlight, core.ColorRed, core.ColorBlue, core.ColorYellow, core.ColorGreen:
			style = style.Bold(true)
		}
		t[role] = style
	}
	return t
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t Theme) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := t[startColor]
			if !ok {
				style = t[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
