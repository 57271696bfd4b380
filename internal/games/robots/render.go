package robots

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-robots/internal/core"
	engine "github.com/vovakirdan/tui-robots/internal/games/robots/core"
)

const (
	cellWidth  = 4 // Characters per cell, including the left grid line
	cellHeight = 2 // Lines per cell, including the top grid line

	// BoardWidth and BoardHeight are the rendered board size in characters.
	BoardWidth  = engine.BoardSize*cellWidth + 1
	BoardHeight = engine.BoardSize*cellHeight + 1

	boardW     = BoardWidth
	hudHeight  = 3
	footerRows = 1
	minScreenW = boardW
	minScreenH = hudHeight + BoardHeight + footerRows
)

// layout is the screen position of the board's top-left grid corner.
type layout struct {
	x, y int
}

// cellAt maps a screen coordinate to the board cell drawn there. Grid lines
// do not belong to any cell.
func (l layout) cellAt(x, y int) (engine.Position, bool) {
	if !l.interior().Contains(x, y) {
		return engine.Position{}, false
	}
	dx, dy := x-l.x, y-l.y
	if dx%cellWidth == 0 || dy%cellHeight == 0 {
		return engine.Position{}, false
	}
	return engine.P(dy/cellHeight, dx/cellWidth), true
}

// interior is the board area inside the outer walls.
func (l layout) interior() core.Rect {
	return core.NewRect(l.x+1, l.y+1, BoardWidth-2, BoardHeight-2)
}

// cellRect covers the interior characters of cell p.
func (l layout) cellRect(p engine.Position) core.Rect {
	x, y := l.cellOrigin(p)
	return core.NewRect(x, y, cellWidth-1, cellHeight-1)
}

// cellOrigin returns the first interior character of cell p.
func (l layout) cellOrigin(p engine.Position) (x, y int) {
	return l.x + p.J*cellWidth + 1, l.y + p.I*cellHeight + 1
}

// RobotColor maps a puzzle color to its screen color.
func RobotColor(c engine.Color) core.Color {
	switch c {
	case engine.Blue:
		return core.ColorBlue
	case engine.Yellow:
		return core.ColorYellow
	case engine.Green:
		return core.ColorGreen
	default:
		return core.ColorRed
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	if g.state.Problem() == nil {
		g.renderLoadError(dst)
	} else {
		RenderBoard(dst, g.origin.x, g.origin.y, g.state)
	}

	g.renderFooter(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	need := fmt.Sprintf("Need %dx%d, have %dx%d", minScreenW, minScreenH, g.screenW, g.screenH)
	w := len(need) + 4
	dst.DrawBox(core.NewRect((g.screenW-w)/2, y-1, w, 4), core.ColorWall)
	dst.DrawTextCentered(y, "Window too small", core.ColorHUD)
	dst.DrawTextCentered(y+1, need, core.ColorHUD)
}

func (g *Game) renderHUD(dst *core.Screen) {
	x := g.origin.x

	title := g.Title()
	if g.catalog != nil && g.catalog.Len() > 0 {
		title = fmt.Sprintf("%s  %s (%d/%d)", title, g.ProblemName(), g.index+1, g.catalog.Len())
	}
	dst.DrawTextColored(x, 0, title, core.ColorHUD)

	target := g.state.Target()
	dst.DrawTextColored(x, 1, "Target: ", core.ColorHUD)
	dst.DrawTextColored(x+8, 1, strings.ToUpper(target.String()), RobotColor(target))

	moves := fmt.Sprintf("Moves: %d", g.state.MoveCount())
	dst.DrawTextColored(x+20, 1, moves, core.ColorHUD)

	if c, ok := g.state.Selected(); ok {
		dst.DrawTextColored(x+33, 1, "Selected: ", core.ColorHUD)
		dst.DrawTextColored(x+43, 1, c.String(), RobotColor(c))
	}

	if g.state.Cleared() {
		banner := "** CLEAR **"
		dst.DrawTextColored(x+BoardWidth-len(banner), 1, banner, core.ColorHighlight)
	}
}

func (g *Game) renderLoadError(dst *core.Screen) {
	y := g.origin.y + BoardHeight/2
	dst.DrawTextCentered(y, "No problem loaded", core.ColorHUD)
	if g.loadErr != nil {
		dst.DrawTextCentered(y+1, g.loadErr.Error(), core.ColorRed)
	}
	dst.DrawTextCentered(y+2, "[ ] to try another problem", core.ColorHUD)
}

func (g *Game) renderFooter(dst *core.Screen) {
	help := "1-4/Tab select  arrows move  u undo  r reset  t target  [ ] problem  b menu  q quit"
	if g.state.Cleared() {
		help = "Cleared! u undo  r retry  ] next problem  b menu  q quit"
	}
	dst.DrawTextCentered(g.origin.y+BoardHeight, help, core.ColorHUD)
}

// RenderBoard draws the board of s with its top-left grid corner at (ox, oy):
// walls, the center block tinted with the target color, chips, robots and
// the destinations of the selected robot.
func RenderBoard(dst *core.Screen, ox, oy int, s *engine.State) {
	p := s.Problem()
	if p == nil {
		return
	}
	l := layout{x: ox, y: oy}

	renderGrid(dst, l, &p.Walls)
	renderCenter(dst, l, s.Target())

	dests := make(map[engine.Position]bool)
	for _, d := range s.Destinations() {
		dests[d.Position] = true
	}
	arrows := arrowCells(s)

	robots := s.Robots()
	selected, hasSelected := s.Selected()
	for i := 0; i < engine.BoardSize; i++ {
		for j := 0; j < engine.BoardSize; j++ {
			pos := engine.P(i, j)
			if engine.IsCenterBlock(i, j) {
				continue
			}
			x, y := l.cellOrigin(pos)

			if c, ok := robots.At(pos); ok {
				col := RobotColor(c)
				if hasSelected && c == selected {
					dst.SetColored(x, y, '[', core.ColorHighlight)
					dst.SetColored(x+2, y, ']', core.ColorHighlight)
				}
				dst.SetColored(x+1, y, rune(c.Letter()), col)
				if s.Cleared() && c == s.Target() {
					dst.Tint(l.cellRect(pos), core.ColorHighlight)
				}
				continue
			}

			chip, hasChip := p.Chips.At(pos)
			arrow, hasArrow := arrows[pos]
			switch {
			case hasChip && dests[pos]:
				dst.SetColored(x, y, '*', core.ColorDestination)
				dst.SetColored(x+1, y, chipRune(chip), RobotColor(chip))
				dst.SetColored(x+2, y, '*', core.ColorDestination)
			case hasChip && hasArrow:
				dst.SetColored(x, y, arrowRunes[arrow], core.ColorDestination)
				dst.SetColored(x+1, y, chipRune(chip), RobotColor(chip))
				dst.SetColored(x+2, y, ')', RobotColor(chip))
			case hasChip:
				dst.SetColored(x, y, '(', RobotColor(chip))
				dst.SetColored(x+1, y, chipRune(chip), RobotColor(chip))
				dst.SetColored(x+2, y, ')', RobotColor(chip))
			case dests[pos]:
				dst.SetColored(x+1, y, '*', core.ColorDestination)
			case hasArrow:
				dst.SetColored(x+1, y, arrowRunes[arrow], core.ColorDestination)
			}
		}
	}
}

var arrowRunes = [...]rune{
	engine.Up:    '↑',
	engine.Down:  '↓',
	engine.Left:  '←',
	engine.Right: '→',
}

// arrowCells maps each cell next to the selected robot that starts a
// slide to the direction of that slide.
func arrowCells(s *engine.State) map[engine.Position]engine.Direction {
	c, ok := s.Selected()
	if !ok {
		return nil
	}
	from := s.Robots()[c]
	arrows := make(map[engine.Position]engine.Direction)
	for _, d := range s.Destinations() {
		arrows[from.Add(d.Direction)] = d.Direction
	}
	return arrows
}

// arrowAt reports the slide direction of the arrow drawn on p, if any.
func arrowAt(s *engine.State, p engine.Position) (engine.Direction, bool) {
	d, ok := arrowCells(s)[p]
	return d, ok
}

func chipRune(c engine.Color) rune {
	return rune(c.Letter()) + ('a' - 'A')
}

// renderGrid draws every grid line segment: walls as box-drawing lines and
// open edges as blanks, with corners joined to the walls that meet there.
func renderGrid(dst *core.Screen, l layout, w *engine.Walls) {
	n := engine.BoardSize

	// hwall reports a wall on grid row r above cell column c.
	hwall := func(r, c int) bool {
		if c < 0 || c >= n {
			return false
		}
		return r == 0 || r == n || w.Vertical[r][c]
	}
	// vwall reports a wall on grid column c left of cell row r.
	vwall := func(r, c int) bool {
		if r < 0 || r >= n {
			return false
		}
		return c == 0 || c == n || w.Horizontal[r][c]
	}

	for r := 0; r <= n; r++ {
		for c := 0; c <= n; c++ {
			x, y := l.x+c*cellWidth, l.y+r*cellHeight

			var arms uint8
			if vwall(r-1, c) {
				arms |= armUp
			}
			if vwall(r, c) {
				arms |= armDown
			}
			if hwall(r, c-1) {
				arms |= armLeft
			}
			if hwall(r, c) {
				arms |= armRight
			}
			if arms == 0 {
				dst.SetColored(x, y, '·', core.ColorFloor)
			} else {
				dst.SetColored(x, y, cornerRunes[arms], core.ColorWall)
			}

			if c < n && hwall(r, c) {
				for k := 1; k < cellWidth; k++ {
					dst.SetColored(x+k, y, '─', core.ColorWall)
				}
			}
			if r < n && vwall(r, c) {
				dst.SetColored(x, y+1, '│', core.ColorWall)
			}
		}
	}
}

const (
	armUp uint8 = 1 << iota
	armDown
	armLeft
	armRight
)

var cornerRunes = [16]rune{
	0:                                    '·',
	armUp:                                '╵',
	armDown:                              '╷',
	armLeft:                              '╴',
	armRight:                             '╶',
	armUp | armDown:                      '│',
	armLeft | armRight:                   '─',
	armDown | armRight:                   '┌',
	armDown | armLeft:                    '┐',
	armUp | armRight:                     '└',
	armUp | armLeft:                      '┘',
	armUp | armDown | armRight:           '├',
	armUp | armDown | armLeft:            '┤',
	armDown | armLeft | armRight:         '┬',
	armUp | armLeft | armRight:           '┴',
	armUp | armDown | armLeft | armRight: '┼',
}

// renderCenter fills the 2x2 center block, interior grid lines included,
// in the target color.
func renderCenter(dst *core.Screen, l layout, target engine.Color) {
	x0, y0 := l.cellOrigin(engine.P(engine.CenterLow, engine.CenterLow))
	x1, y1 := l.cellOrigin(engine.P(engine.CenterHigh, engine.CenterHigh))
	col := RobotColor(target)
	for y := y0; y <= y1; y++ {
		for x := x0; x < x1+cellWidth-1; x++ {
			dst.SetColored(x, y, '░', col)
		}
	}
}
