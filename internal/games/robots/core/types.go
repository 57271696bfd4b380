// Package core contains the pure sliding-robot puzzle engine: the wall model,
// the slide algorithm, the clear check, the problem text format and the
// session state machine. It has no dependency on the platform or on Bubble Tea.
package core

import (
	"fmt"
	"strings"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 16

// Position is a board cell. I is the row, J the column.
type Position struct {
	I, J int
}

// P is a shorthand constructor for Position.
func P(i, j int) Position {
	return Position{I: i, J: j}
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return p.I >= 0 && p.I < BoardSize && p.J >= 0 && p.J < BoardSize
}

// Add returns the position shifted by one step in direction d.
func (p Position) Add(d Direction) Position {
	di, dj := d.Delta()
	return Position{I: p.I + di, J: p.J + dj}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.I, p.J)
}

// Color identifies one of the four robots and its chip.
type Color int

const (
	Red Color = iota
	Blue
	Yellow
	Green
)

// NumColors is the number of robot colors.
const NumColors = 4

// Colors lists every color in scan order.
var Colors = [NumColors]Color{Red, Blue, Yellow, Green}

var colorNames = [NumColors]string{"red", "blue", "yellow", "green"}

// String returns the lowercase color name.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Letter returns the single uppercase letter used in move notation.
func (c Color) Letter() byte {
	return strings.ToUpper(c.String())[0]
}

// Valid reports whether c is one of the four colors.
func (c Color) Valid() bool {
	return c >= Red && c <= Green
}

// Next returns the following color, wrapping after green.
func (c Color) Next() Color {
	return (c + 1) % NumColors
}

// ParseColor accepts a full color name or its initial, case-insensitively.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Colors {
		name := colorNames[c]
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return c, true
		}
	}
	return Red, false
}

// Direction is one of the four cardinal slide directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in evaluation order.
var Directions = [4]Direction{Up, Down, Left, Right}

var directionNames = [4]string{"up", "down", "left", "right"}

// Delta returns the unit row/column step for the direction.
func (d Direction) Delta() (di, dj int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Letter returns the single uppercase letter used in move notation.
func (d Direction) Letter() byte {
	return strings.ToUpper(d.String())[0]
}

// ParseDirection accepts a full direction name or its initial.
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		name := directionNames[d]
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return d, true
		}
	}
	return Up, false
}

// RobotSet maps each color to its robot's position.
type RobotSet [NumColors]Position

// At returns the robot at p and whether there is one.
func (r RobotSet) At(p Position) (Color, bool) {
	for _, c := range Colors {
		if r[c] == p {
			return c, true
		}
	}
	return Red, false
}

// ChipSet maps each color to its target cell.
type ChipSet [NumColors]Position

// At returns the chip at p and whether there is one.
func (s ChipSet) At(p Position) (Color, bool) {
	for _, c := range Colors {
		if s[c] == p {
			return c, true
		}
	}
	return Red, false
}

// Walls holds the two wall grids.
//
// Horizontal[i][j] is a wall between (i, j-1) and (i, j); it blocks
// left/right movement and column 0 is unused. Vertical[i][j] is a wall
// between (i-1, j) and (i, j); it blocks up/down movement and row 0 is unused.
type Walls struct {
	Horizontal [BoardSize][BoardSize]bool
	Vertical   [BoardSize][BoardSize]bool
}

// Problem is a parsed puzzle. It is never mutated after parsing.
type Problem struct {
	Name   string
	Robots RobotSet
	Chips  ChipSet
	Walls  Walls
}

// Move is one accepted slide.
type Move struct {
	Color     Color
	Direction Direction
}

// String renders the move in two-letter notation, e.g. "RU".
func (m Move) String() string {
	return string([]byte{m.Color.Letter(), m.Direction.Letter()})
}
