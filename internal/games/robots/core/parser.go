package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Problem text layout.
const (
	robotLines     = NumColors
	wallLineLen    = BoardSize - 1
	horizontalBase = robotLines
	verticalBase   = horizontalBase + BoardSize
	problemLines   = verticalBase + BoardSize
)

// ErrMalformedProblem is matched by every parse failure.
var ErrMalformedProblem = errors.New("malformed problem")

// MalformedProblemError identifies the offending line and field of a bad
// problem text. Line is 1-based.
type MalformedProblemError struct {
	Problem string
	Line    int
	Field   string
	Reason  string
}

func (e *MalformedProblemError) Error() string {
	return fmt.Sprintf("problem %q: line %d (%s): %s", e.Problem, e.Line, e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedProblem) true.
func (e *MalformedProblemError) Is(target error) bool {
	return target == ErrMalformedProblem
}

// ParseProblem reads the 36-line problem text format:
//
//	lines 1-4    "ri rj Ri Rj" for red, blue, yellow, green
//	lines 5-20   horizontal wall rows i=0..15, 15 chars for j=1..15
//	lines 21-36  vertical walls stored per column j=0..15, 15 chars for i=1..15
//
// A '1' marks a wall. The vertical section is transposed into row-major form.
func ParseProblem(name, text string) (*Problem, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	if len(lines) < problemLines {
		return nil, &MalformedProblemError{
			Problem: name,
			Line:    len(lines) + 1,
			Field:   sectionName(len(lines)),
			Reason:  fmt.Sprintf("expected %d lines, got %d", problemLines, len(lines)),
		}
	}
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	p := &Problem{Name: name}
	for _, c := range Colors {
		robot, chip, err := parseRobotLine(name, int(c), c, lines[c])
		if err != nil {
			return nil, err
		}
		p.Robots[c] = robot
		p.Chips[c] = chip
	}

	for i := 0; i < BoardSize; i++ {
		idx := horizontalBase + i
		row, err := parseWallLine(name, idx, fmt.Sprintf("horizontal row %d", i), lines[idx])
		if err != nil {
			return nil, err
		}
		for j := 1; j < BoardSize; j++ {
			p.Walls.Horizontal[i][j] = row[j-1]
		}
	}

	for j := 0; j < BoardSize; j++ {
		idx := verticalBase + j
		col, err := parseWallLine(name, idx, fmt.Sprintf("vertical column %d", j), lines[idx])
		if err != nil {
			return nil, err
		}
		for i := 1; i < BoardSize; i++ {
			p.Walls.Vertical[i][j] = col[i-1]
		}
	}

	if err := checkPlacement(p); err != nil {
		return nil, err
	}
	return p, nil
}

func parseRobotLine(name string, idx int, c Color, line string) (robot, chip Position, err error) {
	field := c.String() + " robot/chip"
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return robot, chip, &MalformedProblemError{
			Problem: name, Line: idx + 1, Field: field,
			Reason: fmt.Sprintf("expected 4 integers, got %d fields", len(fields)),
		}
	}

	var vals [4]int
	for k, f := range fields {
		v, convErr := strconv.Atoi(f)
		if convErr != nil {
			return robot, chip, &MalformedProblemError{
				Problem: name, Line: idx + 1, Field: field,
				Reason: fmt.Sprintf("value %q is not an integer", f),
			}
		}
		if v < 0 || v >= BoardSize {
			return robot, chip, &MalformedProblemError{
				Problem: name, Line: idx + 1, Field: field,
				Reason: fmt.Sprintf("value %d out of range [0,%d]", v, BoardSize-1),
			}
		}
		vals[k] = v
	}
	return P(vals[0], vals[1]), P(vals[2], vals[3]), nil
}

func parseWallLine(name string, idx int, field, line string) ([wallLineLen]bool, error) {
	var out [wallLineLen]bool
	if len(line) < wallLineLen {
		return out, &MalformedProblemError{
			Problem: name, Line: idx + 1, Field: field,
			Reason: fmt.Sprintf("expected %d characters, got %d", wallLineLen, len(line)),
		}
	}
	for k := 0; k < wallLineLen; k++ {
		out[k] = line[k] == '1'
	}
	return out, nil
}

// checkPlacement enforces that robots start on distinct, enterable cells
// and that chips are not inside the center block.
func checkPlacement(p *Problem) error {
	for _, c := range Colors {
		r := p.Robots[c]
		if IsCenterBlock(r.I, r.J) {
			return &MalformedProblemError{
				Problem: p.Name, Line: int(c) + 1, Field: c.String() + " robot/chip",
				Reason: fmt.Sprintf("robot starts inside the center block at %s", r),
			}
		}
		if IsOccupied(r, p.Robots, c) {
			other, _ := p.Robots.At(r)
			return &MalformedProblemError{
				Problem: p.Name, Line: int(c) + 1, Field: c.String() + " robot/chip",
				Reason: fmt.Sprintf("robot shares %s with %s", r, other),
			}
		}
		if ch := p.Chips[c]; IsCenterBlock(ch.I, ch.J) {
			return &MalformedProblemError{
				Problem: p.Name, Line: int(c) + 1, Field: c.String() + " robot/chip",
				Reason: fmt.Sprintf("chip inside the center block at %s", ch),
			}
		}
	}
	return nil
}

func sectionName(line int) string {
	switch {
	case line < horizontalBase:
		return Color(line).String() + " robot/chip"
	case line < verticalBase:
		return fmt.Sprintf("horizontal row %d", line-horizontalBase)
	default:
		return fmt.Sprintf("vertical column %d", line-verticalBase)
	}
}

// FormatProblem writes p in the text format read by ParseProblem.
func FormatProblem(p *Problem) string {
	var sb strings.Builder
	sb.Grow(problemLines * (wallLineLen + 1))

	for _, c := range Colors {
		r, ch := p.Robots[c], p.Chips[c]
		fmt.Fprintf(&sb, "%d %d %d %d\n", r.I, r.J, ch.I, ch.J)
	}
	for i := 0; i < BoardSize; i++ {
		for j := 1; j < BoardSize; j++ {
			sb.WriteByte(wallChar(p.Walls.Horizontal[i][j]))
		}
		sb.WriteByte('\n')
	}
	for j := 0; j < BoardSize; j++ {
		for i := 1; i < BoardSize; i++ {
			sb.WriteByte(wallChar(p.Walls.Vertical[i][j]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func wallChar(wall bool) byte {
	if wall {
		return '1'
	}
	return '0'
}
