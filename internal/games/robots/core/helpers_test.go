package core

import (
	"fmt"
	"strings"
)

// boardSpec describes a test problem: four "ri rj Ri Rj" quads in color
// order plus the wall cells to set.
type boardSpec struct {
	quads      [NumColors][4]int
	horizontal []Position
	vertical   []Position
}

// text renders the spec in the problem file format.
func (b boardSpec) text() string {
	var h, v [BoardSize][BoardSize]bool
	for _, p := range b.horizontal {
		h[p.I][p.J] = true
	}
	for _, p := range b.vertical {
		v[p.I][p.J] = true
	}

	var sb strings.Builder
	for _, q := range b.quads {
		fmt.Fprintf(&sb, "%d %d %d %d\n", q[0], q[1], q[2], q[3])
	}
	for i := 0; i < BoardSize; i++ {
		for j := 1; j < BoardSize; j++ {
			sb.WriteByte(wallChar(h[i][j]))
		}
		sb.WriteByte('\n')
	}
	for j := 0; j < BoardSize; j++ {
		for i := 1; i < BoardSize; i++ {
			sb.WriteByte(wallChar(v[i][j]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// problem builds a Problem directly, bypassing the parser.
func (b boardSpec) problem() *Problem {
	p := &Problem{Name: "test"}
	for _, c := range Colors {
		q := b.quads[c]
		p.Robots[c] = P(q[0], q[1])
		p.Chips[c] = P(q[2], q[3])
	}
	for _, w := range b.horizontal {
		p.Walls.Horizontal[w.I][w.J] = true
	}
	for _, w := range b.vertical {
		p.Walls.Vertical[w.I][w.J] = true
	}
	return p
}

// cornerBoard parks blue, yellow and green in corners away from column 0
// and row 0 traffic, with red at (ri, rj) and its chip at (ci, cj).
func cornerBoard(ri, rj, ci, cj int) boardSpec {
	return boardSpec{quads: [NumColors][4]int{
		{ri, rj, ci, cj},
		{0, 15, 1, 1},
		{15, 15, 2, 2},
		{15, 14, 3, 3},
	}}
}
