package core

// State is the mutable session over one Problem: robot positions, undo
// history, move counter, selection, target color and the cleared flag.
//
// Transitions never fail; unmet preconditions make them no-ops. A State is
// owned by a single session and is not safe for concurrent use.
type State struct {
	problem *Problem
	robots  RobotSet
	history []RobotSet
	moves   int

	selected    Color
	hasSelected bool

	target  Color
	cleared bool
}

// NewState creates a session for p with the target color set to red.
// A nil problem yields a State on which every move is a no-op.
func NewState(p *Problem) *State {
	s := &State{}
	s.Load(p)
	return s
}

// Load replaces the problem and reinitializes the whole session.
func (s *State) Load(p *Problem) {
	*s = State{problem: p, target: Red}
	if p != nil {
		s.robots = p.Robots
	}
}

// Problem returns the loaded problem, or nil.
func (s *State) Problem() *Problem { return s.problem }

// Robots returns the current robot positions.
func (s *State) Robots() RobotSet { return s.robots }

// MoveCount returns the number of accepted moves not undone.
func (s *State) MoveCount() int { return s.moves }

// Cleared reports whether the last accepted move solved the puzzle.
func (s *State) Cleared() bool { return s.cleared }

// Target returns the color whose robot must reach its chip.
func (s *State) Target() Color { return s.target }

// CanUndo reports whether there is history to pop.
func (s *State) CanUndo() bool { return len(s.history) > 0 }

// Selected returns the selected robot color, if any.
func (s *State) Selected() (Color, bool) {
	return s.selected, s.hasSelected
}

// Chip returns the target cell of color c.
func (s *State) Chip(c Color) Position {
	if s.problem == nil {
		return Position{}
	}
	return s.problem.Chips[c]
}

// Select toggles selection of robot c. Selecting the selected robot clears
// the selection. It does nothing once the puzzle is cleared.
func (s *State) Select(c Color) {
	if s.cleared || !c.Valid() {
		return
	}
	if s.hasSelected && s.selected == c {
		s.Deselect()
		return
	}
	s.selected = c
	s.hasSelected = true
}

// Deselect clears the selection.
func (s *State) Deselect() {
	s.selected = Red
	s.hasSelected = false
}

// SetTarget changes the target color. The cleared flag is left alone and
// only re-evaluated on the next accepted move.
func (s *State) SetTarget(c Color) {
	if c.Valid() {
		s.target = c
	}
}

// Move slides the selected robot in direction d. It returns false when the
// move was not accepted: no selection, no problem, already cleared, or the
// robot would not leave its cell.
func (s *State) Move(d Direction) bool {
	if !s.hasSelected || s.problem == nil || s.cleared {
		return false
	}
	next := MoveRobot(s.selected, d, s.robots, &s.problem.Walls)
	if next[s.selected] == s.robots[s.selected] {
		return false
	}
	s.history = append(s.history, s.robots)
	s.robots = next
	s.moves++
	s.cleared = CheckCleared(s.target, s.robots, s.problem.Chips)
	return true
}

// MoveToward moves the selected robot in whichever direction ends on (i, j).
// Directions are tried in Up, Down, Left, Right order.
func (s *State) MoveToward(i, j int) bool {
	if !s.hasSelected || s.problem == nil || s.cleared {
		return false
	}
	want := P(i, j)
	for _, d := range Directions {
		if ComputeDestination(s.selected, d, s.robots, &s.problem.Walls) == want {
			return s.Move(d)
		}
	}
	return false
}

// Undo restores the previous robot positions. It always clears the cleared
// flag and keeps the selection.
func (s *State) Undo() bool {
	n := len(s.history)
	if n == 0 {
		return false
	}
	s.robots = s.history[n-1]
	s.history = s.history[:n-1]
	s.moves--
	s.cleared = false
	return true
}

// Reset restores the initial positions and drops history. Selection and
// target color are kept.
func (s *State) Reset() {
	if s.problem == nil {
		return
	}
	s.robots = s.problem.Robots
	s.history = nil
	s.moves = 0
	s.cleared = false
}

// Destinations returns the cells the selected robot can reach in one slide.
// It is empty when nothing is selected or the puzzle is cleared.
func (s *State) Destinations() []Destination {
	if !s.hasSelected || s.problem == nil || s.cleared {
		return nil
	}
	return Destinations(s.selected, s.robots, &s.problem.Walls)
}

// History returns the accepted moves, oldest first, recovered from the
// undo snapshots.
func (s *State) History() []Move {
	out := make([]Move, 0, len(s.history))
	for k, prev := range s.history {
		next := s.robots
		if k+1 < len(s.history) {
			next = s.history[k+1]
		}
		if m, ok := moveBetween(prev, next); ok {
			out = append(out, m)
		}
	}
	return out
}

// moveBetween finds the single robot that differs between two snapshots and
// the direction it travelled.
func moveBetween(prev, next RobotSet) (Move, bool) {
	for _, c := range Colors {
		a, b := prev[c], next[c]
		if a == b {
			continue
		}
		var d Direction
		switch {
		case b.I < a.I:
			d = Up
		case b.I > a.I:
			d = Down
		case b.J < a.J:
			d = Left
		default:
			d = Right
		}
		return Move{Color: c, Direction: d}, true
	}
	return Move{}, false
}
