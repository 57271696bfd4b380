package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBlockedMove is returned by Replay when a step does not move its robot.
var ErrBlockedMove = errors.New("move does not displace the robot")

// maxNotationMoves bounds ParseMoves input.
const maxNotationMoves = 64

// ParseMoves reads two-letter move tokens such as "RU" or "bd"
// separated by spaces, commas or dashes.
func ParseMoves(in string) ([]Move, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(in), func(r rune) bool {
		return r == ' ' || r == ',' || r == '-' || r == '\t' || r == '\n'
	})
	if len(parts) > maxNotationMoves {
		return nil, fmt.Errorf("too many moves: %d (max %d)", len(parts), maxNotationMoves)
	}

	moves := make([]Move, 0, len(parts))
	for k, part := range parts {
		m, err := parseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d %q: %w", k+1, part, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func parseMove(tok string) (Move, error) {
	if len(tok) != 2 {
		return Move{}, errors.New("expected two letters, color then direction")
	}
	c, ok := ParseColor(tok[:1])
	if !ok {
		return Move{}, fmt.Errorf("unknown robot %q", tok[:1])
	}
	d, ok := ParseDirection(tok[1:])
	if !ok {
		return Move{}, fmt.Errorf("unknown direction %q", tok[1:])
	}
	return Move{Color: c, Direction: d}, nil
}

// FormatMoves joins moves with single spaces.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for k, m := range moves {
		parts[k] = m.String()
	}
	return strings.Join(parts, " ")
}

// Replay plays moves on a fresh session of p with the given target color.
// Every step must displace its robot; moves after the puzzle is cleared are
// rejected as blocked.
func Replay(p *Problem, target Color, moves []Move) (*State, error) {
	s := NewState(p)
	s.SetTarget(target)
	for k, m := range moves {
		if sel, ok := s.Selected(); !ok || sel != m.Color {
			s.Select(m.Color)
		}
		if !s.Move(m.Direction) {
			return s, fmt.Errorf("step %d (%s): %w", k+1, m, ErrBlockedMove)
		}
	}
	return s, nil
}
