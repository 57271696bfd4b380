package core

// Center block bounds. The four cells with both coordinates in
// [CenterLow, CenterHigh] can never be entered.
const (
	CenterLow  = 7
	CenterHigh = 8
)

// HasWallBetween reports whether a robot at (i, j) is blocked from taking one
// step in direction d. The outer boundary is always a wall.
func HasWallBetween(i, j int, d Direction, w *Walls) bool {
	switch d {
	case Up:
		if i == 0 {
			return true
		}
		return w.Vertical[i][j]
	case Down:
		if i == BoardSize-1 {
			return true
		}
		return w.Vertical[i+1][j]
	case Left:
		if j == 0 {
			return true
		}
		return w.Horizontal[i][j]
	case Right:
		if j == BoardSize-1 {
			return true
		}
		return w.Horizontal[i][j+1]
	}
	return true
}

// IsCenterBlock reports whether (i, j) is one of the four center cells.
func IsCenterBlock(i, j int) bool {
	return (i == CenterLow || i == CenterHigh) && (j == CenterLow || j == CenterHigh)
}

// IsOccupied reports whether a robot other than exclude sits at p.
func IsOccupied(p Position, robots RobotSet, exclude Color) bool {
	for _, c := range Colors {
		if c == exclude {
			continue
		}
		if robots[c] == p {
			return true
		}
	}
	return false
}
