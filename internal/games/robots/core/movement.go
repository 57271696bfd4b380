package core

// ComputeDestination slides robot c in direction d one cell at a time and
// returns the last free cell reached. It stops before a wall, the board
// edge, the center block or another robot, and may return the start cell.
func ComputeDestination(c Color, d Direction, robots RobotSet, w *Walls) Position {
	cur := robots[c]
	for {
		if HasWallBetween(cur.I, cur.J, d, w) {
			break
		}
		next := cur.Add(d)
		if IsCenterBlock(next.I, next.J) {
			break
		}
		if IsOccupied(next, robots, c) {
			break
		}
		cur = next
	}
	return cur
}

// MoveRobot returns a copy of robots with c moved to its destination in d.
func MoveRobot(c Color, d Direction, robots RobotSet, w *Walls) RobotSet {
	robots[c] = ComputeDestination(c, d, robots, w)
	return robots
}

// CheckCleared reports whether the target robot stands on its own chip.
func CheckCleared(target Color, robots RobotSet, chips ChipSet) bool {
	return robots[target] == chips[target]
}

// Destination is a cell reachable by one slide.
type Destination struct {
	Direction Direction
	Position  Position
}

// Destinations returns the distinct cells robot c can reach in one slide,
// in direction order. Directions that do not move the robot are skipped.
func Destinations(c Color, robots RobotSet, w *Walls) []Destination {
	start := robots[c]
	out := make([]Destination, 0, len(Directions))
	for _, d := range Directions {
		p := ComputeDestination(c, d, robots, w)
		if p == start {
			continue
		}
		out = append(out, Destination{Direction: d, Position: p})
	}
	return out
}
