package core

import "testing"

func TestHasWallBetweenEdges(t *testing.T) {
	var w Walls

	tests := []struct {
		name     string
		i, j     int
		dir      Direction
		expected bool
	}{
		{"up from top row", 0, 5, Up, true},
		{"down from bottom row", 15, 5, Down, true},
		{"left from first column", 5, 0, Left, true},
		{"right from last column", 5, 15, Right, true},
		{"up from interior", 5, 5, Up, false},
		{"down from interior", 5, 5, Down, false},
		{"left from interior", 5, 5, Left, false},
		{"right from interior", 5, 5, Right, false},
		{"corner up", 0, 0, Up, true},
		{"corner left", 0, 0, Left, true},
		{"corner down is open", 0, 0, Down, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := HasWallBetween(tc.i, tc.j, tc.dir, &w)
			if result != tc.expected {
				t.Errorf("HasWallBetween(%d, %d, %s) = %v, expected %v", tc.i, tc.j, tc.dir, result, tc.expected)
			}
		})
	}
}

func TestHasWallBetweenGrid(t *testing.T) {
	var w Walls
	w.Horizontal[3][4] = true // between (3,3) and (3,4)
	w.Vertical[6][2] = true   // between (5,2) and (6,2)

	tests := []struct {
		name     string
		i, j     int
		dir      Direction
		expected bool
	}{
		{"right into horizontal wall", 3, 3, Right, true},
		{"left into horizontal wall", 3, 4, Left, true},
		{"left from the cell before the wall", 3, 3, Left, false},
		{"right past the wall cell", 3, 4, Right, false},
		{"horizontal wall does not block vertical", 3, 4, Up, false},
		{"down into vertical wall", 5, 2, Down, true},
		{"up into vertical wall", 6, 2, Up, true},
		{"up from above the wall", 5, 2, Up, false},
		{"vertical wall does not block horizontal", 6, 2, Left, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := HasWallBetween(tc.i, tc.j, tc.dir, &w)
			if result != tc.expected {
				t.Errorf("HasWallBetween(%d, %d, %s) = %v, expected %v", tc.i, tc.j, tc.dir, result, tc.expected)
			}
		})
	}
}

func TestIsCenterBlock(t *testing.T) {
	count := 0
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			if IsCenterBlock(i, j) {
				count++
				if i < 7 || i > 8 || j < 7 || j > 8 {
					t.Errorf("IsCenterBlock(%d, %d) = true outside the center", i, j)
				}
			}
		}
	}
	if count != 4 {
		t.Errorf("expected 4 center cells, got %d", count)
	}
}

func TestIsOccupied(t *testing.T) {
	robots := RobotSet{P(1, 1), P(2, 2), P(3, 3), P(4, 4)}

	if !IsOccupied(P(2, 2), robots, Red) {
		t.Error("(2,2) holds blue and should be occupied for red")
	}
	if IsOccupied(P(2, 2), robots, Blue) {
		t.Error("blue should not block itself")
	}
	if IsOccupied(P(5, 5), robots, Red) {
		t.Error("(5,5) is empty")
	}
}
