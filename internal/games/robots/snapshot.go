package robots

import engine "github.com/vovakirdan/tui-robots/internal/games/robots/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCleared     GameStateType = "cleared"
	StateNoProblem   GameStateType = "no_problem"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for tests and replay checks.
type Snapshot struct {
	Problem     string
	Index       int
	Robots      engine.RobotSet
	Target      engine.Color
	Selected    engine.Color
	HasSelected bool
	Moves       int
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.Problem() == nil:
		state = StateNoProblem
	case g.state.Cleared():
		state = StateCleared
	}

	sel, ok := g.state.Selected()
	return Snapshot{
		Problem:     g.ProblemName(),
		Index:       g.index,
		Robots:      g.state.Robots(),
		Target:      g.state.Target(),
		Selected:    sel,
		HasSelected: ok,
		Moves:       g.state.MoveCount(),
		State:       state,
	}
}
