package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // UI ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Problem  string // Loaded problem name, empty if none
	Target   string // Target color name
	Moves    int    // Accepted moves on the current attempt
	Solution string // Accepted moves in notation, e.g. "RU BD"
	Cleared  bool   // Whether the current attempt solved the puzzle
	TooSmall bool   // Whether the screen cannot fit the board
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
