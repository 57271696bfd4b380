package core

// Game is what the terminal front end drives. Implementations hold pure
// logic with no Bubble Tea dependency; the platform handles input mapping,
// timing and rendering.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset restarts the game for the given screen configuration.
	Reset(cfg RuntimeConfig)

	// Resize adapts the layout to new screen dimensions, keeping progress.
	Resize(w, h int)

	// Step applies one frame of input and reports the resulting state.
	Step(in InputFrame) StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
