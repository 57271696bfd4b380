package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, W - slide up / menu up
	ActionDown               // Down arrow, S - slide down / menu down
	ActionLeft               // Left arrow, A - slide left
	ActionRight              // Right arrow, D - slide right
	ActionSelectRed          // 1
	ActionSelectBlue         // 2
	ActionSelectYellow       // 3
	ActionSelectGreen        // 4
	ActionCycleRobot         // Tab
	ActionDeselect           // Esc
	ActionUndo               // U, Backspace
	ActionReset              // R
	ActionNextProblem        // ], N
	ActionPrevProblem        // [, P
	ActionCycleTarget        // T
	ActionConfirm            // Enter
	ActionBack               // B - back to menu
	ActionQuit               // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionSelectRed:    "SelectRed",
	ActionSelectBlue:   "SelectBlue",
	ActionSelectYellow: "SelectYellow",
	ActionSelectGreen:  "SelectGreen",
	ActionCycleRobot:   "CycleRobot",
	ActionDeselect:     "Deselect",
	ActionUndo:         "Undo",
	ActionReset:        "Reset",
	ActionNextProblem:  "NextProblem",
	ActionPrevProblem:  "PrevProblem",
	ActionCycleTarget:  "CycleTarget",
	ActionConfirm:      "Confirm",
	ActionBack:         "Back",
	ActionQuit:         "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Click is a pointer press in screen coordinates.
type Click struct {
	X, Y int
}

// InputFrame collects the input received between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks holds pointer presses in arrival order.
	Clicks []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddClick records a pointer press.
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
