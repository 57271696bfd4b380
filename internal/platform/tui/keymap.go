package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-robots/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

var gameKeys = map[string]core.Action{
	"ctrl+c":    core.ActionQuit,
	"q":         core.ActionQuit,
	"w":         core.ActionUp,
	"up":        core.ActionUp,
	"s":         core.ActionDown,
	"down":      core.ActionDown,
	"a":         core.ActionLeft,
	"left":      core.ActionLeft,
	"d":         core.ActionRight,
	"right":     core.ActionRight,
	"1":         core.ActionSelectRed,
	"2":         core.ActionSelectBlue,
	"3":         core.ActionSelectYellow,
	"4":         core.ActionSelectGreen,
	"tab":       core.ActionCycleRobot,
	"esc":       core.ActionDeselect,
	"u":         core.ActionUndo,
	"backspace": core.ActionUndo,
	"r":         core.ActionReset,
	"]":         core.ActionNextProblem,
	"n":         core.ActionNextProblem,
	"[":         core.ActionPrevProblem,
	"p":         core.ActionPrevProblem,
	"t":         core.ActionCycleTarget,
	"enter":     core.ActionConfirm,
	"b":         core.ActionBack,
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := gameKeys[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press. Other mouse events are ignored.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	frame.AddClick(msg.X, msg.Y)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScores
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScores
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
