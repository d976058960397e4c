package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/input"
)

// KeyMapper translates Bubble Tea key messages to input actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an input action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action input.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q", "esc":
		return input.ActionQuit, true
	}

	// Arrow keys and WASD move; P pauses; R resets the episode
	switch key {
	case "up", "w":
		return input.ActionUp, false
	case "right", "d":
		return input.ActionRight, false
	case "left", "a":
		return input.ActionLeft, false
	case "down", "s":
		return input.ActionDown, false
	case " ":
		return input.ActionFire, false
	case "p":
		return input.ActionPause, false
	case "r":
		return input.ActionReset, false
	}

	return input.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *input.Frame) bool {
	action, isQuit := km.MapKey(msg)
	if action != input.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
