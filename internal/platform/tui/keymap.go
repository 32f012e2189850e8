package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/sim"
)

// KeyMapper translates Bubble Tea key messages to simulation actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a simulation action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action sim.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return sim.ActionNone, true
	}

	switch key {
	case "w":
		return sim.ActionLeftUp, false
	case "s":
		return sim.ActionLeftDown, false
	case "up":
		return sim.ActionRightUp, false
	case "down":
		return sim.ActionRightDown, false
	case "p", " ", "esc":
		return sim.ActionPause, false
	case "r":
		return sim.ActionReset, false
	case "a":
		return sim.ActionToggleAI, false
	case "d", "tab":
		return sim.ActionCycleDifficulty, false
	}

	return sim.ActionNone, false
}

// MapKeyForMode translates a key with the control mode applied. While the
// CPU owns the right paddle, the arrow keys steer the human's left paddle
// instead of fighting the CPU for the right one.
func (km *KeyMapper) MapKeyForMode(msg tea.KeyMsg, aiEnabled bool) (sim.Action, bool) {
	action, isQuit := km.MapKey(msg)
	if aiEnabled {
		switch action {
		case sim.ActionRightUp:
			action = sim.ActionLeftUp
		case sim.ActionRightDown:
			action = sim.ActionLeftDown
		}
	}
	return action, isQuit
}
