package sim

// Action represents a semantic game intent, abstracted from physical key
// presses. The platform maps raw input to Actions; the engine consumes them
// without knowing the input source.
type Action int

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionPause
	ActionReset
	ActionToggleAI
	ActionCycleDifficulty
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionToggleAI:
		return "ToggleAI"
	case ActionCycleDifficulty:
		return "CycleDifficulty"
	default:
		return "Unknown"
	}
}
