package core

// Action is a semantic command derived from a key press. The platform maps
// keys to actions; the game never sees raw keys.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // shift piece left
	ActionRight             // shift piece right
	ActionSoftDrop          // move piece down one row
	ActionRotate            // rotate piece clockwise
	ActionStart             // Enter - start when idle or after game over
	ActionRestart           // R - restart after game over
	ActionQuit              // Q, Ctrl+C - leave the game
	ActionScreenshot        // Ctrl+S - dump the screen to a file
	ActionHelp              // ? - toggle the full help view
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action manipulates the falling piece.
func (a Action) IsMovement() bool {
	switch a {
	case ActionLeft, ActionRight, ActionSoftDrop, ActionRotate:
		return true
	}
	return false
}
