package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game and menus to work with intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, H, A - move one lane left
	ActionRight          // Right arrow, L, D - move one lane right
	ActionUp             // Up arrow, K, W - menu navigation
	ActionDown           // Down arrow, J, S - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}
