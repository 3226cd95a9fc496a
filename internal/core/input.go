package core

// Action represents a semantic input action, abstracted from physical key presses.
// Screens and input sources work with these intents rather than raw keys.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, W - thrust / menu up
	ActionDown             // Down arrow, S - brake / menu down
	ActionLeft             // Left arrow - turn counter-clockwise
	ActionRight            // Right arrow - turn clockwise
	ActionConfirm          // Enter, Space - confirm selection in menu
	ActionBack             // B - go back
	ActionPause            // P, Escape - pause game
	ActionQuit             // Q, Ctrl+C - exit program
	ActionStickLeft        // A - virtual pad stick pushed left
	ActionStickRight       // D - virtual pad stick pushed right
	ActionAccel            // ] - virtual pad right trigger
	ActionBrake            // [ - virtual pad left trigger
	ActionPadToggle        // G - plug or unplug the virtual pad
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionStickLeft:
		return "StickLeft"
	case ActionStickRight:
		return "StickRight"
	case ActionAccel:
		return "Accel"
	case ActionBrake:
		return "Brake"
	case ActionPadToggle:
		return "PadToggle"
	default:
		return "Unknown"
	}
}

// InputFrame represents the actions held or pressed during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
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
