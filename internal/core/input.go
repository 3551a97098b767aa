package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionFlap        // Space, Up, W
	ActionPlay        // P, Enter - start or restart a round
	ActionQuit        // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Frame is everything the host hands a game for one tick.
// A host delivers at most one action per tick; there is no key-repeat queue.
type Frame struct {
	ElapsedMS float64 // Real time since the previous tick, in milliseconds
	Action    Action  // ActionNone when no key was pressed
}

// Game is implemented by anything a host can drive.
type Game interface {
	// Title returns a human-readable name for display.
	Title() string

	// Step advances the game by one host tick and draws it into dst.
	Step(in Frame, dst *Screen) StepResult
}
