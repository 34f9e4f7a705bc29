package core

// Action represents a semantic game action, abstracted from physical key
// presses. Held directions are tracked separately in Held; actions here are
// edge-triggered and last for a single frame.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Esc - quit the session, return to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit the program
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
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

// Held carries the two held-direction signals for the ship. Both flags may be
// true at once; the game resolves that to no movement, matching the original
// keyboard handling where opposing keys cancel.
type Held struct {
	Left  bool
	Right bool
}

// InputFrame is the full input state for one simulation tick: the current
// held directions plus any edge-triggered actions fired this frame.
type InputFrame struct {
	Held    Held
	actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	f.actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.actions[a]
}

// ClearActions drops the edge-triggered actions while preserving held
// direction state for the next frame.
func (f *InputFrame) ClearActions() {
	for k := range f.actions {
		delete(f.actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Held = f.Held
	for k, v := range f.actions {
		clone.actions[k] = v
	}
	return clone
}
