// Package input provides the per-tick input frame consumed by the session.
// It contains no external dependencies (especially no Bubble Tea) so the
// session logic stays pure and testable.
package input

// Action represents a semantic control action, abstracted from physical
// key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionRight        // D, Right arrow
	ActionLeft         // A, Left arrow
	ActionDown         // S, Down arrow
	ActionFire         // Space - present in the source vocabulary, not used by the maze
	ActionPause        // P - pause/resume toggle
	ActionReset        // R - manual episode reset
	ActionQuit         // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Frame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this tick.
type Frame struct {
	// Actions maps action types to whether they were triggered this tick.
	// Using a map allows checking multiple held keys without order dependency.
	Actions map[Action]bool
}

// NewFrame creates an empty input frame.
func NewFrame() Frame {
	return Frame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this tick.
func (f *Frame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this tick.
func (f Frame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next tick.
func (f *Frame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f Frame) Clone() Frame {
	clone := NewFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
