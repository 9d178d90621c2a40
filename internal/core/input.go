package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionShoot          // Space - fire a projectile
	ActionConfirm        // Enter - start / continue from a menu screen
	ActionSwap           // Tab - switch between title screens
	ActionRestart        // R - restart after death
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit session
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
	case ActionShoot:
		return "Shoot"
	case ActionConfirm:
		return "Confirm"
	case ActionSwap:
		return "Swap"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for a single simulation tick.
// For each action it answers three questions: is it currently held,
// was it pressed this tick, was it released this tick. The snapshot
// is built once per tick and stays stable for the tick's duration.
type InputFrame struct {
	held     map[Action]bool
	pressed  map[Action]bool
	released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:     make(map[Action]bool),
		pressed:  make(map[Action]bool),
		released: make(map[Action]bool),
	}
}

// SetHeld marks an action as currently held.
func (f *InputFrame) SetHeld(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// SetPressed marks an action as pressed this tick (and therefore held).
func (f *InputFrame) SetPressed(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
	f.SetHeld(a)
}

// SetReleased marks an action as released this tick.
func (f *InputFrame) SetReleased(a Action) {
	if f.released == nil {
		f.released = make(map[Action]bool)
	}
	f.released[a] = true
}

// Held reports whether the action is currently held down.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed reports whether the action was pressed this tick.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Released reports whether the action was released this tick.
func (f InputFrame) Released(a Action) bool {
	return f.released[a]
}

// Clear resets all actions for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.held {
		delete(f.held, k)
	}
	for k := range f.pressed {
		delete(f.pressed, k)
	}
	for k := range f.released {
		delete(f.released, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.held {
		clone.held[k] = v
	}
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	for k, v := range f.released {
		clone.released[k] = v
	}
	return clone
}
