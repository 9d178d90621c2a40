package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vbelenko/termblast/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionShoot, false
	case "enter":
		return core.ActionConfirm, false
	case "tab":
		return core.ActionSwap, false
	case "r":
		return core.ActionRestart, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// defaultHoldTicks is how many simulation ticks a key stays held after
// its last terminal event. Terminals send no release events and pause
// before auto-repeat kicks in, so the window has to outlast the repeat
// delay or held movement stutters.
const defaultHoldTicks = 12

// InputTracker synthesizes held/pressed/released edges from terminal
// key events. Each reported key refreshes its action's hold window;
// an action whose window expires is reported released once.
type InputTracker struct {
	holdTicks int
	seen      map[core.Action]bool
	down      map[core.Action]int
}

// NewInputTracker creates a tracker with the given hold window in ticks.
func NewInputTracker(holdTicks int) *InputTracker {
	if holdTicks <= 0 {
		holdTicks = defaultHoldTicks
	}
	return &InputTracker{
		holdTicks: holdTicks,
		seen:      make(map[core.Action]bool),
		down:      make(map[core.Action]int),
	}
}

// Key records a terminal key event for the next frame.
func (t *InputTracker) Key(a core.Action) {
	if a == core.ActionNone {
		return
	}
	t.seen[a] = true
}

// Frame builds the input snapshot for one simulation tick and advances
// the hold windows.
func (t *InputTracker) Frame() core.InputFrame {
	f := core.NewInputFrame()

	for a := range t.seen {
		if _, alreadyDown := t.down[a]; !alreadyDown {
			f.SetPressed(a)
		}
		t.down[a] = t.holdTicks
	}

	for a, left := range t.down {
		if !t.seen[a] {
			left--
			if left <= 0 {
				delete(t.down, a)
				f.SetReleased(a)
				continue
			}
			t.down[a] = left
		}
		f.SetHeld(a)
	}

	for a := range t.seen {
		delete(t.seen, a)
	}
	return f
}

// Reset drops all tracked state, e.g. when the session is paused.
func (t *InputTracker) Reset() {
	for a := range t.seen {
		delete(t.seen, a)
	}
	for a := range t.down {
		delete(t.down, a)
	}
}
