package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vbelenko/termblast/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"a moves left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft, false},
		{"left arrow moves left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d moves right", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight, false},
		{"space shoots", tea.KeyMsg{Type: tea.KeySpace}, core.ActionShoot, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"tab swaps", tea.KeyMsg{Type: tea.KeyTab}, core.ActionSwap, false},
		{"r restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart, false},
		{"p pauses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key is none", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.want || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tc.msg.String(), action, quit, tc.want, tc.quit)
			}
		})
	}
}

func TestInputTrackerPressHeldRelease(t *testing.T) {
	tr := NewInputTracker(3)

	tr.Key(core.ActionLeft)
	f := tr.Frame()
	if !f.Pressed(core.ActionLeft) || !f.Held(core.ActionLeft) {
		t.Fatal("first frame after a key event must report pressed and held")
	}

	// No further key events: the hold window keeps the action held...
	f = tr.Frame()
	if f.Pressed(core.ActionLeft) {
		t.Error("second frame reported pressed without a new key event")
	}
	if !f.Held(core.ActionLeft) {
		t.Error("hold window expired too early")
	}
	f = tr.Frame()
	if !f.Held(core.ActionLeft) {
		t.Error("hold window expired too early")
	}

	// ...until it expires, which reports released exactly once.
	f = tr.Frame()
	if f.Held(core.ActionLeft) {
		t.Error("action still held after the window expired")
	}
	if !f.Released(core.ActionLeft) {
		t.Error("expiry did not report released")
	}
	f = tr.Frame()
	if f.Released(core.ActionLeft) {
		t.Error("released reported twice")
	}
}

func TestInputTrackerAutoRepeatRefreshesWithoutRePress(t *testing.T) {
	tr := NewInputTracker(2)

	tr.Key(core.ActionRight)
	tr.Frame()

	// Terminal auto-repeat resends the key while it is already down.
	tr.Key(core.ActionRight)
	f := tr.Frame()
	if f.Pressed(core.ActionRight) {
		t.Error("auto-repeat must not synthesize a second press")
	}
	if !f.Held(core.ActionRight) {
		t.Error("auto-repeat must keep the action held")
	}
}

func TestInputTrackerIgnoresNone(t *testing.T) {
	tr := NewInputTracker(2)
	tr.Key(core.ActionNone)

	f := tr.Frame()
	if f.Pressed(core.ActionNone) || f.Held(core.ActionNone) {
		t.Error("ActionNone must not be tracked")
	}
}

func TestInputTrackerReset(t *testing.T) {
	tr := NewInputTracker(5)
	tr.Key(core.ActionShoot)
	tr.Frame()

	tr.Reset()

	f := tr.Frame()
	if f.Held(core.ActionShoot) || f.Released(core.ActionShoot) {
		t.Error("Reset() left tracked state behind")
	}
}
