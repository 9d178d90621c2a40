package core

import "testing"

func TestInputFramePredicates(t *testing.T) {
	f := NewInputFrame()

	f.SetPressed(ActionShoot)
	f.SetHeld(ActionLeft)
	f.SetReleased(ActionRight)

	if !f.Pressed(ActionShoot) {
		t.Error("Pressed(Shoot) = false after SetPressed")
	}
	if !f.Held(ActionShoot) {
		t.Error("SetPressed should imply held for that tick")
	}
	if !f.Held(ActionLeft) {
		t.Error("Held(Left) = false after SetHeld")
	}
	if f.Pressed(ActionLeft) {
		t.Error("SetHeld should not imply pressed")
	}
	if !f.Released(ActionRight) {
		t.Error("Released(Right) = false after SetReleased")
	}
	if f.Held(ActionRight) {
		t.Error("SetReleased should not imply held")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.SetPressed(ActionConfirm)
	f.SetReleased(ActionLeft)

	f.Clear()

	if f.Pressed(ActionConfirm) || f.Held(ActionConfirm) || f.Released(ActionLeft) {
		t.Error("Clear() left stale actions")
	}
}

func TestInputFrameZeroValueIsSafe(t *testing.T) {
	var f InputFrame
	if f.Held(ActionLeft) || f.Pressed(ActionLeft) || f.Released(ActionLeft) {
		t.Error("zero-value frame reported actions")
	}
	f.SetPressed(ActionLeft)
	if !f.Pressed(ActionLeft) {
		t.Error("SetPressed on zero-value frame did not register")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.SetPressed(ActionShoot)

	clone := f.Clone()
	f.Clear()

	if !clone.Pressed(ActionShoot) {
		t.Error("Clone() shares storage with the original")
	}
}
