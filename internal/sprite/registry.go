// Package sprite provides the fixed-capacity sprite slot registry.
// Every drawable thing in the game (player, enemy, projectiles, health
// bars, screen backdrops) owns one or more slots; the presentation layer
// reads the full slot array once per frame for drawing.
package sprite

import (
	"errors"

	"github.com/vbelenko/termblast/internal/core"
)

// Capacity is the fixed number of slots in the registry.
const Capacity = 1000

// ErrExhausted is returned by Allocate when no free slot remains.
var ErrExhausted = errors.New("sprite: slot registry exhausted")

// Attr is the drawable attribute record held by a slot.
// Screen is a rectangle in playfield pixels; Atlas is a normalized
// region of the sprite sheet in [0,1] fractions.
type Attr struct {
	Screen core.Rect
	Atlas  core.Rect
}

// IsZero reports whether the record is fully zeroed (renders nothing).
func (a Attr) IsZero() bool {
	return a.Screen.IsZero() && a.Atlas.IsZero()
}

// Registry is an ordered, fixed-length pool of (attribute, active) pairs.
// A slot index returned by Allocate is marked active and is never reused
// until explicitly released. Release zeroes the record so a stale slot
// renders nothing.
type Registry struct {
	attrs  []Attr
	active []bool
}

// NewRegistry creates a registry with the default capacity.
func NewRegistry() *Registry {
	return NewRegistryWithCapacity(Capacity)
}

// NewRegistryWithCapacity creates a registry with a specific capacity.
// Small capacities are handy in tests.
func NewRegistryWithCapacity(n int) *Registry {
	return &Registry{
		attrs:  make([]Attr, n),
		active: make([]bool, n),
	}
}

// Len returns the registry capacity.
func (r *Registry) Len() int {
	return len(r.attrs)
}

// Allocate returns the first inactive slot in index order and marks it
// active. Returns ErrExhausted when every slot is in use; the caller must
// treat that as a hard capacity error, never as slot 0.
func (r *Registry) Allocate() (int, error) {
	for i := range r.active {
		if !r.active[i] {
			r.active[i] = true
			return i, nil
		}
	}
	return 0, ErrExhausted
}

// Release deactivates a slot and zeroes its record so it stops
// contributing to the draw set. Releasing an out-of-range or already
// inactive slot is a no-op.
func (r *Registry) Release(i int) {
	if i < 0 || i >= len(r.active) {
		return
	}
	r.active[i] = false
	r.attrs[i] = Attr{}
}

// Write updates a slot's record without changing its activation.
// Writes to out-of-range slots are silently ignored.
func (r *Registry) Write(i int, a Attr) {
	if i < 0 || i >= len(r.attrs) {
		return
	}
	r.attrs[i] = a
}

// At returns the record at slot i.
func (r *Registry) At(i int) Attr {
	if i < 0 || i >= len(r.attrs) {
		return Attr{}
	}
	return r.attrs[i]
}

// Active reports whether slot i is currently allocated.
func (r *Registry) Active(i int) bool {
	if i < 0 || i >= len(r.active) {
		return false
	}
	return r.active[i]
}

// ActiveCount returns the number of allocated slots.
func (r *Registry) ActiveCount() int {
	n := 0
	for _, a := range r.active {
		if a {
			n++
		}
	}
	return n
}

// Attrs returns the full slot array for the presentation layer.
// The returned slice is the registry's backing storage; callers must only
// read it, and only after the frame's simulation step has completed.
func (r *Registry) Attrs() []Attr {
	return r.attrs
}
