// Package game implements the simulation core: sprite-backed entities,
// projectiles, enemy AI, health, and the state machine that sequences
// title screens, levels, and death screens. All logic is pure and
// deterministic for a given seed; the platform layer owns input capture
// and drawing.
package game

import (
	"github.com/vbelenko/termblast/internal/core"
	"github.com/vbelenko/termblast/internal/sprite"
)

// Body is the generic motion state shared by the player and the enemy:
// a positioned box with a velocity and a bound sprite slot.
type Body struct {
	Pos   core.Vec2
	Size  core.Vec2
	Speed float64
	Vel   core.Vec2
	Slot  int
}

// Rect returns the body's bounding box.
func (b *Body) Rect() core.Rect {
	return core.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// Integrate advances the position by the current velocity.
func (b *Body) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// attr builds the drawable record for the body with the given atlas region.
func (b *Body) attr(atlas core.Rect) sprite.Attr {
	return sprite.Attr{
		Screen: b.Rect(),
		Atlas:  atlas,
	}
}
