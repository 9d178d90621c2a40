package game

import (
	"github.com/vbelenko/termblast/internal/core"
	"github.com/vbelenko/termblast/internal/sprite"
)

// Origin marks who spawned a projectile, which selects its collision
// target: enemy shots test against the player, player shots against the
// enemy.
type Origin int

const (
	OriginEnemy Origin = iota
	OriginPlayer
)

// String returns a human-readable name for the origin.
func (o Origin) String() string {
	if o == OriginPlayer {
		return "player"
	}
	return "enemy"
}

// Projectile is a moving shot owned by the projectile collection.
// Dead projectiles are removed in a single sweep at the end of the
// collision phase; one never survives into the next frame's update pass.
type Projectile struct {
	Pos    core.Vec2
	Size   core.Vec2
	Vel    core.Vec2
	Slot   int
	Origin Origin
	Dead   bool
}

// Rect returns the projectile's bounding box.
func (p *Projectile) Rect() core.Rect {
	return core.Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Size.X, H: p.Size.Y}
}

// Integrate advances the position by the velocity.
func (p *Projectile) Integrate() {
	p.Pos = p.Pos.Add(p.Vel)
}

// Kill marks the projectile for removal in the sweep pass.
func (p *Projectile) Kill() {
	p.Dead = true
}

// Attr builds the drawable record for the projectile. The record is
// written to the slot every frame, dead or not; the sweep pass clears
// the slot of a dead projectile before the next draw.
func (p *Projectile) Attr() sprite.Attr {
	atlas := cellEnemyShot
	if p.Origin == OriginPlayer {
		atlas = cellPlayerShot
	}
	return sprite.Attr{
		Screen: p.Rect(),
		Atlas:  atlas,
	}
}
