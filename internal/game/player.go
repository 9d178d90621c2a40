package game

import (
	"github.com/vbelenko/termblast/internal/core"
	"github.com/vbelenko/termblast/internal/sprite"
)

// Player is the avatar at the bottom of the playfield. On normal levels
// it banks charges from absorbed enemy shots and spends them to fire;
// on the boss level firing runs on a tick cooldown instead.
type Player struct {
	Body
	FacingRight bool
	Charge      int
	Health      *HealthBar

	shotCooldown int
}

// Update applies held movement input, clamps to the playfield, and
// writes the player's sprite record.
func (p *Player) Update(in core.InputFrame, fieldW float64, reg *sprite.Registry) {
	p.Vel.X = 0
	if in.Held(core.ActionRight) {
		p.Vel.X += p.Speed
	}
	if in.Held(core.ActionLeft) {
		p.Vel.X -= p.Speed
	}

	if p.Vel.X > 0 {
		p.FacingRight = true
	}
	if p.Vel.X < 0 {
		p.FacingRight = false
	}

	p.Integrate()
	p.Pos.X = core.ClampF(p.Pos.X, 0, fieldW-p.Size.X)

	if p.shotCooldown > 0 {
		p.shotCooldown--
	}

	atlas := cellPlayerRight
	if !p.FacingRight {
		atlas = cellPlayerLeft
	}
	reg.Write(p.Slot, p.attr(atlas))
}

// TryShoot reports whether the player may fire this frame and pays the
// cost if so. Normal levels require chargeCost banked charges, which a
// successful shot resets to exactly zero; attempting with fewer has no
// effect and consumes nothing. The boss level ignores charges and uses
// a tick cooldown.
func (p *Player) TryShoot(bossMode bool, chargeCost, cooldown int) bool {
	if bossMode {
		if p.shotCooldown > 0 {
			return false
		}
		p.shotCooldown = cooldown
		return true
	}

	if p.Charge < chargeCost {
		return false
	}
	p.Charge = 0
	return true
}

// Muzzle returns the spawn point of a player shot: centered above the
// player's head.
func (p *Player) Muzzle(shotSize core.Vec2) core.Vec2 {
	return core.Vec2{
		X: p.Pos.X + p.Size.X/2 - shotSize.X/2,
		Y: p.Pos.Y + p.Size.Y,
	}
}

// Release frees the player's slots.
func (p *Player) Release(reg *sprite.Registry) {
	reg.Release(p.Slot)
	if p.Health != nil {
		p.Health.Release(reg)
	}
}
