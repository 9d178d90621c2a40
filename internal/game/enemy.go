package game

import (
	"github.com/vbelenko/termblast/internal/core"
	"github.com/vbelenko/termblast/internal/sprite"
)

// Enemy is the opponent at the top of the playfield: a body sprite with
// an eyes overlay, a two-frame animation cycle, a health bar, and an
// owned AI strategy that drives its projectile spawns.
type Enemy struct {
	Body
	EyesSlot int
	Health   *HealthBar
	Strategy Strategy

	animFrame float64
	animRate  float64
}

// Update advances the animation accumulator, runs one AI step, and
// writes the enemy's sprite records.
func (e *Enemy) Update(sp Spawner, reg *sprite.Registry) {
	e.animFrame += e.animRate

	if e.Strategy != nil {
		e.Strategy.Step(e, sp)
	}

	body := cellEnemyBodyA
	if int(e.animFrame)%2 == 1 {
		body = cellEnemyBodyB
	}
	reg.Write(e.Slot, e.attr(body))
	reg.Write(e.EyesSlot, e.eyesAttr())
}

// eyesAttr places the eye overlay in the upper middle of the body so it
// stays visible on top of the body sprite.
func (e *Enemy) eyesAttr() sprite.Attr {
	r := e.Rect()
	return sprite.Attr{
		Screen: core.NewRect(r.X+r.W*0.25, r.Y+r.H*0.5, r.W*0.5, r.H*0.25),
		Atlas:  cellEnemyEyes,
	}
}

// Release frees the enemy's slots.
func (e *Enemy) Release(reg *sprite.Registry) {
	reg.Release(e.Slot)
	reg.Release(e.EyesSlot)
	if e.Health != nil {
		e.Health.Release(reg)
	}
}
