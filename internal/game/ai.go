package game

import (
	"math"
	"math/rand"

	"github.com/vbelenko/termblast/internal/core"
)

// Spawner is the projectile sink handed to AI strategies. The simulation
// implements it; strategies never touch the projectile collection or the
// slot registry directly.
type Spawner interface {
	SpawnEnemyShot(pos, vel core.Vec2)
}

// Strategy advances one frame of enemy behavior, possibly spawning zero
// or more projectiles. Strategies never fail; out-of-range timer values
// are tolerated arithmetically.
type Strategy interface {
	Step(e *Enemy, sp Spawner)
}

// Downward-cone angle bounds, in radians. The early level fires in a
// wide cone centered straight down; later patterns use a cone biased
// toward the player's retreat direction.
const (
	ConeWideMin = 11 * math.Pi / 8
	ConeWideMax = 13 * math.Pi / 8

	ConeBiasedMin = 9 * math.Pi / 8
	ConeBiasedMax = 11 * math.Pi / 8
)

// spawnJitter is the horizontal randomization applied to volley spawns.
const spawnJitter = 20.0

// IdleStrategy does nothing. Used for non-combat screens and
// death-screen placeholder enemies.
type IdleStrategy struct{}

// Step implements Strategy.
func (IdleStrategy) Step(*Enemy, Spawner) {}

// VolleyStrategy fires a single projectile every Period frames, aimed
// along a random angle drawn from its cone and scaled by Speed.
type VolleyStrategy struct {
	Period   int
	Cooldown int
	ConeMin  float64
	ConeMax  float64
	Speed    float64

	rng *rand.Rand
}

// NewVolleyStrategy creates a volley strategy with a full cooldown.
func NewVolleyStrategy(period int, coneMin, coneMax, speed float64, rng *rand.Rand) *VolleyStrategy {
	return &VolleyStrategy{
		Period:   period,
		Cooldown: period,
		ConeMin:  coneMin,
		ConeMax:  coneMax,
		Speed:    speed,
		rng:      rng,
	}
}

// Step implements Strategy.
func (v *VolleyStrategy) Step(e *Enemy, sp Spawner) {
	if v.Cooldown > 0 {
		v.Cooldown--
		return
	}
	v.Cooldown = v.Period

	angle := v.ConeMin + v.rng.Float64()*(v.ConeMax-v.ConeMin)
	vel := velocityAt(angle, v.Speed)
	pos := core.Vec2{
		X: e.Pos.X + (v.rng.Float64()*2-1)*spawnJitter,
		Y: e.Pos.Y,
	}
	sp.SpawnEnemyShot(pos, vel)
}

// BossStrategy partitions a free-running frame counter into three named
// phases, each with its own spawn rule. The counter is never reset; past
// the last phase the boss holds dormant until the level reloads it.
type BossStrategy struct {
	Counter int
	Speed   float64

	rng *rand.Rand
}

// bossPhase identifies the active sub-interval of the boss counter.
type bossPhase int

const (
	phaseSineSweep  bossPhase = iota // (0, 600]: smooth sweeping single shot
	phaseFanBurst                    // (600, 1200]: 3-shot spread every 30th frame
	phaseRapidSweep                  // (1200, 1800]: fast sweeping single shot
	phaseDormant                     // beyond 1800: no spawns
)

// Phase boundaries, in frames.
const (
	sineSweepEnd  = 600
	fanBurstEnd   = 1200
	rapidSweepEnd = 1800
)

// Sweep parameters. The rapid phase oscillates five times faster than
// the opening sweep.
const (
	sweepCenter    = 5 * math.Pi / 4
	sweepHalfWidth = math.Pi / 8
	sineSweepFreq  = 0.05
	rapidSweepFreq = 0.25
)

// fanSpread is the angular increment between fan projectiles.
const fanSpread = math.Pi / 4

// NewBossStrategy creates the multi-phase boss pattern.
func NewBossStrategy(speed float64, rng *rand.Rand) *BossStrategy {
	return &BossStrategy{Speed: speed, rng: rng}
}

// phase returns the phase for the current counter value.
func (b *BossStrategy) phase() bossPhase {
	switch {
	case b.Counter <= sineSweepEnd:
		return phaseSineSweep
	case b.Counter <= fanBurstEnd:
		return phaseFanBurst
	case b.Counter <= rapidSweepEnd:
		return phaseRapidSweep
	default:
		return phaseDormant
	}
}

// Step implements Strategy.
func (b *BossStrategy) Step(e *Enemy, sp Spawner) {
	b.Counter++

	switch b.phase() {
	case phaseSineSweep:
		if b.Counter%100 < 55 {
			b.spawnSweep(e, sp, sineSweepFreq)
		}
	case phaseFanBurst:
		if b.Counter%30 == 0 {
			b.spawnFan(e, sp)
		}
	case phaseRapidSweep:
		if b.Counter%20 < 3 {
			b.spawnSweep(e, sp, rapidSweepFreq)
		}
	case phaseDormant:
		// Pattern exhausted; holds until the level reloads.
	}
}

// spawnSweep fires one shot whose angle oscillates with the counter.
func (b *BossStrategy) spawnSweep(e *Enemy, sp Spawner, freq float64) {
	angle := sweepCenter + sweepHalfWidth*math.Sin(float64(b.Counter)*freq)
	sp.SpawnEnemyShot(b.muzzle(e), velocityAt(angle, b.Speed))
}

// spawnFan fires three shots: a random base angle in the biased cone,
// then two more each offset by a fixed increment from the previous.
func (b *BossStrategy) spawnFan(e *Enemy, sp Spawner) {
	base := ConeBiasedMin + b.rng.Float64()*(ConeBiasedMax-ConeBiasedMin)
	muzzle := b.muzzle(e)
	for i := 0; i < 3; i++ {
		angle := base + float64(i)*fanSpread
		sp.SpawnEnemyShot(muzzle, velocityAt(angle, b.Speed))
	}
}

// muzzle returns the boss's projectile spawn point.
func (b *BossStrategy) muzzle(e *Enemy) core.Vec2 {
	return core.Vec2{X: e.Pos.X, Y: e.Pos.Y}
}

// velocityAt converts an angle and speed into a velocity vector.
func velocityAt(angle, speed float64) core.Vec2 {
	return core.Vec2{
		X: math.Cos(angle) * speed,
		Y: math.Sin(angle) * speed,
	}
}
