package game

// Effect names passed to Sounds.Play.
const (
	SoundShoot     = "shoot"
	SoundCharge    = "charge"
	SoundHit       = "hit"
	SoundExplosion = "explosion"
	SoundSelect    = "select"
)

// Sounds is the fire-and-forget audio trigger contract. Implementations
// must never block; the simulation does not await completion and receives
// no failure feedback.
type Sounds interface {
	Play(name string)
}

// NopSounds discards every trigger. Used in tests and when audio is
// unavailable.
type NopSounds struct{}

// Play implements Sounds.
func (NopSounds) Play(string) {}
