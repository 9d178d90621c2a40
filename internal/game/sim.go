package game

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vbelenko/termblast/internal/config"
	"github.com/vbelenko/termblast/internal/core"
	"github.com/vbelenko/termblast/internal/sprite"
)

// StepResult is returned by Simulation.Step after each tick.
type StepResult struct {
	State   State  // Current state after this tick
	Changed bool   // Whether a state transition happened this tick
	Frame   uint64 // Frames stepped since the last Reset
}

// Simulation is the aggregate owning every subsystem of the game core.
// One call to Step advances exactly one frame in the canonical order:
// state-specific input handling, player update, enemy update (which runs
// the AI and may append projectiles), projectile update and collision
// over the collection as it stood at the start of that phase, dead
// sweep, then the pending-transition check. Single-threaded by design;
// the presentation layer reads the registry only after Step returns.
type Simulation struct {
	cfg    config.GameConfig
	logger *log.Logger
	sounds Sounds
	rng    *rand.Rand

	reg         *sprite.Registry
	state       State
	pending     State
	player      *Player
	enemy       *Enemy
	projectiles []*Projectile

	backdropSlot int
	levelIndex   int
	bossMode     bool
	frame        uint64
	changed      bool
}

// NewSimulation creates a simulation. A nil logger discards log output;
// nil sounds discards audio triggers. Reset must be called before Step.
func NewSimulation(cfg config.GameConfig, logger *log.Logger, sounds Sounds) *Simulation {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if sounds == nil {
		sounds = NopSounds{}
	}
	return &Simulation{
		cfg:          cfg,
		logger:       logger,
		sounds:       sounds,
		reg:          sprite.NewRegistry(),
		state:        StateTitle,
		pending:      PendingNone,
		backdropSlot: -1,
	}
}

// Reset reinitializes the session: fresh registry, seeded RNG, and the
// title screen as the current state.
func (s *Simulation) Reset(rcfg core.RuntimeConfig) error {
	s.rng = rand.New(rand.NewSource(rcfg.Seed))
	s.reg = sprite.NewRegistry()
	s.state = StateTitle
	s.pending = PendingNone
	s.player = nil
	s.enemy = nil
	s.projectiles = nil
	s.backdropSlot = -1
	s.levelIndex = 0
	s.bossMode = false
	s.frame = 0

	return s.loadScreen(StateTitle)
}

// State returns the current state tag.
func (s *Simulation) State() State {
	return s.state
}

// Frame returns the number of frames stepped since the last Reset.
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// Player returns the current player, or nil outside combat states.
func (s *Simulation) Player() *Player {
	return s.player
}

// Enemy returns the current enemy, or nil when no level owns one.
func (s *Simulation) Enemy() *Enemy {
	return s.enemy
}

// Projectiles returns the live projectile collection.
func (s *Simulation) Projectiles() []*Projectile {
	return s.projectiles
}

// Registry returns the sprite slot registry for the presentation layer.
func (s *Simulation) Registry() *sprite.Registry {
	return s.reg
}

// LevelIndex returns the current normal-level index.
func (s *Simulation) LevelIndex() int {
	return s.levelIndex
}

// BossMode reports whether the boss level rules are active.
func (s *Simulation) BossMode() bool {
	return s.bossMode
}

// Step advances the simulation by one frame.
func (s *Simulation) Step(in core.InputFrame) StepResult {
	s.frame++
	s.changed = false

	switch s.state {
	case StateTitle:
		if in.Pressed(core.ActionConfirm) {
			s.Request(StateGameplay)
		} else if in.Pressed(core.ActionSwap) {
			s.Request(StateTitle2)
		}
	case StateTitle2:
		if in.Pressed(core.ActionConfirm) {
			s.Request(StateBossGameplay)
		} else if in.Pressed(core.ActionSwap) {
			s.Request(StateTitle)
		}
	case StateGameOver:
		if in.Pressed(core.ActionRestart) || in.Pressed(core.ActionConfirm) {
			s.Request(StateGameplay)
		}
	case StateBossGameOver:
		if in.Pressed(core.ActionRestart) || in.Pressed(core.ActionConfirm) {
			s.Request(StateBossGameplay)
		}
	case StateStageCleared:
		if in.Pressed(core.ActionConfirm) {
			s.Request(StateGameplay)
		}
	case StateWin:
		// Terminal screen; only quitting leaves it.
	case StateGameplay, StateBossGameplay:
		s.stepCombat(in)
	}

	// Damage events set the pending flag mid-frame, possibly several
	// times; it is consumed exactly once per frame, here.
	if s.pending != PendingNone {
		target := s.pending
		s.pending = PendingNone
		s.Request(target)
	}

	return StepResult{State: s.state, Changed: s.changed, Frame: s.frame}
}

// Request asks the state machine for a transition. If the (current,
// requested) pair is in the legal-transition table the effect runs and
// the state changes; otherwise the request is rejected and logged, and
// the state stays put. Returns whether the transition happened.
func (s *Simulation) Request(target State) bool {
	effect, ok := transitions[transitionKey{s.state, target}]
	if !ok {
		s.logger.Warn("illegal state transition rejected",
			"from", s.state.String(), "to", target.String())
		return false
	}

	s.teardown()
	if err := effect(s); err != nil {
		s.logger.Error("state transition effect failed",
			"from", s.state.String(), "to", target.String(), "error", err)
		return false
	}

	s.state = target
	s.pending = PendingNone
	s.changed = true
	s.sounds.Play(SoundSelect)
	return true
}

// stepCombat runs one frame of the full entity simulation.
func (s *Simulation) stepCombat(in core.InputFrame) {
	field := s.cfg.Playfield

	// Player phase.
	s.player.Update(in, field.Width, s.reg)
	if in.Pressed(core.ActionShoot) &&
		s.player.TryShoot(s.bossMode, s.cfg.Player.ChargeCost, s.cfg.Boss.ShotCooldown) {
		s.spawnPlayerShot()
		s.sounds.Play(SoundShoot)
	}

	// Enemy phase; the AI may append projectiles through the spawner.
	s.enemy.Update(s, s.reg)

	// Projectile phase over the collection as it stood at phase start.
	// Shots spawned above are not updated until the next frame.
	count := len(s.projectiles)
	for _, p := range s.projectiles[:count] {
		p.Integrate()

		switch {
		case p.Pos.Y < 0:
			// Exited past the player's side of the field.
			p.Kill()
			if p.Origin == OriginEnemy {
				s.damagePlayer(1)
			}
		case p.Pos.Y > field.Height:
			// Harmless top exit; prunes anything that drifts off.
			p.Kill()
		default:
			s.resolveCollision(p)
		}

		// Written even when dead; the sweep clears the slot below.
		s.reg.Write(p.Slot, p.Attr())
	}

	// Sweep: release slots, then drop dead records in one pass.
	alive := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.Dead {
			s.reg.Release(p.Slot)
			continue
		}
		alive = append(alive, p)
	}
	s.projectiles = alive

	// Health bars clamp to [0, 1] here, not at the damage site.
	s.player.Health.Sync(s.reg)
	s.enemy.Health.Sync(s.reg)
}

// resolveCollision tests a projectile against its origin-selected target.
func (s *Simulation) resolveCollision(p *Projectile) {
	switch p.Origin {
	case OriginEnemy:
		if !p.Rect().Overlaps(s.player.Rect()) {
			return
		}
		p.Kill()
		if s.bossMode {
			s.damagePlayer(1)
		} else {
			s.player.Charge++
			s.sounds.Play(SoundCharge)
		}
	case OriginPlayer:
		if !p.Rect().Overlaps(s.enemy.Rect()) {
			return
		}
		p.Kill()
		s.damageEnemy(1)
	}
}

// damagePlayer applies damage and, on crossing zero, flags the pending
// death transition. Last write wins within a frame.
func (s *Simulation) damagePlayer(amount float64) {
	s.player.Health.Damage(amount)
	s.sounds.Play(SoundHit)
	if s.player.Health.Depleted() {
		if s.bossMode {
			s.pending = StateBossGameOver
		} else {
			s.pending = StateGameOver
		}
		s.sounds.Play(SoundExplosion)
	}
}

// damageEnemy applies damage and, on crossing zero, flags the pending
// clear transition: Win for the boss or the final stage, StageCleared
// otherwise.
func (s *Simulation) damageEnemy(amount float64) {
	s.enemy.Health.Damage(amount)
	s.sounds.Play(SoundHit)
	if !s.enemy.Health.Depleted() {
		return
	}
	switch {
	case s.bossMode:
		s.pending = StateWin
	case s.levelIndex >= len(normalLevels(s.cfg))-1:
		s.pending = StateWin
	default:
		s.pending = StateStageCleared
	}
	s.sounds.Play(SoundExplosion)
}

// SpawnEnemyShot implements Spawner. Slot exhaustion drops the shot
// loudly instead of overwriting an arbitrary active sprite.
func (s *Simulation) SpawnEnemyShot(pos, vel core.Vec2) {
	s.spawnProjectile(OriginEnemy, pos, vel)
}

// spawnPlayerShot fires straight up from the player's muzzle.
func (s *Simulation) spawnPlayerShot() {
	size := core.Vec2{X: s.cfg.Projectile.Width, Y: s.cfg.Projectile.Height}
	s.spawnProjectile(OriginPlayer,
		s.player.Muzzle(size),
		core.Vec2{Y: s.cfg.Projectile.PlayerSpeed})
}

func (s *Simulation) spawnProjectile(origin Origin, pos, vel core.Vec2) {
	slot, err := s.reg.Allocate()
	if err != nil {
		if errors.Is(err, sprite.ErrExhausted) {
			s.logger.Error("dropping projectile spawn: slot registry exhausted",
				"origin", origin.String())
			return
		}
		s.logger.Error("projectile slot allocation failed", "error", err)
		return
	}

	p := &Projectile{
		Pos:    pos,
		Size:   core.Vec2{X: s.cfg.Projectile.Width, Y: s.cfg.Projectile.Height},
		Vel:    vel,
		Slot:   slot,
		Origin: origin,
	}
	// Visible immediately, even though it first moves next frame.
	s.reg.Write(slot, p.Attr())
	s.projectiles = append(s.projectiles, p)
}

// teardown releases every slot owned by the outgoing level or screen.
func (s *Simulation) teardown() {
	if s.backdropSlot >= 0 {
		s.reg.Release(s.backdropSlot)
		s.backdropSlot = -1
	}
	if s.player != nil {
		s.player.Release(s.reg)
		s.player = nil
	}
	if s.enemy != nil {
		s.enemy.Release(s.reg)
		s.enemy = nil
	}
	for _, p := range s.projectiles {
		s.reg.Release(p.Slot)
	}
	s.projectiles = nil
}

// loadLevel constructs a normal combat level. An out-of-range index
// falls back to the first level.
func (s *Simulation) loadLevel(idx int) error {
	levels := normalLevels(s.cfg)
	if idx < 0 || idx >= len(levels) {
		s.logger.Warn("level index out of range, loading first level", "index", idx)
		idx = 0
	}
	spec := levels[idx]

	s.levelIndex = idx
	s.bossMode = false

	if err := s.buildPlayer(s.cfg.Player.Health); err != nil {
		return err
	}
	if err := s.buildEnemy(spec.EnemyHealth,
		NewVolleyStrategy(spec.ShotPeriod, spec.ConeMin, spec.ConeMax, s.cfg.Enemy.Speed, s.rng)); err != nil {
		return err
	}
	return nil
}

// loadBossLevel constructs the boss level: a huge enemy health pool,
// the multi-phase pattern, and a one-point player pool.
func (s *Simulation) loadBossLevel() error {
	s.bossMode = true

	if err := s.buildPlayer(s.cfg.Boss.PlayerHealth); err != nil {
		return err
	}
	return s.buildEnemy(s.cfg.Boss.Health, NewBossStrategy(s.cfg.Boss.Speed, s.rng))
}

// loadScreen constructs a non-combat screen: a full-field backdrop and,
// on the death and clear screens, a placeholder idle enemy.
func (s *Simulation) loadScreen(st State) error {
	field := s.cfg.Playfield

	slot, err := s.reg.Allocate()
	if err != nil {
		return err
	}
	s.backdropSlot = slot
	s.reg.Write(slot, sprite.Attr{
		Screen: core.NewRect(0, 0, field.Width, field.Height),
		Atlas:  backdropFor(st),
	})

	if hasPlaceholderEnemy(st) {
		e, err := s.newEnemyBody()
		if err != nil {
			return err
		}
		e.Strategy = IdleStrategy{}
		s.enemy = e
		s.reg.Write(e.Slot, e.attr(cellEnemyBodyA))
		s.reg.Write(e.EyesSlot, e.eyesAttr())
	}
	return nil
}

// buildPlayer allocates the player's body slot and health bar.
func (s *Simulation) buildPlayer(health float64) error {
	cfg := s.cfg.Player
	field := s.cfg.Playfield

	slot, err := s.reg.Allocate()
	if err != nil {
		return err
	}

	bar := core.NewRect(field.Width*0.2, 12, field.Width*0.6, 12)
	hb, err := NewHealthBar(s.reg, health, bar)
	if err != nil {
		s.reg.Release(slot)
		return err
	}

	s.player = &Player{
		Body: Body{
			Pos:   core.Vec2{X: cfg.StartX, Y: cfg.StartY},
			Size:  core.Vec2{X: cfg.Width, Y: cfg.Height},
			Speed: cfg.Speed,
			Slot:  slot,
		},
		FacingRight: true,
		Health:      hb,
	}
	s.reg.Write(slot, s.player.attr(cellPlayerRight))
	return nil
}

// buildEnemy allocates the enemy's slots and health bar and attaches
// its strategy.
func (s *Simulation) buildEnemy(health float64, strategy Strategy) error {
	e, err := s.newEnemyBody()
	if err != nil {
		return err
	}

	field := s.cfg.Playfield
	bar := core.NewRect(field.Width*0.2, field.Height-24, field.Width*0.6, 12)
	hb, err := NewHealthBar(s.reg, health, bar)
	if err != nil {
		e.Release(s.reg)
		return err
	}

	e.Health = hb
	e.Strategy = strategy
	s.enemy = e
	// Visible on the transition frame, before the first Update.
	s.reg.Write(e.Slot, e.attr(cellEnemyBodyA))
	s.reg.Write(e.EyesSlot, e.eyesAttr())
	return nil
}

// newEnemyBody allocates the enemy's body and eyes slots.
func (s *Simulation) newEnemyBody() (*Enemy, error) {
	cfg := s.cfg.Enemy

	slot, err := s.reg.Allocate()
	if err != nil {
		return nil, err
	}
	eyes, err := s.reg.Allocate()
	if err != nil {
		s.reg.Release(slot)
		return nil, err
	}

	return &Enemy{
		Body: Body{
			Pos:   core.Vec2{X: cfg.StartX, Y: cfg.StartY},
			Size:  core.Vec2{X: cfg.Width, Y: cfg.Height},
			Speed: cfg.Speed,
			Slot:  slot,
		},
		EyesSlot: eyes,
		animRate: cfg.AnimRate,
	}, nil
}
