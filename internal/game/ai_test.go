package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vbelenko/termblast/internal/core"
)

// recordingSpawner captures spawn requests for inspection.
type recordingSpawner struct {
	shots []struct {
		pos core.Vec2
		vel core.Vec2
	}
}

func (r *recordingSpawner) SpawnEnemyShot(pos, vel core.Vec2) {
	r.shots = append(r.shots, struct {
		pos core.Vec2
		vel core.Vec2
	}{pos, vel})
}

// angleOf normalizes a velocity's direction to [0, 2*pi).
func angleOf(v core.Vec2) float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func testEnemy() *Enemy {
	return &Enemy{Body: Body{
		Pos:  core.Vec2{X: 450, Y: 650},
		Size: core.Vec2{X: 64, Y: 64},
	}}
}

func TestIdleStrategyNeverSpawns(t *testing.T) {
	sp := &recordingSpawner{}
	e := testEnemy()
	var s IdleStrategy
	for i := 0; i < 100; i++ {
		s.Step(e, sp)
	}
	if len(sp.shots) != 0 {
		t.Errorf("IdleStrategy spawned %d shots, want 0", len(sp.shots))
	}
}

func TestVolleyStrategyCooldown(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := NewVolleyStrategy(3, ConeWideMin, ConeWideMax, 6, rng)
	sp := &recordingSpawner{}
	e := testEnemy()

	// Three frames count down, the fourth fires.
	for i := 0; i < 3; i++ {
		v.Step(e, sp)
		if len(sp.shots) != 0 {
			t.Fatalf("shot fired during cooldown at frame %d", i+1)
		}
	}
	v.Step(e, sp)
	if len(sp.shots) != 1 {
		t.Fatalf("got %d shots after cooldown expiry, want 1", len(sp.shots))
	}
	if v.Cooldown != 3 {
		t.Errorf("Cooldown = %d after firing, want reset to 3", v.Cooldown)
	}
}

func TestVolleyStrategyAngleAndSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	v := NewVolleyStrategy(0, ConeWideMin, ConeWideMax, 6, rng)
	sp := &recordingSpawner{}
	e := testEnemy()

	for i := 0; i < 50; i++ {
		v.Step(e, sp)
	}

	if len(sp.shots) == 0 {
		t.Fatal("no shots fired")
	}
	for i, shot := range sp.shots {
		a := angleOf(shot.vel)
		if a < ConeWideMin || a > ConeWideMax {
			t.Errorf("shot %d angle %.4f outside cone [%.4f, %.4f]", i, a, ConeWideMin, ConeWideMax)
		}
		speed := math.Hypot(shot.vel.X, shot.vel.Y)
		if math.Abs(speed-6) > 1e-9 {
			t.Errorf("shot %d speed = %.4f, want 6", i, speed)
		}
	}
}

func TestBossPhaseBoundaries(t *testing.T) {
	tests := []struct {
		counter int
		want    bossPhase
	}{
		{1, phaseSineSweep},
		{600, phaseSineSweep},
		{601, phaseFanBurst},
		{1200, phaseFanBurst},
		{1201, phaseRapidSweep},
		{1800, phaseRapidSweep},
		{1801, phaseDormant},
		{100000, phaseDormant},
	}
	for _, tc := range tests {
		b := &BossStrategy{Counter: tc.counter}
		if got := b.phase(); got != tc.want {
			t.Errorf("phase() at counter %d = %d, want %d", tc.counter, got, tc.want)
		}
	}
}

func TestBossFanBurstSpawnsThreeShotSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBossStrategy(8, rng)
	b.Counter = 659 // Step advances to 660: fan-burst phase, 660 % 30 == 0.

	sp := &recordingSpawner{}
	b.Step(testEnemy(), sp)

	if len(sp.shots) != 3 {
		t.Fatalf("fan burst spawned %d shots, want exactly 3", len(sp.shots))
	}

	base := angleOf(sp.shots[0].vel)
	if base < ConeBiasedMin || base > ConeBiasedMax {
		t.Errorf("base angle %.4f outside [%.4f, %.4f]", base, ConeBiasedMin, ConeBiasedMax)
	}
	for i := 1; i < 3; i++ {
		want := base + float64(i)*math.Pi/4
		got := angleOf(sp.shots[i].vel)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("shot %d angle = %.4f, want base+%d*pi/4 = %.4f", i, got, i, want)
		}
	}
}

func TestBossFanBurstSkipsOffBeatFrames(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBossStrategy(8, rng)
	b.Counter = 660 // Step advances to 661: off the 30-frame beat.

	sp := &recordingSpawner{}
	b.Step(testEnemy(), sp)

	if len(sp.shots) != 0 {
		t.Errorf("off-beat frame spawned %d shots, want 0", len(sp.shots))
	}
}

func TestBossSineSweepCadence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := NewBossStrategy(8, rng)
	sp := &recordingSpawner{}
	e := testEnemy()

	// Counters 1..100: spawns on 1..54 plus 100 (100 % 100 == 0 < 55).
	for i := 0; i < 100; i++ {
		b.Step(e, sp)
	}
	if len(sp.shots) != 55 {
		t.Errorf("sine sweep fired %d shots over 100 frames, want 55", len(sp.shots))
	}
}

func TestBossDormantBeyondLastPhase(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := NewBossStrategy(8, rng)
	b.Counter = 1800

	sp := &recordingSpawner{}
	e := testEnemy()
	for i := 0; i < 500; i++ {
		b.Step(e, sp)
	}
	if len(sp.shots) != 0 {
		t.Errorf("dormant boss spawned %d shots, want 0", len(sp.shots))
	}
}
