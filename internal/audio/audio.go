// Package audio synthesizes the game's sound effects with gopxl/beep.
// Every effect is generated, no sample files are shipped.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vbelenko/termblast/internal/game"
)

const sampleRate = beep.SampleRate(48000)

// Service owns the speaker and mixes one-shot effects into it. The zero
// Service is silent until Init succeeds; Play is always safe to call.
type Service struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// New creates an uninitialized audio service.
func New() *Service {
	return &Service{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. Safe to call twice.
func (s *Service) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences the mixer. The speaker itself stays open; beep has no
// per-caller close.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Play mixes in the named effect and returns immediately. Unknown names
// and an uninitialized service are silent no-ops.
func (s *Service) Play(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	effect := effectFor(name)
	if effect == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(effect)
	speaker.Unlock()
}

var _ game.Sounds = (*Service)(nil)

func effectFor(name string) beep.Streamer {
	switch name {
	case game.SoundShoot:
		return shootEffect()
	case game.SoundCharge:
		return chargeEffect()
	case game.SoundHit:
		return hitEffect()
	case game.SoundExplosion:
		return explosionEffect()
	case game.SoundSelect:
		return selectEffect()
	default:
		return nil
	}
}
