package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveShape selects the oscillator's waveform.
type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
	waveSaw
	waveNoise
)

// sweepOsc generates a finite tone whose frequency glides linearly from
// startFreq to endFreq over its lifetime.
type sweepOsc struct {
	startFreq float64
	endFreq   float64
	shape     waveShape
	rate      beep.SampleRate

	phase    float64
	position int
	total    int
}

func newSweepOsc(startFreq, endFreq float64, d time.Duration, shape waveShape, rate beep.SampleRate) beep.Streamer {
	return &sweepOsc{
		startFreq: startFreq,
		endFreq:   endFreq,
		shape:     shape,
		rate:      rate,
		total:     rate.N(d),
	}
}

// newTone is a sweepOsc with a constant frequency.
func newTone(freq float64, d time.Duration, shape waveShape, rate beep.SampleRate) beep.Streamer {
	return newSweepOsc(freq, freq, d, shape, rate)
}

func (o *sweepOsc) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, false
		}

		var val float64
		switch o.shape {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweepOsc) Err() error { return nil }

// fadeEnv applies a linear attack and release to a finite streamer.
type fadeEnv struct {
	streamer beep.Streamer
	rate     beep.SampleRate

	position int
	attack   int
	release  int
	total    int
}

func newFadeEnv(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fadeEnv{
		streamer: s,
		rate:     rate,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *fadeEnv) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *fadeEnv) Err() error { return e.streamer.Err() }

// withVolume scales a streamer; log2(0) is -Inf, so zero goes silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// shootEffect is a descending square-wave zap.
func shootEffect() beep.Streamer {
	const d = 90 * time.Millisecond
	osc := newSweepOsc(900, 280, d, waveSquare, sampleRate)
	return withVolume(newFadeEnv(osc, d, time.Millisecond, 40*time.Millisecond, sampleRate), 0.25)
}

// chargeEffect is a bright ding with an octave overtone.
func chargeEffect() beep.Streamer {
	const d = 140 * time.Millisecond
	fund := newFadeEnv(newTone(880, d, waveSine, sampleRate), d, time.Millisecond, 110*time.Millisecond, sampleRate)
	over := newFadeEnv(newTone(1760, d, waveSine, sampleRate), d, time.Millisecond, 60*time.Millisecond, sampleRate)
	return withVolume(beep.Mix(withVolume(fund, 0.7), withVolume(over, 0.3)), 0.3)
}

// hitEffect is a short low saw buzz.
func hitEffect() beep.Streamer {
	const d = 110 * time.Millisecond
	osc := newTone(120, d, waveSaw, sampleRate)
	return withVolume(newFadeEnv(osc, d, 2*time.Millisecond, 50*time.Millisecond, sampleRate), 0.3)
}

// explosionEffect is filtered-noise rumble with a long tail.
func explosionEffect() beep.Streamer {
	const d = 350 * time.Millisecond
	noise := newTone(0, d, waveNoise, sampleRate)
	rumble := newSweepOsc(110, 40, d, waveSine, sampleRate)
	mixed := beep.Mix(withVolume(noise, 0.5), withVolume(rumble, 0.5))
	return withVolume(newFadeEnv(mixed, d, 2*time.Millisecond, 280*time.Millisecond, sampleRate), 0.35)
}

// selectEffect is a rising two-note menu chime.
func selectEffect() beep.Streamer {
	const note = 70 * time.Millisecond
	n1 := newFadeEnv(newTone(659.26, note, waveSquare, sampleRate), note, time.Millisecond, 30*time.Millisecond, sampleRate)
	n2 := newFadeEnv(newTone(987.77, note, waveSquare, sampleRate), note, time.Millisecond, 40*time.Millisecond, sampleRate)
	return withVolume(beep.Seq(n1, n2), 0.2)
}
