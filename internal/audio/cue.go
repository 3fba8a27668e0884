// Package audio defines the runner's one-shot sound cues and synthesizes
// them with gopxl/beep. Speaker output lives in the sound subpackage so the
// game core never links the platform audio backend.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = beep.SampleRate(44100)

// Cue names a one-shot sound.
type Cue int

const (
	CueJump Cue = iota
	CueDeath
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueDeath:
		return "death"
	default:
		return "unknown"
	}
}

// FileName returns the optional WAV file that overrides the synthesized cue.
func (c Cue) FileName() string {
	switch c {
	case CueJump:
		return "jump_sound.wav"
	case CueDeath:
		return "dead_sound.wav"
	default:
		return ""
	}
}

// Player is fire-and-forget cue playback.
type Player interface {
	Play(c Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// sweep is an oscillator whose frequency glides from f0 to f1.
type sweep struct {
	rate     beep.SampleRate
	f0, f1   float64
	phase    float64
	position int
	total    int
	square   bool
	noise    float64 // 0..1 mix of white noise
	rng      *rand.Rand
}

func newSweep(rate beep.SampleRate, f0, f1 float64, d time.Duration, square bool, noise float64) *sweep {
	return &sweep{
		rate:   rate,
		f0:     f0,
		f1:     f1,
		total:  rate.N(d),
		square: square,
		noise:  noise,
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.total)
		freq := s.f0 + (s.f1-s.f0)*t

		val := math.Sin(2 * math.Pi * s.phase)
		if s.square {
			val = 1.0
			if s.phase >= 0.5 {
				val = -1.0
			}
		}
		if s.noise > 0 {
			val = val*(1-s.noise) + (s.rng.Float64()*2-1)*s.noise
		}

		// Short attack, linear release
		env := math.Min(t/0.05, 1.0) * (1 - t)
		val *= env * 0.4

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// Synthesize builds the default sound for a cue.
func Synthesize(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueJump:
		return newSweep(rate, 330, 880, 160*time.Millisecond, true, 0)
	case CueDeath:
		return newSweep(rate, 440, 70, 450*time.Millisecond, false, 0.35)
	default:
		return beep.Silence(0)
	}
}
