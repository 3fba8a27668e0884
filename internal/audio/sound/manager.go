// Package sound plays audio cues through the system speaker.
package sound

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
)

const sampleRate = audio.SampleRate

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

var _ audio.Player = (*Manager)(nil)

// Manager plays cues through the system speaker.
type Manager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	cues        map[audio.Cue]*beep.Buffer
	initialized bool
}

// NewManager creates a sound manager. Call Initialize before Play.
func NewManager(cfg config.AudioConfig) *Manager {
	return &Manager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		cues:  make(map[audio.Cue]*beep.Buffer),
	}
}

// Initialize renders every cue into memory and opens the speaker.
func (sm *Manager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	for _, c := range []audio.Cue{audio.CueJump, audio.CueDeath} {
		buf, err := sm.loadCue(c)
		if err != nil {
			return err
		}
		sm.cues[c] = buf
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: cannot open speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// loadCue prefers a WAV file from the sounds directory and falls back to a
// synthesized cue when the file does not exist.
func (sm *Manager) loadCue(c audio.Cue) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)

	if sm.cfg.SoundsDir != "" {
		path := filepath.Join(sm.cfg.SoundsDir, c.FileName())
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			streamer, wavFormat, decErr := wav.Decode(f)
			if decErr != nil {
				return nil, fmt.Errorf("sound: cannot decode %s: %w", path, decErr)
			}
			defer streamer.Close()
			var s beep.Streamer = streamer
			if wavFormat.SampleRate != sampleRate {
				s = beep.Resample(4, wavFormat.SampleRate, sampleRate, streamer)
			}
			buf.Append(s)
			return buf, nil
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("sound: cannot open %s: %w", path, err)
		}
	}

	buf.Append(audio.Synthesize(c, sampleRate))
	return buf, nil
}

// Play starts a cue without waiting for it to finish.
func (sm *Manager) Play(c audio.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf, ok := sm.cues[c]
	if !ok {
		return
	}

	s := newVolume(buf.Streamer(0, buf.Len()), sm.cfg.Volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds and releases the speaker.
func (sm *Manager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// newVolume scales a stream linearly; zero or negative volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
