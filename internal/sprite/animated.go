package sprite

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Animated cycles through a frame set on a fixed wall-clock interval.
type Animated struct {
	frames     *FrameSet
	index      int
	lastSwitch time.Time
	interval   time.Duration
	clock      core.Clock
}

// NewAnimated creates an animated sprite showing frame 0 of fs.
func NewAnimated(fs *FrameSet, interval time.Duration, clock core.Clock) *Animated {
	return &Animated{
		frames:     fs,
		interval:   interval,
		clock:      clock,
		lastSwitch: clock.Now(),
	}
}

// Advance moves to the next frame if the switch interval has elapsed since
// the last switch. It reports whether the frame changed.
func (a *Animated) Advance() bool {
	now := a.clock.Now()
	if now.Sub(a.lastSwitch) < a.interval {
		return false
	}
	a.index = (a.index + 1) % a.frames.Len()
	a.lastSwitch = now
	return true
}

// SetFrames swaps the active frame set. A different set restarts at frame 0
// with a fresh timer; setting the current set again changes nothing.
func (a *Animated) SetFrames(fs *FrameSet) {
	if fs == a.frames {
		return
	}
	a.frames = fs
	a.index = 0
	a.lastSwitch = a.clock.Now()
}

// Frames returns the active frame set.
func (a *Animated) Frames() *FrameSet { return a.frames }

// Index returns the active frame index.
func (a *Animated) Index() int { return a.index }

// Current returns the active frame and its mask.
func (a *Animated) Current() Frame { return a.frames.Frame(a.index) }

// Size returns the active frame's dimensions.
func (a *Animated) Size() (int, int) {
	f := a.Current()
	return f.Width(), f.Height()
}

// Restart shows frame 0 and restarts the timer.
func (a *Animated) Restart() {
	a.index = 0
	a.lastSwitch = a.clock.Now()
}
