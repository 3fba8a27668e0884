package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// Spawner places batches of obstacles off the right edge. All randomness
// comes from its own seeded source, so a fixed seed replays the same course.
type Spawner struct {
	rng   *rand.Rand
	clock core.Clock

	cacti []sprite.Frame
	flyer *sprite.FrameSet

	width       float64
	height      float64
	groundLevel float64
	batchSize   int
	gapMin      float64
	gapMax      float64
	airFactor   float64
	airChance   int
	animEvery   time.Duration
}

// NewSpawner creates a spawner drawing from cacti and flyer frames.
func NewSpawner(cfg config.RunnerConfig, cacti []sprite.Frame, flyer *sprite.FrameSet, seed int64, clock core.Clock) *Spawner {
	return &Spawner{
		rng:         rand.New(rand.NewSource(seed)),
		clock:       clock,
		cacti:       cacti,
		flyer:       flyer,
		width:       cfg.PlatformWidth(),
		height:      float64(cfg.Window.Height),
		groundLevel: cfg.GroundLevel(),
		batchSize:   cfg.Obstacles.BatchSize,
		gapMin:      cfg.Obstacles.GapMin,
		gapMax:      cfg.Obstacles.GapMax,
		airFactor:   cfg.Obstacles.AirborneSpeed,
		airChance:   cfg.AirborneChance(),
		animEvery:   cfg.Obstacles.AnimationInterval,
	}
}

// Spawn appends one batch to dst and returns the extended slice.
//
// The first ground obstacle sits exactly at the right edge; each later one
// trails the previous by a random gap. Every ground obstacle may bring an
// airborne companion somewhere in the upper half of the next screen.
func (s *Spawner) Spawn(dst []Obstacle, scroll float64) []Obstacle {
	if len(s.cacti) == 0 {
		return dst
	}

	lastX := 0.0
	for i := 0; i < s.batchSize; i++ {
		frame := s.cacti[s.rng.Intn(len(s.cacti))]

		x := s.width
		if i > 0 {
			x = lastX + s.gap()
		}
		lastX = x

		y := s.groundLevel - float64(frame.Height())
		dst = append(dst, NewGroundObstacle(frame, x, y, scroll))

		if s.rng.Intn(s.airChance) == 0 {
			dst = append(dst, s.airborne(scroll))
		}
	}
	return dst
}

func (s *Spawner) gap() float64 {
	lo := s.gapMin * s.width
	hi := s.gapMax * s.width
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Spawner) airborne(scroll float64) Obstacle {
	anim := sprite.NewAnimated(s.flyer, s.animEvery, s.clock)
	_, h := anim.Size()

	x := s.width + s.rng.Float64()*s.width

	top := s.height / 2
	bottom := s.groundLevel - float64(h)
	if bottom < top {
		bottom = top
	}
	y := top + s.rng.Float64()*(bottom-top)

	return NewAirborneObstacle(anim, x, y, scroll*s.airFactor)
}
