package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// JumpState is the player's vertical state.
type JumpState int

const (
	Grounded JumpState = iota
	Ascending
)

// String returns the state name.
func (s JumpState) String() string {
	if s == Ascending {
		return "ascending"
	}
	return "grounded"
}

// Player is the jumping character. Its vertical velocity during a jump is
// recomputed from the jump start time each tick:
//
//	v = v0 + gravity * (now - jumpStart)
type Player struct {
	anim    *sprite.Animated
	walking *sprite.FrameSet
	ducking *sprite.FrameSet

	x, y float64
	vy   float64

	groundLevel float64
	maxUp       float64
	gravity     float64

	state     JumpState
	jumpStart time.Time // Zero unless Ascending

	survivalStart time.Time
	alive         bool
	score         int

	clock core.Clock
	cues  audio.Player
}

// NewPlayer creates a grounded player at its resting position.
func NewPlayer(cfg config.RunnerConfig, walking, ducking *sprite.FrameSet, clock core.Clock, cues audio.Player) *Player {
	p := &Player{
		anim:        sprite.NewAnimated(walking, cfg.Player.AnimationInterval, clock),
		walking:     walking,
		ducking:     ducking,
		x:           cfg.Player.X,
		groundLevel: cfg.GroundLevel(),
		maxUp:       cfg.Player.MaxUpwardVelocity,
		gravity:     cfg.Player.Gravity,
		clock:       clock,
		cues:        cues,
	}
	p.Reset()
	return p
}

// Reset starts a fresh attempt without reloading any frames.
func (p *Player) Reset() {
	p.state = Grounded
	p.jumpStart = time.Time{}
	p.vy = 0
	p.alive = true
	p.score = 0
	p.survivalStart = p.clock.Now()
	p.anim.SetFrames(p.walking)
	p.anim.Restart()
	p.y = p.restY()
}

// Update runs one tick: jump edge, physics, pose swap, clamp, animation.
func (p *Player) Update(in core.InputFrame) {
	now := p.clock.Now()

	if p.state == Grounded && in.Has(core.ActionJump) {
		p.state = Ascending
		p.vy = p.maxUp
		p.jumpStart = now
		p.cues.Play(audio.CueJump)
	}

	if p.state == Ascending {
		p.vy = p.maxUp + p.gravity*now.Sub(p.jumpStart).Seconds()
		p.y += p.vy
	}

	// Duck only changes pose on the ground; mid-air keeps the current set
	if p.state == Grounded {
		if in.IsHeld(core.ActionDuck) {
			p.anim.SetFrames(p.ducking)
		} else {
			p.anim.SetFrames(p.walking)
		}
	}

	p.clamp()
	p.anim.Advance()
}

// clamp lands an ascending player that reached the ground and pins a
// grounded player to the resting position of its current frame.
func (p *Player) clamp() {
	rest := p.restY()
	if p.state == Ascending {
		if p.y >= rest {
			p.y = rest
			p.vy = 0
			p.state = Grounded
			p.jumpStart = time.Time{}
		}
		return
	}
	p.y = rest
}

func (p *Player) restY() float64 {
	_, h := p.anim.Size()
	return p.groundLevel - float64(h)
}

// CheckCollision tests the player's mask against every obstacle in order
// and marks the player dead on the first hit.
func (p *Player) CheckCollision(obstacles []Obstacle) bool {
	if !p.alive {
		return false
	}
	mask := p.anim.Current().Mask
	for i := range obstacles {
		o := &obstacles[i]
		dx := int(o.X - p.x)
		dy := int(o.Y - p.y)
		if mask.Overlaps(o.Frame().Mask, dx, dy) {
			p.alive = false
			return true
		}
	}
	return false
}

// UpdateScore derives the score from survival time. It is frozen once the
// player is dead.
func (p *Player) UpdateScore() {
	if !p.alive {
		return
	}
	p.score = int(math.Round(10 * p.Survival().Seconds()))
}

// Survival returns time since the current attempt started.
func (p *Player) Survival() time.Duration {
	return p.clock.Now().Sub(p.survivalStart)
}

// Position returns the top-left corner in world pixels.
func (p *Player) Position() (float64, float64) { return p.x, p.y }

// Velocity returns the vertical velocity in pixels per tick.
func (p *Player) Velocity() float64 { return p.vy }

// State returns the jump state.
func (p *Player) State() JumpState { return p.state }

// JumpStart returns when the current jump began; ok is false when grounded.
func (p *Player) JumpStart() (time.Time, bool) {
	return p.jumpStart, p.state == Ascending
}

// Alive reports whether the current attempt is still running.
func (p *Player) Alive() bool { return p.alive }

// Score returns the current score.
func (p *Player) Score() int { return p.score }

// Frame returns the displayed frame.
func (p *Player) Frame() sprite.Frame { return p.anim.Current() }

// Pose returns the active frame set name.
func (p *Player) Pose() string { return p.anim.Frames().Name() }
