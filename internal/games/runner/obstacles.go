package runner

import (
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// ObstacleKind tags the obstacle variant.
type ObstacleKind int

const (
	KindGround ObstacleKind = iota
	KindAirborne
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	if k == KindAirborne {
		return "airborne"
	}
	return "ground"
}

// Obstacle is something the player must avoid. Ground obstacles carry a
// single static frame; airborne obstacles animate.
type Obstacle struct {
	Kind ObstacleKind
	X, Y float64 // Top-left corner
	VX   float64 // Leftward speed in pixels per tick

	frame sprite.Frame     // KindGround
	anim  *sprite.Animated // KindAirborne
}

// NewGroundObstacle creates a static obstacle.
func NewGroundObstacle(frame sprite.Frame, x, y, vx float64) Obstacle {
	return Obstacle{Kind: KindGround, X: x, Y: y, VX: vx, frame: frame}
}

// NewAirborneObstacle creates an animated flying obstacle.
func NewAirborneObstacle(anim *sprite.Animated, x, y, vx float64) Obstacle {
	return Obstacle{Kind: KindAirborne, X: x, Y: y, VX: vx, anim: anim}
}

// Update moves the obstacle left and advances its animation.
func (o *Obstacle) Update() {
	o.X -= o.VX
	switch o.Kind {
	case KindAirborne:
		o.anim.Advance()
	case KindGround:
	}
}

// Frame returns the displayed frame.
func (o *Obstacle) Frame() sprite.Frame {
	if o.Kind == KindAirborne {
		return o.anim.Current()
	}
	return o.frame
}

// Width returns the displayed frame's width.
func (o *Obstacle) Width() int { return o.Frame().Width() }

// Height returns the displayed frame's height.
func (o *Obstacle) Height() int { return o.Frame().Height() }

// OffScreen reports whether the right edge has passed the left boundary.
func (o *Obstacle) OffScreen() bool {
	return o.X+float64(o.Width()) < 0
}

// updateObstacles moves every obstacle and drops those that left the
// screen, compacting in place without disturbing order.
func updateObstacles(obstacles []Obstacle) []Obstacle {
	kept := obstacles[:0]
	for i := range obstacles {
		o := obstacles[i]
		o.Update()
		if o.OffScreen() {
			continue
		}
		kept = append(kept, o)
	}
	// Clear the tail so dropped animations can be collected
	for i := len(kept); i < len(obstacles); i++ {
		obstacles[i] = Obstacle{}
	}
	return kept
}

// setSpeeds refreshes every obstacle's velocity from the scroll speed.
func setSpeeds(obstacles []Obstacle, scroll, airborneFactor float64) {
	for i := range obstacles {
		switch obstacles[i].Kind {
		case KindAirborne:
			obstacles[i].VX = scroll * airborneFactor
		case KindGround:
			obstacles[i].VX = scroll
		}
	}
}
