package runner

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

func newTestSpawner(cfg config.RunnerConfig, seed int64) *Spawner {
	pack := assets.Builtin(assets.LayoutFor(cfg))
	clock := core.NewManualClock(time.Unix(0, 0))
	return NewSpawner(cfg, pack.Cacti, pack.Flyer, seed, clock)
}

func TestSpawnGroundPlacement(t *testing.T) {
	cfg := testConfig()
	s := newTestSpawner(cfg, 11)
	w := cfg.PlatformWidth()

	obs := s.Spawn(nil, 2)
	if len(obs) != cfg.Obstacles.BatchSize {
		t.Fatalf("batch size = %d", len(obs))
	}
	if obs[0].X != w {
		t.Errorf("first obstacle at %v, expected %v", obs[0].X, w)
	}
	for i := range obs {
		o := &obs[i]
		if o.Kind != KindGround || o.VX != 2 {
			t.Errorf("obstacle %d: kind=%v vx=%v", i, o.Kind, o.VX)
		}
		if o.Y+float64(o.Height()) != cfg.GroundLevel() {
			t.Errorf("obstacle %d not standing on ground", i)
		}
		if i == 0 {
			continue
		}
		gap := o.X - obs[i-1].X
		if gap < cfg.Obstacles.GapMin*w || gap > cfg.Obstacles.GapMax*w {
			t.Errorf("gap %d = %v outside [%v, %v]", i, gap, cfg.Obstacles.GapMin*w, cfg.Obstacles.GapMax*w)
		}
	}
}

func TestSpawnAirborneCompanions(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.AirborneOdds = 1 // every ground obstacle brings one
	s := newTestSpawner(cfg, 5)
	w := cfg.PlatformWidth()
	h := float64(cfg.Window.Height)

	obs := s.Spawn(nil, 2)
	if len(obs) != 2*cfg.Obstacles.BatchSize {
		t.Fatalf("spawned %d obstacles", len(obs))
	}
	for i := 1; i < len(obs); i += 2 {
		o := &obs[i]
		if o.Kind != KindAirborne {
			t.Fatalf("obstacle %d kind = %v", i, o.Kind)
		}
		if o.X < w || o.X > 2*w {
			t.Errorf("airborne x = %v outside [%v, %v]", o.X, w, 2*w)
		}
		if o.Y < h/2 || o.Y > cfg.GroundLevel()-float64(o.Height()) {
			t.Errorf("airborne y = %v", o.Y)
		}
		if o.VX != 2*cfg.Obstacles.AirborneSpeed {
			t.Errorf("airborne vx = %v", o.VX)
		}
	}
}

func TestSpawnDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.AirborneOdds = 2
	a := newTestSpawner(cfg, 99).Spawn(nil, 1)
	b := newTestSpawner(cfg, 99).Spawn(nil, 1)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].X != b[i].X || a[i].Y != b[i].Y {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestUpdateObstaclesCullsInOrder(t *testing.T) {
	frame := sprite.NewFrame(opaque(4, 4))
	obs := []Obstacle{
		NewGroundObstacle(frame, -3, 0, 2), // right edge leaves the screen
		NewGroundObstacle(frame, 10, 0, 2),
		NewGroundObstacle(frame, -4, 0, 0), // right edge exactly at 0 stays
		NewGroundObstacle(frame, 20, 0, 2),
	}

	kept := updateObstacles(obs)
	if len(kept) != 3 {
		t.Fatalf("kept %d obstacles", len(kept))
	}
	want := []float64{8, -4, 18}
	for i, x := range want {
		if kept[i].X != x {
			t.Errorf("kept[%d].X = %v, expected %v", i, kept[i].X, x)
		}
	}
}

func opaque(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{A: 255})
		}
	}
	return img
}
