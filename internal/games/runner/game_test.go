package runner

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const testTick = 20 * time.Millisecond

func testConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Timing.FPS = 50
	cfg.Obstacles.AirborneOdds = 1 << 30 // effectively ground only
	return cfg
}

func newTestGame(t *testing.T, cfg config.RunnerConfig, seed int64) (*Game, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Unix(1_700_000_000, 0))
	pack := assets.Builtin(assets.LayoutFor(cfg))
	g := New(cfg, pack, core.RuntimeConfig{Seed: seed}, WithClock(clock))
	return g, clock
}

func step(g *Game, clock *core.ManualClock, in core.InputFrame) StepResult {
	clock.Advance(testTick)
	return g.Step(in)
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Press(a)
	return in
}

func hold(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Hold(a)
	return in
}

// runUntilDeath steps with no input until the player dies. It returns the
// death tick and the score shown on the tick before it.
func runUntilDeath(t *testing.T, g *Game, clock *core.ManualClock, limit int) (int, int) {
	t.Helper()
	last := g.State().Score
	for i := 1; i <= limit; i++ {
		res := step(g, clock, core.NewInputFrame())
		if res.Died {
			return i, last
		}
		last = res.State.Score
	}
	t.Fatalf("player survived %d ticks without input", limit)
	return 0, 0
}

func TestIdlePlayerDiesAndGameResets(t *testing.T) {
	cfg := testConfig()
	g, clock := newTestGame(t, cfg, 42)

	_, want := runUntilDeath(t, g, clock, 3000)

	st := g.State()
	if st.Alive || !st.GameOver {
		t.Fatalf("after death: alive=%v gameOver=%v", st.Alive, st.GameOver)
	}
	// Collision is checked before the score update, so the death tick keeps
	// the previous tick's score
	if st.Score != want {
		t.Errorf("score at death = %d, expected %d", st.Score, want)
	}
	if st.Best != want {
		t.Errorf("best = %d, expected %d", st.Best, want)
	}

	px, py := g.Player().Position()
	frozenX := g.Obstacles()[0].X

	holdTicks := int(cfg.Timing.DeathDelay / testTick)
	for i := 1; i < holdTicks; i++ {
		res := step(g, clock, press(core.ActionJump))
		if res.Reset {
			t.Fatalf("reset after %d hold ticks, expected %d", i, holdTicks)
		}
		if res.State.Score != want {
			t.Fatalf("score changed during hold: %d", res.State.Score)
		}
		if x, y := g.Player().Position(); x != px || y != py {
			t.Fatal("player moved during hold")
		}
		if g.Obstacles()[0].X != frozenX {
			t.Fatal("obstacles moved during hold")
		}
	}

	res := step(g, clock, core.NewInputFrame())
	if !res.Reset {
		t.Fatalf("no reset after %d hold ticks", holdTicks)
	}
	if !res.State.Alive || res.State.GameOver || res.State.Score != 0 {
		t.Errorf("after reset: %+v", res.State)
	}
	if res.State.Obstacles != 0 || res.State.Attempt != 2 {
		t.Errorf("after reset: obstacles=%d attempt=%d", res.State.Obstacles, res.State.Attempt)
	}
	if g.Player().State() != Grounded {
		t.Error("player not grounded after reset")
	}
	if res.State.Speed != cfg.Platform.ScrollSpeed {
		t.Errorf("speed after reset = %v", res.State.Speed)
	}
	for i, o := range g.obstacles[:cap(g.obstacles)] {
		if o != (Obstacle{}) {
			t.Errorf("backing array slot %d still holds %+v", i, o)
		}
	}
}

func TestSameSeedSameDeathTick(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.AirborneOdds = 0

	g1, c1 := newTestGame(t, cfg, 7)
	g2, c2 := newTestGame(t, cfg, 7)

	n1, _ := runUntilDeath(t, g1, c1, 5000)
	n2, _ := runUntilDeath(t, g2, c2, 5000)
	if n1 != n2 {
		t.Errorf("same seed died at ticks %d and %d", n1, n2)
	}
	if g1.State().Score != g2.State().Score {
		t.Errorf("scores differ: %d vs %d", g1.State().Score, g2.State().Score)
	}
}

func TestJumpArc(t *testing.T) {
	cfg := testConfig()
	g, clock := newTestGame(t, cfg, 1)
	p := g.Player()
	_, rest := p.Position()

	step(g, clock, press(core.ActionJump))
	if p.State() != Ascending {
		t.Fatalf("state after jump = %v", p.State())
	}
	if p.Velocity() != cfg.Player.MaxUpwardVelocity {
		t.Errorf("first jump velocity = %v, expected %v", p.Velocity(), cfg.Player.MaxUpwardVelocity)
	}
	start, ok := p.JumpStart()
	if !ok {
		t.Fatal("jump start not recorded")
	}

	y := rest + cfg.Player.MaxUpwardVelocity
	landed := false
	for i := 0; i < 200; i++ {
		step(g, clock, core.NewInputFrame())
		_, py := p.Position()
		if py > rest {
			t.Fatalf("player below ground: y=%v rest=%v", py, rest)
		}
		if p.State() == Grounded {
			if py != rest || p.Velocity() != 0 {
				t.Errorf("landing: y=%v v=%v", py, p.Velocity())
			}
			if _, ok := p.JumpStart(); ok {
				t.Error("jump start still set after landing")
			}
			landed = true
			break
		}
		wantV := cfg.Player.MaxUpwardVelocity + cfg.Player.Gravity*clock.Now().Sub(start).Seconds()
		if p.Velocity() != wantV {
			t.Fatalf("velocity = %v, expected %v", p.Velocity(), wantV)
		}
		y += wantV
		if py != y {
			t.Fatalf("y = %v, expected %v", py, y)
		}
	}
	if !landed {
		t.Fatal("player never landed")
	}
}

func TestJumpIgnoredWhileAscending(t *testing.T) {
	g, clock := newTestGame(t, testConfig(), 1)
	p := g.Player()

	step(g, clock, press(core.ActionJump))
	start, _ := p.JumpStart()
	step(g, clock, press(core.ActionJump))
	again, _ := p.JumpStart()
	if !again.Equal(start) {
		t.Error("second jump press restarted the jump")
	}
}

func TestDuckSwapsPoseAndPinsToGround(t *testing.T) {
	cfg := testConfig()
	g, clock := newTestGame(t, cfg, 1)
	p := g.Player()

	step(g, clock, hold(core.ActionDuck))
	if p.Pose() != "ducking" {
		t.Fatalf("pose while ducking = %q", p.Pose())
	}
	_, y := p.Position()
	if got := y + float64(p.Frame().Height()); got != cfg.GroundLevel() {
		t.Errorf("ducking feet at %v, ground at %v", got, cfg.GroundLevel())
	}

	step(g, clock, core.NewInputFrame())
	if p.Pose() != "walking" {
		t.Errorf("pose after release = %q", p.Pose())
	}
	_, y = p.Position()
	if got := y + float64(p.Frame().Height()); got != cfg.GroundLevel() {
		t.Errorf("walking feet at %v, ground at %v", got, cfg.GroundLevel())
	}
}

func TestDuckIgnoredMidAir(t *testing.T) {
	g, clock := newTestGame(t, testConfig(), 1)
	p := g.Player()

	step(g, clock, press(core.ActionJump))
	step(g, clock, hold(core.ActionDuck))
	if p.Pose() != "walking" {
		t.Errorf("pose mid-air = %q", p.Pose())
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g, clock := newTestGame(t, testConfig(), 1)
	step(g, clock, core.NewInputFrame())
	tiles := g.tiles

	res := step(g, clock, press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause not applied")
	}
	step(g, clock, core.NewInputFrame())
	if g.tiles != tiles {
		t.Error("ground moved while paused")
	}

	res = step(g, clock, press(core.ActionPause))
	if res.State.Paused {
		t.Fatal("pause not released")
	}
	if g.tiles == tiles {
		t.Error("ground did not move after resume")
	}
}

func TestQuitStillRunsTick(t *testing.T) {
	g, clock := newTestGame(t, testConfig(), 1)
	before := g.tiles[0]
	res := step(g, clock, press(core.ActionQuit))
	if !res.Quit {
		t.Error("quit not reported")
	}
	if g.tiles[0] == before {
		t.Error("tick did not run on quit")
	}
}

func TestGroundWrapSpawnsBatch(t *testing.T) {
	cfg := testConfig()
	g, clock := newTestGame(t, cfg, 3)
	w := cfg.PlatformWidth()

	ticks := int(math.Floor(w/cfg.Platform.ScrollSpeed)) + 1
	for i := 0; i < ticks; i++ {
		step(g, clock, core.NewInputFrame())
	}
	if got := len(g.Obstacles()); got != cfg.Obstacles.BatchSize {
		t.Fatalf("obstacles after first wrap = %d, expected %d", got, cfg.Obstacles.BatchSize)
	}
	if g.tiles[0] != w-cfg.Platform.WrapOverlap {
		t.Errorf("wrapped tile at %v", g.tiles[0])
	}
}

func TestRampRaisesSpeed(t *testing.T) {
	cfg := testConfig()
	g, clock := newTestGame(t, cfg, 1)

	clock.Advance(21 * time.Second)
	res := step(g, clock, core.NewInputFrame())

	want := cfg.Platform.ScrollSpeed * cfg.Difficulty.Tiers[0].Multiplier
	if math.Abs(res.State.Speed-want) > 1e-9 {
		t.Errorf("speed after 21s = %v, expected %v", res.State.Speed, want)
	}
	if res.State.Tier != 0 {
		t.Errorf("tier = %d", res.State.Tier)
	}
}

func TestRampPushesSpeedToObstacles(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.AirborneOdds = 1 // every ground obstacle brings a flyer
	g, clock := newTestGame(t, cfg, 4)

	for i := 0; i < 1000 && len(g.Obstacles()) == 0; i++ {
		step(g, clock, core.NewInputFrame())
	}
	if len(g.Obstacles()) != 2*cfg.Obstacles.BatchSize {
		t.Fatalf("obstacles after first wrap = %d", len(g.Obstacles()))
	}

	clock.Advance(21 * time.Second)
	res := step(g, clock, core.NewInputFrame())

	scroll := cfg.Platform.ScrollSpeed * cfg.Difficulty.Tiers[0].Multiplier
	if math.Abs(res.State.Speed-scroll) > 1e-9 {
		t.Fatalf("speed after 21s = %v, expected %v", res.State.Speed, scroll)
	}

	var ground, airborne int
	for i := range g.Obstacles() {
		o := &g.Obstacles()[i]
		want := scroll
		if o.Kind == KindAirborne {
			want = scroll * cfg.Obstacles.AirborneSpeed
			airborne++
		} else {
			ground++
		}
		if math.Abs(o.VX-want) > 1e-9 {
			t.Errorf("obstacle %d (%v) vx = %v, expected %v", i, o.Kind, o.VX, want)
		}
	}
	if ground == 0 || airborne == 0 {
		t.Fatalf("ground=%d airborne=%d after the ramp", ground, airborne)
	}
}

func TestAirborneObstacleAnimates(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.AirborneOdds = 1
	g, clock := newTestGame(t, cfg, 4)

	for i := 0; i < 1000 && len(g.Obstacles()) == 0; i++ {
		step(g, clock, core.NewInputFrame())
	}

	var flyer *Obstacle
	for i := range g.Obstacles() {
		if g.Obstacles()[i].Kind == KindAirborne {
			flyer = &g.Obstacles()[i]
			break
		}
	}
	if flyer == nil {
		t.Fatal("no airborne obstacle spawned")
	}

	before := flyer.anim.Index()
	x := flyer.X
	step(g, clock, core.NewInputFrame())
	if flyer.anim.Index() != before {
		t.Fatal("flyer changed frame before its interval elapsed")
	}
	if flyer.X >= x {
		t.Errorf("flyer did not move left: %v -> %v", x, flyer.X)
	}

	clock.Advance(cfg.Obstacles.AnimationInterval)
	step(g, clock, core.NewInputFrame())
	if want := (before + 1) % g.pack.Flyer.Len(); flyer.anim.Index() != want {
		t.Errorf("flyer frame = %d, expected %d", flyer.anim.Index(), want)
	}
}

type canvasOp struct {
	kind string
	text string
	c    color.Color
}

type recordingCanvas struct {
	ops []canvasOp
}

func (r *recordingCanvas) Fill(c color.Color) {
	r.ops = append(r.ops, canvasOp{kind: "fill", c: c})
}

func (r *recordingCanvas) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, canvasOp{kind: "rect", c: c})
}

func (r *recordingCanvas) Blit(img image.Image, x, y float64) {
	r.ops = append(r.ops, canvasOp{kind: "blit"})
}

func (r *recordingCanvas) Text(cx, cy float64, text string, c color.Color) {
	r.ops = append(r.ops, canvasOp{kind: "text", text: text, c: c})
}

func (r *recordingCanvas) kinds() string {
	k := make([]string, len(r.ops))
	for i, op := range r.ops {
		k[i] = op.kind
	}
	return strings.Join(k, ",")
}

func TestRenderOrder(t *testing.T) {
	g, _ := newTestGame(t, testConfig(), 1)

	var c recordingCanvas
	g.Render(&c)
	// background, two tiles, player, score
	if got := c.kinds(); got != "blit,blit,blit,blit,text" {
		t.Fatalf("render ops = %s", got)
	}
	if last := c.ops[len(c.ops)-1]; last.text != "Score: 0" || last.c != ColorScore {
		t.Errorf("score overlay = %+v", last)
	}
}

func TestRenderGameOver(t *testing.T) {
	g, clock := newTestGame(t, testConfig(), 42)
	runUntilDeath(t, g, clock, 3000)

	var c recordingCanvas
	g.Render(&c)
	if got := c.kinds(); got != "fill,text" {
		t.Fatalf("render ops = %s", got)
	}
	want := fmt.Sprintf("Game Over! Score: %d", g.State().Score)
	if c.ops[1].text != want || c.ops[1].c != ColorGameOver {
		t.Errorf("game over text = %+v", c.ops[1])
	}
}
