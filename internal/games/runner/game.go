// Package runner implements the side-scrolling obstacle runner: a jumping,
// ducking player on a looping platform, obstacles spawned in seeded batches,
// pixel-mask collision, a time-based score and a speed ramp.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// State is a snapshot of the game for the platform layer.
type State struct {
	Score      int
	Alive      bool
	Paused     bool
	GameOver   bool // The death hold is running
	Attempt    int
	Best       int
	Speed      float64
	Multiplier float64
	Tier       int
	Obstacles  int
	Pose       string
}

// StepResult is returned from every Step.
type StepResult struct {
	State State
	Died  bool // The player died on this tick
	Reset bool // The hold expired and a new attempt started on this tick
	Quit  bool // Quit was requested; the tick still ran in full
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source. Tests pass a core.ManualClock.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithCues sets the audio cue player.
func WithCues(p audio.Player) Option {
	return func(g *Game) { g.cues = p }
}

// WithLogger sets the logger for attempt events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game owns the whole world and advances it one tick at a time.
type Game struct {
	cfg     config.RunnerConfig
	pack    *assets.Pack
	runtime core.RuntimeConfig
	clock   core.Clock
	cues    audio.Player
	logger  *log.Logger

	player    *Player
	spawner   *Spawner
	ramp      config.Ramp
	obstacles []Obstacle

	scroll float64
	tiles  [2]float64 // Left edges of the two ground tiles

	paused    bool
	holding   bool
	holdUntil time.Time

	ticks   int
	attempt int
	best    int
}

// New creates a game ready for its first tick.
func New(cfg config.RunnerConfig, pack *assets.Pack, runtime core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		pack:    pack,
		runtime: runtime,
		clock:   core.SystemClock{},
		cues:    audio.Nop{},
		logger:  log.New(io.Discard),
		ramp:    config.NewRamp(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(g)
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = g.clock.Now().UnixNano()
	}
	g.spawner = NewSpawner(cfg, pack.Cacti, pack.Flyer, seed, g.clock)
	g.player = NewPlayer(cfg, pack.Walking, pack.Ducking, g.clock, g.cues)
	g.reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Runner"
}

// reset starts a new attempt. Frames are reused; only state is rebuilt.
func (g *Game) reset() {
	g.player.Reset()
	clear(g.obstacles) // drop animations held by the backing array
	g.obstacles = g.obstacles[:0]
	g.tiles = [2]float64{0, g.cfg.PlatformWidth()}
	g.scroll = g.cfg.Platform.ScrollSpeed
	g.holding = false
	g.holdUntil = time.Time{}
	g.paused = false
	g.attempt++
	g.logger.Debug("attempt started", "attempt", g.attempt)
}

// Step advances the world by one tick.
//
// While the death hold runs the world is frozen and input is ignored. The
// first tick at or after the hold deadline starts a new attempt.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.ticks++
	quit := in.Has(core.ActionQuit)

	if g.holding {
		if g.clock.Now().Before(g.holdUntil) {
			return StepResult{State: g.State(), Quit: quit}
		}
		g.reset()
		g.applyRamp()
		return StepResult{State: g.State(), Reset: true, Quit: quit}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return StepResult{State: g.State(), Quit: quit}
	}

	g.scrollGround()
	g.player.Update(in)
	g.obstacles = updateObstacles(g.obstacles)

	died := g.player.CheckCollision(g.obstacles)
	g.player.UpdateScore()

	if died {
		g.die()
	}

	g.applyRamp()
	return StepResult{State: g.State(), Died: died, Quit: quit}
}

// scrollGround moves both tiles left. A tile that has fully left the
// screen wraps to the right edge and triggers a new obstacle batch.
func (g *Game) scrollGround() {
	w := g.cfg.PlatformWidth()
	for i := range g.tiles {
		g.tiles[i] -= g.scroll
		if g.tiles[i] < -w {
			g.tiles[i] = w - g.cfg.Platform.WrapOverlap
			g.obstacles = g.spawner.Spawn(g.obstacles, g.scroll)
		}
	}
}

func (g *Game) die() {
	score := g.player.Score()
	if score > g.best {
		g.best = score
	}
	g.cues.Play(audio.CueDeath)
	g.holding = true
	g.holdUntil = g.clock.Now().Add(g.cfg.Timing.DeathDelay)

	elapsed := g.player.Survival()
	g.logger.Info("attempt ended",
		"attempt", g.attempt,
		"score", score,
		"survived", elapsed.Round(time.Millisecond),
		"tier", g.ramp.Tier(elapsed),
		"ticks", g.ticks,
	)
}

// applyRamp recomputes scroll speed from survival time and pushes it to
// every live obstacle.
func (g *Game) applyRamp() {
	elapsed := g.player.Survival()
	g.scroll = g.ramp.Speed(g.cfg.Platform.ScrollSpeed, elapsed)
	setSpeeds(g.obstacles, g.scroll, g.cfg.Obstacles.AirborneSpeed)
}

// State returns a snapshot of the game.
func (g *Game) State() State {
	elapsed := g.player.Survival()
	return State{
		Score:      g.player.Score(),
		Alive:      g.player.Alive(),
		Paused:     g.paused,
		GameOver:   g.holding,
		Attempt:    g.attempt,
		Best:       g.best,
		Speed:      g.scroll,
		Multiplier: g.ramp.Multiplier(elapsed),
		Tier:       g.ramp.Tier(elapsed),
		Obstacles:  len(g.obstacles),
		Pose:       g.player.Pose(),
	}
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Obstacles returns the live obstacles in spawn order. The slice is owned
// by the game and valid until the next Step.
func (g *Game) Obstacles() []Obstacle {
	return g.obstacles
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Render draws the current frame: backdrop, ground, player, obstacles and
// the score. During the death hold only the game-over screen is drawn.
func (g *Game) Render(dst Canvas) {
	w := g.cfg.PlatformWidth()
	h := float64(g.cfg.Window.Height)

	if g.holding {
		dst.Fill(ColorBlack)
		dst.Text(w/2, h/2, fmt.Sprintf("Game Over! Score: %d", g.player.Score()), ColorGameOver)
		return
	}

	if g.pack.Background != nil {
		dst.Blit(g.pack.Background, 0, 0)
	} else {
		dst.Fill(ColorBackdrop)
	}

	top := g.cfg.GroundLevel()
	for _, x := range g.tiles {
		if g.pack.Platform != nil {
			dst.Blit(g.pack.Platform, x, top)
		} else {
			dst.FillRect(x, top, w*g.cfg.Platform.TileScale, g.cfg.PlatformHeight(), ColorPlatform)
		}
	}

	px, py := g.player.Position()
	dst.Blit(g.player.Frame().Image, px, py)

	for i := range g.obstacles {
		o := &g.obstacles[i]
		dst.Blit(o.Frame().Image, o.X, o.Y)
	}

	dst.Text(w/2, h*0.1, fmt.Sprintf("Score: %d", g.player.Score()), ColorScore)

	if g.paused {
		dst.Text(w/2, h/2, "PAUSED", ColorWhite)
	}
}
