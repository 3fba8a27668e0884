// Package config provides YAML-based configuration loading and the
// difficulty ramp for the runner.
package config

import "time"

// RunnerConfig contains every tuning constant the game depends on.
// It is loaded once at startup and never changed while a session runs.
type RunnerConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Platform   PlatformConfig   `yaml:"platform"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
}

// WindowConfig is the size of the play area in raster pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlatformConfig describes the looping ground.
type PlatformConfig struct {
	HeightRatio float64 `yaml:"height_ratio"` // Platform height as a fraction of window height
	YRatio      float64 `yaml:"y_ratio"`      // Ground level as a fraction of window height
	ScrollSpeed float64 `yaml:"scroll_speed"` // Base scroll speed, pixels per tick
	WrapOverlap float64 `yaml:"wrap_overlap"` // Pixels a wrapped tile overlaps its neighbour
	TileScale   float64 `yaml:"tile_scale"`   // Tile image width relative to the window width
}

// PlayerConfig defines the player's placement and jump physics.
type PlayerConfig struct {
	X                 float64       `yaml:"x"`
	MaxUpwardVelocity float64       `yaml:"max_upward_velocity"` // Negative, pixels per tick
	Gravity           float64       `yaml:"gravity"`             // Pixels per tick, per second of jump
	AnimationInterval time.Duration `yaml:"animation_interval"`
}

// ObstacleConfig defines spawning and motion of obstacles.
type ObstacleConfig struct {
	BatchSize         int           `yaml:"batch_size"`
	GapMin            float64       `yaml:"gap_min"` // Fraction of platform width
	GapMax            float64       `yaml:"gap_max"` // Fraction of platform width
	AirborneSpeed     float64       `yaml:"airborne_speed"`
	AirborneOdds      int           `yaml:"airborne_odds"` // 1 in N per ground obstacle, 0 = 4 * batch_size
	AnimationInterval time.Duration `yaml:"animation_interval"`
}

// DifficultyConfig defines the speed ramp over survival time.
type DifficultyConfig struct {
	Enabled bool    `yaml:"enabled"`
	Ceiling float64 `yaml:"ceiling"`
	Tiers   []Tier  `yaml:"tiers"`
}

// Tier is a speed multiplier that applies once survival time passes After.
type Tier struct {
	After      time.Duration `yaml:"after"`
	Multiplier float64       `yaml:"multiplier"`
}

// TimingConfig defines the loop rate and the death hold.
type TimingConfig struct {
	FPS        int           `yaml:"fps"`
	DeathDelay time.Duration `yaml:"death_delay"`
}

// InputConfig tunes input emulation on terminals.
type InputConfig struct {
	HoldWindow time.Duration `yaml:"hold_window"` // How long a press counts as "held"
}

// AudioConfig controls the cue player.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume"`
	SoundsDir string  `yaml:"sounds_dir"`
}

// PlatformWidth returns the width of one ground tile's logical span.
func (c RunnerConfig) PlatformWidth() float64 {
	return float64(c.Window.Width)
}

// PlatformHeight returns the platform height in pixels.
func (c RunnerConfig) PlatformHeight() float64 {
	return float64(c.Window.Height) * c.Platform.HeightRatio
}

// GroundLevel returns the y coordinate the player stands on.
func (c RunnerConfig) GroundLevel() float64 {
	return float64(c.Window.Height) * c.Platform.YRatio
}

// TickInterval returns the duration of one simulation tick.
func (c RunnerConfig) TickInterval() time.Duration {
	if c.Timing.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Timing.FPS)
}

// AirborneChance returns N for the 1-in-N airborne roll.
func (c RunnerConfig) AirborneChance() int {
	if c.Obstacles.AirborneOdds > 0 {
		return c.Obstacles.AirborneOdds
	}
	return 4 * c.Obstacles.BatchSize
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the difficulty ramp based on a preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		if len(cfg.Difficulty.Tiers) > 1 {
			cfg.Difficulty.Ceiling = cfg.Difficulty.Tiers[1].Multiplier
		}
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		tiers := make([]Tier, len(cfg.Difficulty.Tiers))
		for i, t := range cfg.Difficulty.Tiers {
			tiers[i] = Tier{After: t.After / 2, Multiplier: t.Multiplier}
		}
		cfg.Difficulty.Tiers = tiers
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}
