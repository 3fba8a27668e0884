package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config sources reported by Load.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.runner/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. The returned string names the layer that was used.
func Load(customPath string) (RunnerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return RunnerConfig{}, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RunnerConfig{}, SourceCustom, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", "runner.yaml")); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg, err := decode(defaultRunnerYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultRunnerConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// tryFile decodes an optional config layer. Missing, unreadable or invalid
// files fall through to the next layer.
func tryFile(path string) (RunnerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, false
	}
	cfg, err := decode(data)
	if err != nil || cfg.Validate() != nil {
		return RunnerConfig{}, false
	}
	return cfg, true
}

func decode(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", filename)
}

// Validate reports every setting the game cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Platform.YRatio <= 0 || c.Platform.YRatio > 1 {
		errs = append(errs, fmt.Errorf("platform.y_ratio must be in (0, 1], got %v", c.Platform.YRatio))
	}
	if c.Platform.HeightRatio <= 0 || c.Platform.HeightRatio > 1 {
		errs = append(errs, fmt.Errorf("platform.height_ratio must be in (0, 1], got %v", c.Platform.HeightRatio))
	}
	if c.Platform.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("platform.scroll_speed must be positive, got %v", c.Platform.ScrollSpeed))
	}
	if c.Platform.TileScale < 1 {
		errs = append(errs, fmt.Errorf("platform.tile_scale must be at least 1, got %v", c.Platform.TileScale))
	}
	if c.Player.MaxUpwardVelocity >= 0 {
		errs = append(errs, fmt.Errorf("player.max_upward_velocity must be negative, got %v", c.Player.MaxUpwardVelocity))
	}
	if c.Player.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("player.gravity must be positive, got %v", c.Player.Gravity))
	}
	if c.Obstacles.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.batch_size must be positive, got %d", c.Obstacles.BatchSize))
	}
	if c.Obstacles.GapMin < 0 || c.Obstacles.GapMin > c.Obstacles.GapMax {
		errs = append(errs, fmt.Errorf("obstacles gap range [%v, %v] is invalid", c.Obstacles.GapMin, c.Obstacles.GapMax))
	}
	if c.Obstacles.AirborneSpeed <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.airborne_speed must be positive, got %v", c.Obstacles.AirborneSpeed))
	}
	if c.Obstacles.AirborneOdds < 0 {
		errs = append(errs, fmt.Errorf("obstacles.airborne_odds must not be negative, got %d", c.Obstacles.AirborneOdds))
	}
	if c.Timing.FPS <= 0 {
		errs = append(errs, fmt.Errorf("timing.fps must be positive, got %d", c.Timing.FPS))
	}
	if c.Timing.DeathDelay < 0 {
		errs = append(errs, fmt.Errorf("timing.death_delay must not be negative, got %v", c.Timing.DeathDelay))
	}
	if err := c.Difficulty.validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (d DifficultyConfig) validate() error {
	if d.Ceiling < 1 {
		return fmt.Errorf("difficulty.ceiling must be at least 1, got %v", d.Ceiling)
	}
	prevAfter := time.Duration(-1)
	prevMult := 1.0
	for i, t := range d.Tiers {
		if t.After <= prevAfter {
			return fmt.Errorf("difficulty.tiers[%d]: thresholds must increase", i)
		}
		if t.Multiplier < prevMult {
			return fmt.Errorf("difficulty.tiers[%d]: multipliers must not decrease", i)
		}
		prevAfter = t.After
		prevMult = t.Multiplier
	}
	return nil
}
