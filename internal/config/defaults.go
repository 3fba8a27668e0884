package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Window: WindowConfig{
			Width:  320,
			Height: 200,
		},
		Platform: PlatformConfig{
			HeightRatio: 0.15,
			YRatio:      0.85,
			ScrollSpeed: 1.86,
			WrapOverlap: 8,
			TileScale:   1.2,
		},
		Player: PlayerConfig{
			X:                 10,
			MaxUpwardVelocity: -2.54,
			Gravity:           4.6,
			AnimationInterval: 250 * time.Millisecond,
		},
		Obstacles: ObstacleConfig{
			BatchSize:         4,
			GapMin:            0.3,
			GapMax:            0.5,
			AirborneSpeed:     1.25,
			AirborneOdds:      0,
			AnimationInterval: 250 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Ceiling: 2.45,
			Tiers: []Tier{
				{After: 20 * time.Second, Multiplier: 1.25},
				{After: 40 * time.Second, Multiplier: 1.56},
				{After: 60 * time.Second, Multiplier: 1.95},
				{After: 80 * time.Second, Multiplier: 2.45},
			},
		},
		Timing: TimingConfig{
			FPS:        60,
			DeathDelay: time.Second,
		},
		Input: InputConfig{
			HoldWindow: 600 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
