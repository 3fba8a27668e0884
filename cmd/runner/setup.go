package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
)

// loadConfig resolves the config file, then applies the CLI overrides.
func loadConfig() (config.RunnerConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, source, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("config: %w", err)
	}
	return cfg, source, nil
}

// loadPack loads the asset directory, or the builtin pack when none is set.
func loadPack(cfg config.RunnerConfig, dir string) (*assets.Pack, error) {
	layout := assets.LayoutFor(cfg)
	if dir == "" {
		return assets.Builtin(layout), nil
	}
	return assets.LoadDir(dir, layout)
}

// setup loads config and assets and logs what was used.
func setup(logger *log.Logger) (config.RunnerConfig, *assets.Pack, error) {
	cfg, source, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty, "fps", cfg.Timing.FPS)

	pack, err := loadPack(cfg, flagAssets)
	if err != nil {
		return cfg, nil, err
	}
	from := flagAssets
	if from == "" {
		from = "builtin"
	}
	logger.Info("assets loaded", "from", from, "sets", pack.Summary())
	return cfg, pack, nil
}
