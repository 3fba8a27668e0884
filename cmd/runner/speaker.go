//go:build !noaudio

package main

import (
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/audio/sound"
	"github.com/vovakirdan/tui-runner/internal/config"
)

// openSpeaker starts speaker output for local play.
func openSpeaker(cfg config.AudioConfig) (audio.Player, func(), error) {
	sm := sound.NewManager(cfg)
	if err := sm.Initialize(); err != nil {
		return nil, nil, err
	}
	return sm, sm.Cleanup, nil
}
