//go:build noaudio

package main

import (
	"errors"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
)

// openSpeaker always fails in builds without a speaker backend.
func openSpeaker(config.AudioConfig) (audio.Player, func(), error) {
	return nil, nil, errors.New("built with the noaudio tag")
}
