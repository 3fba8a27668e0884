package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/logging"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagLogFile string
	flagNoAudio bool
	flagPixel   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the runner in this terminal.

Controls:
  Space/Up   - Jump
  Down       - Duck (while held)
  P/Esc      - Pause
  Ctrl+S     - Save a PNG screenshot to ~/.runner/screenshots
  ?          - Toggle help
  Q/Ctrl+C   - Quit

After a collision the game-over screen shows for a moment and a new run
starts by itself.

Difficulty options:
  easy   - The speed ramp stops at the second tier
  normal - The configured ramp
  hard   - Every tier arrives twice as early
  fixed  - No ramp, the speed never changes

Examples:
  runner play
  runner play --difficulty easy
  runner play --assets ./sprites --pixel
  runner play --seed 42 --no-audio`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.runner/runner.log)")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound cues")
	playCmd.Flags().BoolVar(&flagPixel, "pixel", false, "Nearest-neighbour scaling for crisp pixels")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logCfg := logging.DefaultFileConfig()
	logCfg.Path = flagLogFile
	logCfg.Level = flagLogLevel
	logger, logFile, err := logging.NewFile(logCfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cfg, pack, err := setup(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.FPS,
		Seed:     flagSeed,
	}

	var cues audio.Player = audio.Nop{}
	if cfg.Audio.Enabled && !flagNoAudio {
		speaker, closeSpeaker, err := openSpeaker(cfg.Audio)
		if err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer closeSpeaker()
			cues = speaker
		}
	}

	opts := tui.Options{
		Logger: logger,
		Pixel:  flagPixel,
	}
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		opts.ScreenshotDir = filepath.Join(home, ".runner", "screenshots")
	}

	game := runner.New(cfg, pack, rt,
		runner.WithCues(cues),
		runner.WithLogger(logger),
	)
	if err := tui.Run(game, rt, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
