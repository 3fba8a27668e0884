// Package assets provides the runner's frame sets: a directory loader for
// user-supplied images and a builtin pixel-art pack.
package assets

import (
	"fmt"
	"image"
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// Pack is every image the game needs.
type Pack struct {
	Walking    *sprite.FrameSet
	Ducking    *sprite.FrameSet // Falls back to Walking when no ducking frames exist
	Flyer      *sprite.FrameSet
	Cacti      []sprite.Frame
	Background image.Image // Nil means a flat fill
	Platform   image.Image // Nil means a flat fill
}

// Layout carries the pixel sizes that scaled images are fitted to.
type Layout struct {
	Width          int // Window width
	Height         int // Window height
	TileWidth      int // Width of one ground tile image
	PlatformHeight int
}

// LayoutFor derives the asset layout from the runner config.
func LayoutFor(cfg config.RunnerConfig) Layout {
	return Layout{
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		TileWidth:      int(math.Ceil(cfg.PlatformWidth() * cfg.Platform.TileScale)),
		PlatformHeight: int(math.Ceil(cfg.PlatformHeight())),
	}
}

// Summary describes a pack for logs and the assets command.
func (p *Pack) Summary() []string {
	lines := []string{
		describeSet(p.Walking),
		describeSet(p.Ducking),
		describeSet(p.Flyer),
		fmt.Sprintf("cacti: %d images", len(p.Cacti)),
	}
	if p.Background != nil {
		b := p.Background.Bounds()
		lines = append(lines, fmt.Sprintf("background: %dx%d", b.Dx(), b.Dy()))
	}
	if p.Platform != nil {
		b := p.Platform.Bounds()
		lines = append(lines, fmt.Sprintf("platform: %dx%d", b.Dx(), b.Dy()))
	}
	return lines
}

func describeSet(fs *sprite.FrameSet) string {
	f := fs.Frame(0)
	return fmt.Sprintf("%s: %d frames, %dx%d", fs.Name(), fs.Len(), f.Width(), f.Height())
}
