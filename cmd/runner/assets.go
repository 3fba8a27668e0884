package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets [dir]",
	Short: "Check an asset directory",
	Long: `Load an asset directory the same way play does and list what was found.
Without an argument the builtin pack is described.

Expected layout:
  <dir>/player_sprites/      walking*.png, ducking*.png (ducking is optional)
  <dir>/enemy_sprites/       flying obstacle frames, any names
  <dir>/background_sprites/  background*.png, platform*.png, cacti*.png

Frames are ordered by file name. PNG, JPEG and GIF are accepted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAssets,
}

func runAssets(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	dir := flagAssets
	if len(args) == 1 {
		dir = args[0]
	}

	pack, err := loadPack(cfg, dir)
	if err != nil {
		return err
	}

	name := dir
	if name == "" {
		name = "builtin"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Assets: %s\n\n", name)
	for _, line := range pack.Summary() {
		fmt.Fprintf(out, "  %s\n", line)
	}
	if pack.Background == nil {
		fmt.Fprintln(out, "  background: none, flat fill")
	}
	if pack.Platform == nil {
		fmt.Fprintln(out, "  platform: none, flat fill")
	}

	l := assets.LayoutFor(cfg)
	fmt.Fprintf(out, "\nWindow %dx%d, platform tiles %dx%d\n", l.Width, l.Height, l.TileWidth, l.PlatformHeight)
	return nil
}
