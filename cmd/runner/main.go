// runner is a side-scrolling obstacle runner for the terminal.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner serve             - Start SSH server for remote play
//	runner assets [dir]      - Check an asset directory
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--assets <dir>        - Asset directory (default: builtin pixel art)
//	--fps <rate>          - Override the tick rate
//	--seed <value>        - RNG seed for a reproducible course
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump and duck through an endless obstacle course",
	Long: `Runner is a side-scrolling obstacle game for the terminal.

The player runs along a looping platform. Jump over ground obstacles,
duck under flying ones, and survive as long as possible: the score is
ten points per second and the course speeds up the longer you last.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  assets   - Check an asset directory
  config   - Print the effective configuration

Examples:
  runner play
  runner play --difficulty hard --seed 42
  runner play --assets ./my-sprites
  runner serve --ssh :2222
  runner config > runner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (default: builtin pixel art)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
}
