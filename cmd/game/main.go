// color-game is a single-player color guessing game: name the color of the swatch
// by clicking one of four buttons, ten rounds per game.
//
// Usage:
//
//	color-game [flags]
//
// Flags:
//
//	--config <path>      - YAML config file (window, rounds, pauses, palette, font)
//	--seed <value>       - RNG seed for reproducible rounds (0 = time based)
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--show-fps           - Draw FPS and heap counters
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"color-game/internal/logger"
)

var (
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagShowFPS  bool
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "color-game",
	Short: "Color Guessing Game - name the color of the swatch",
	Long: `Color Guessing Game shows a colored square and four color names.
Click the name that matches the square. Each correct guess scores a point;
after ten rounds the final score is shown.

Close the window at any time to quit.

Examples:
  color-game
  color-game --seed 42
  color-game --config ./game.yaml --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", logger.DefaultLevel, "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show FPS and memory counters")
}
