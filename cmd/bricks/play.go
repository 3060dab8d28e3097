package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quarterslot/bricks/internal/breakout"
	"github.com/quarterslot/bricks/internal/config"
	"github.com/quarterslot/bricks/internal/core"
	"github.com/quarterslot/bricks/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  ←/a, →/d  - Move the paddle
  Space     - Serve the ball
  P/Esc     - Pause
  R         - Restart (after game over)
  Q/Ctrl+C  - Quit

Difficulty presets:
  easy   - Slower ball, wider paddle, 5 tokens
  normal - The shipped defaults
  hard   - Faster ball, narrower paddle, 2 tokens`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Validate a custom config up front so a typo fails loudly instead of
	// silently falling back to defaults mid-session.
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			logger.Fatal("invalid config", "path", flagConfig, "err", err)
		}
	}

	cfg := core.DefaultRuntimeConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.Cols = w
		cfg.Rows = h
	} else {
		logger.Warn("could not detect terminal size, using defaults", "err", err)
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)

	if err := tui.Run(breakout.New(), cfg); err != nil {
		logger.Fatal("game exited with error", "err", err)
	}
}
