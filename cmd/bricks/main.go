// bricks is a terminal brick-breaker: deflect the ball with the paddle,
// shatter every brick, and try not to run out of tokens.
//
// Usage:
//
//	bricks play            - Play the game
//
// Global flags:
//
//	--fps <rate>    - Tick rate (default: 60)
//	--seed <value>  - RNG seed for reproducible serves (0 = time-based)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFPS  int
	flagSeed int64
)

var logger = log.New(os.Stderr)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Breaking Bricks - a terminal brick breaker",
	Long: `Breaking Bricks is a terminal arcade game: a paddle, a ball, and a
wall of bricks. Every brick is worth more the faster the ball is moving
when it shatters; every miss costs a token, and the game ends when the
tokens run out.

Examples:
  bricks play
  bricks play --difficulty hard
  bricks play --seed 42 --config ./my-tuning.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
}
