// huematch is a terminal color-matching game.
//
// Usage:
//
//	huematch play         - Play in the current terminal
//	huematch scores       - Show past session results
//	huematch settings     - Show or change persisted settings
//	huematch serve        - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.huematch/huematch.db)
//	--config <path>  - Path to a custom config YAML
//	--seed <value>   - Set RNG seed for reproducible target colors
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "huematch",
	Short: "Huematch - Match the color in your terminal",
	Long: `Huematch is a terminal color-matching game. Each round shows a random
target color; mix your own with RGB sliders or a hex code and submit
before the timer runs out. Matches above the success threshold score a
point and refill the clock.

Available commands:
  play      - Play in the current terminal
  scores    - View past session results
  settings  - Show or change persisted settings
  serve     - Start SSH server for remote play

Examples:
  huematch play
  huematch play --seed 42
  huematch scores
  huematch settings set blind_mode true
  huematch serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.huematch/huematch.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}
