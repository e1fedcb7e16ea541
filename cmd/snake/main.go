// snake is a grid snake game for the terminal and the desktop.
//
// Usage:
//
//	snake play               - Play in the terminal (default backend)
//	snake play --backend X   - Play on another renderer backend
//	snake backends           - List renderer backends
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them; the terminal backend comes in through play.go
	_ "github.com/vovakirdan/snake/internal/platform/gui"
	_ "github.com/vovakirdan/snake/internal/platform/termbox"
)

var (
	// Global flags
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around a grid",
	Long: `Snake is the classic grid game: eat food to grow and score,
and avoid the walls and your own body.

Available commands:
  play      - Play a game
  backends  - Show all renderer backends
  config    - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard
  snake play --backend termbox --seed 42
  snake config --difficulty easy > ~/.snake/snake.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal backends own stdout/stderr)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
