// snake is a wrap-around Snake game for the terminal.
//
// Usage:
//
//	snake                 - Play
//	snake config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible play (0 = time based)
//	--speed <rate>      - Initial ticks per second (0 = from config)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write in-game logs to a file
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagSpeed    int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("snake", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a wrap-around snake game for your terminal",
	Long: `Steer the snake to the food. Each meal makes it one segment longer.
The board wraps around at every edge, and biting your own tail starts
you over from a single segment. Fill the whole board to win.

Controls:
  Arrows/WASD  - Steer
  +/-          - Faster/slower
  P/Space      - Pause
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  snake
  snake --speed 8
  snake --seed 42 --log-file snake.log --log-level debug
  snake --config ./my-snake.yaml
  snake config > ~/.snake/snake.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 0, "Initial speed in ticks per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write in-game logs to this file")

	rootCmd.AddCommand(configCmd)
}
