package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration: a 32x24 board
// (640x480 pixels at 20 pixels per cell) at 15 ticks per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    32,
			Height:   24,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			Initial: 15,
			Min:     1,
			Max:     60,
			Step:    1,
		},
		Colors: ColorConfig{
			Snake:  "green",
			Head:   "bright_green",
			Food:   "red",
			Border: "cyan",
		},
		WinPause: 2 * time.Second,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
