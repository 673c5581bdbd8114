// Package config provides YAML-based game configuration loading for the
// snake platform.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for the Snake game.
// It is read once at startup and never changes while a session runs.
type SnakeConfig struct {
	Board    BoardConfig   `yaml:"board"`
	Speed    SpeedConfig   `yaml:"speed"`
	Colors   ColorConfig   `yaml:"colors"`
	WinPause time.Duration `yaml:"win_pause"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Width    int `yaml:"width"`     // Cells
	Height   int `yaml:"height"`    // Cells
	CellSize int `yaml:"cell_size"` // Pixels per cell (pixel conversion only)
}

// SpeedConfig defines the tick rate range in ticks per second.
type SpeedConfig struct {
	Initial int `yaml:"initial"`
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Step    int `yaml:"step"`
}

// ColorConfig names the colors used to draw the board.
// Names are resolved with core.ParseColor.
type ColorConfig struct {
	Snake  string `yaml:"snake"`
	Head   string `yaml:"head"`
	Food   string `yaml:"food"`
	Border string `yaml:"border"`
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width < 1 || c.Board.Height < 1 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	} else if c.Board.Width*c.Board.Height < 2 {
		errs = append(errs, errors.New("board must have at least 2 cells"))
	}
	if c.Board.CellSize < 1 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.Board.CellSize))
	}

	if c.Speed.Min < 1 {
		errs = append(errs, fmt.Errorf("speed.min must be at least 1, got %d", c.Speed.Min))
	}
	if c.Speed.Max < c.Speed.Min {
		errs = append(errs, fmt.Errorf("speed.max (%d) is below speed.min (%d)", c.Speed.Max, c.Speed.Min))
	}
	if c.Speed.Initial < c.Speed.Min || c.Speed.Initial > c.Speed.Max {
		errs = append(errs, fmt.Errorf("speed.initial (%d) is outside [%d, %d]", c.Speed.Initial, c.Speed.Min, c.Speed.Max))
	}
	if c.Speed.Step < 1 {
		errs = append(errs, fmt.Errorf("speed.step must be at least 1, got %d", c.Speed.Step))
	}

	for field, name := range map[string]string{
		"snake":  c.Colors.Snake,
		"head":   c.Colors.Head,
		"food":   c.Colors.Food,
		"border": c.Colors.Border,
	} {
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", field, err))
		}
	}

	if c.WinPause < 0 {
		errs = append(errs, fmt.Errorf("win_pause must not be negative, got %s", c.WinPause))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}
