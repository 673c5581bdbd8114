package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Settings holds the startup parameters of a game. They are fixed for the
// lifetime of a Game.
type Settings struct {
	Width    int // Board width in cells
	Height   int // Board height in cells
	CellSize int // Pixels per cell

	InitialSpeed int // Ticks per second at start
	MinSpeed     int
	MaxSpeed     int
	SpeedStep    int

	SnakeColor  core.Color
	HeadColor   core.Color
	FoodColor   core.Color
	BorderColor core.Color
}

// DefaultSettings returns settings matching config.DefaultSnakeConfig.
func DefaultSettings() Settings {
	s, err := SettingsFromConfig(config.DefaultSnakeConfig())
	if err != nil {
		panic(fmt.Sprintf("snake: default config is invalid: %v", err))
	}
	return s
}

// SettingsFromConfig converts a loaded configuration into game settings.
func SettingsFromConfig(cfg config.SnakeConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}

	colors := make(map[string]core.Color, 4)
	for name, value := range map[string]string{
		"snake":  cfg.Colors.Snake,
		"head":   cfg.Colors.Head,
		"food":   cfg.Colors.Food,
		"border": cfg.Colors.Border,
	} {
		c, err := core.ParseColor(value)
		if err != nil {
			return Settings{}, fmt.Errorf("snake: colors.%s: %w", name, err)
		}
		colors[name] = c
	}

	return Settings{
		Width:        cfg.Board.Width,
		Height:       cfg.Board.Height,
		CellSize:     cfg.Board.CellSize,
		InitialSpeed: cfg.Speed.Initial,
		MinSpeed:     cfg.Speed.Min,
		MaxSpeed:     cfg.Speed.Max,
		SpeedStep:    cfg.Speed.Step,
		SnakeColor:   colors["snake"],
		HeadColor:    colors["head"],
		FoodColor:    colors["food"],
		BorderColor:  colors["border"],
	}, nil
}
