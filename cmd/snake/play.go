package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// helpRows is the short help footer below the board. The full help only
// opens when the terminal has room for it as well.
const helpRows = 1

func runPlay(_ *cobra.Command, _ []string) error {
	level, err := parseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, level)

	cfg, source, err := config.LoadSnakeWithSource(flagConfig)
	if err != nil {
		return err
	}
	settings, err := snake.SettingsFromConfig(cfg)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source,
		"board", fmt.Sprintf("%dx%d", settings.Width, settings.Height))

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}

	game := snake.New(settings)
	if err := checkSize(game, width, height); err != nil {
		return err
	}

	out, closeLog, err := openGameLog(flagLogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagSpeed,
		Seed:     flagSeed,
	}
	res, err := tui.Run(game, rc, tui.Options{
		Logger:   newLogger(out, level),
		WinPause: cfg.WinPause,
	})
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	snap := game.Snapshot()
	logger.Info("session ended",
		"won", res.Won,
		"ticks", res.Ticks,
		"length", snap.Length,
		"score", res.Score,
		"best", snap.Best,
		"resets", snap.Resets)
	return nil
}

// checkSize fails when the terminal cannot fit the board and help footer.
func checkSize(game *snake.Game, width, height int) error {
	reqW, reqH := game.RequiredSize()
	reqH += helpRows
	if width < reqW || height < reqH {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", width, height, reqW, reqH)
	}
	return nil
}
