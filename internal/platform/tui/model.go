package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is what the model drives. Games contain pure logic with no Bubble Tea
// dependency; the model handles input mapping, timing, and rendering.
type Game interface {
	ID() string
	Title() string

	// Reset starts a new session with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize reports a new screen size without resetting game state.
	Resize(w, h int)

	// RequiredSize is the smallest screen the game can be played on.
	RequiredSize() (w, h int)

	// Colors lists the colors Render may use.
	Colors() []core.Color

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	State() core.GameState

	// TickRate is the current number of Step calls per second.
	TickRate() int
}

// Options configures a session.
type Options struct {
	Logger   *log.Logger   // Event log; nil discards
	WinPause time.Duration // How long the win message stays up before exit
}

// Result summarizes a finished session.
type Result struct {
	Won   bool
	Score int
	Ticks int
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	palette    Palette
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	winPause   time.Duration
	ticks      int
	won        bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. cfg.ScreenH is
// the full terminal height including the help footer.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		palette:    NewPalette(game.Colors()...),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		winPause:   opts.WinPause,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// helpHeight is the number of rows the help footer takes.
func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	return m.keys.FullHelpHeight()
}

// fullHelpFits reports whether the game still fits once the full help is
// shown below it.
func (m Model) fullHelpFits() bool {
	_, reqH := m.game.RequiredSize()
	return m.config.ScreenH-m.keys.FullHelpHeight() >= reqH
}

// gameHeight is the screen height left for the game above the help footer.
func (m Model) gameHeight() int {
	return max(m.config.ScreenH-m.helpHeight(), 0)
}

// layout resizes the screen buffer and tells the game about the new size.
func (m Model) layout() {
	h := m.gameHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	m.game.Reset(cfg)

	m.logger.Info("session started",
		"game", m.game.ID(),
		"seed", cfg.Seed,
		"screen", [2]int{cfg.ScreenW, cfg.ScreenH},
		"speed", m.game.TickRate())

	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.game.TickRate()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case winDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered until the next
// tick so the game sees every key pressed during a frame in order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit requested", "score", m.gameState.Score, "ticks", m.ticks)
		return m, tea.Quit
	case core.ActionNone:
		if !key.Matches(msg, m.keys.Help) {
			break
		}
		// The full help only opens if it leaves room for the board
		if m.help.ShowAll || m.fullHelpFits() {
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
		}
	default:
		if !m.won {
			m.inputFrame.Set(action)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state and
// only re-checks whether the board still fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()

	m.logger.Debug("resized", "w", msg.Width, "h", m.gameHeight())
	return m, nil
}

// handleTick runs one simulation step and schedules the next one at the
// game's current tick rate.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.won {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.logEvent(ev)
	}

	if result.Has(core.EventWon) {
		m.won = true
		m.game.Render(m.screen)
		m.logger.Debug("final board", "frame", "\n"+m.screen.String())
		return m, winCmd(m.winPause)
	}

	return m, tickCmd(m.game.TickRate())
}

func (m Model) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventAte:
		m.logger.Debug("food eaten", "length", ev.Value, "score", m.gameState.Score)
	case core.EventCollided:
		m.logger.Info("self collision", "length", ev.Value, "tick", m.ticks)
	case core.EventWon:
		m.logger.Info("board filled", "length", ev.Value, "tick", m.ticks)
	case core.EventSpeedChanged:
		m.logger.Debug("speed changed", "speed", ev.Value)
	default:
		m.logger.Warn("unknown event", "kind", ev.Kind, "value", ev.Value)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.palette.Render(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Result returns the session summary.
func (m Model) Result() Result {
	return Result{
		Won:   m.won,
		Score: m.gameState.Score,
		Ticks: m.ticks,
	}
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return model.Result(), nil
}
