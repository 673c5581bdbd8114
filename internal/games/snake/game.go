// Package snake implements the classic Snake game on a wrap-around board.
// The snake grows by one segment per food eaten and starts over from a
// single segment whenever it runs into itself. Filling the whole board wins.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the game loop state.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Game implements the Snake game.
type Game struct {
	settings Settings
	grid     Grid
	rng      *rand.Rand
	spawner  *Spawner
	tick     uint64 // Simulated ticks; paused frames do not count

	// Snake state
	snake *Snake
	food  Cell

	speed  int // Ticks per second
	status Status
	paused bool

	score  int // Food eaten since the last reset
	best   int // Longest snake this session
	resets int // Self-collisions this session

	tooSmall bool // Screen cannot fit the board
}

// New creates a Snake game with the given settings.
func New(settings Settings) *Game {
	grid := NewGrid(settings.Width, settings.Height, settings.CellSize)
	g := &Game{
		settings: settings,
		grid:     grid,
		snake:    NewSnake(grid, DirRight),
	}
	// Fixed seed until the platform calls Reset with its own
	g.Reset(core.RuntimeConfig{Seed: 1})
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a fresh session. A positive cfg.TickRate overrides the
// configured initial speed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.spawner = NewSpawner(g.grid, g.rng)
	g.tick = 0
	g.score = 0
	g.best = 1
	g.resets = 0
	g.status = StatusPlaying
	g.paused = false

	g.speed = g.clampSpeed(g.settings.InitialSpeed)
	if cfg.TickRate > 0 {
		g.speed = g.clampSpeed(cfg.TickRate)
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.snake.Reset(g.randomDirection())
	g.spawnFood()
}

// Colors returns the configured colors the game draws with.
func (g *Game) Colors() []core.Color {
	return []core.Color{
		g.settings.SnakeColor,
		g.settings.HeadColor,
		g.settings.FoodColor,
		g.settings.BorderColor,
	}
}

// Resize checks the new screen dimensions against the board without
// touching game state.
func (g *Game) Resize(w, h int) {
	reqW, reqH := g.RequiredSize()
	g.tooSmall = w < reqW || h < reqH
}

// RequiredSize returns the smallest screen that fits the HUD and board.
func (g *Game) RequiredSize() (w, h int) {
	return g.grid.Width()*cellWidth + 2, g.grid.Height() + 2 + hudHeight
}

// randomDirection picks one of the four directions uniformly.
func (g *Game) randomDirection() Direction {
	return Directions[g.rng.Intn(len(Directions))]
}

// spawnFood places food on a free cell. If none is left the board is full
// and the game is won.
func (g *Game) spawnFood() bool {
	food, ok := g.spawner.Spawn(g.snake.Occupied())
	if !ok {
		g.food = Cell{X: -1, Y: -1}
		g.status = StatusWon
		return false
	}
	g.food = food
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.status == StatusWon {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	// Speed keys work while paused so the player can adjust before resuming
	if delta := g.speedDelta(input); delta != 0 {
		before := g.speed
		g.AdjustSpeed(delta)
		if g.speed != before {
			events = append(events, core.Event{Kind: core.EventSpeedChanged, Value: g.speed})
		}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State(), Events: events}
	}
	g.tick++

	g.processInput(input)

	collided := g.snake.tick()
	g.best = max(g.best, g.snake.Len())

	if g.snake.Len() >= g.grid.Area() {
		g.status = StatusWon
		events = append(events, core.Event{Kind: core.EventWon, Value: g.snake.Len()})
		return core.StepResult{State: g.State(), Events: events}
	}

	switch {
	case g.snake.Head() == g.food:
		g.snake.Grow()
		g.score++
		events = append(events, core.Event{Kind: core.EventAte, Value: g.snake.Target()})
		if !g.spawnFood() {
			events = append(events, core.Event{Kind: core.EventWon, Value: g.snake.Len()})
		}
	case collided:
		length := g.snake.Len()
		g.snake.Reset(g.randomDirection())
		g.score = 0
		g.resets++
		g.spawnFood()
		events = append(events, core.Event{Kind: core.EventCollided, Value: length})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput forwards directional actions to the snake in the order they
// were pressed. Each request is checked against the direction currently
// applied, so the last valid key of the frame wins.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Order {
		switch a {
		case core.ActionUp:
			g.snake.RequestTurn(DirUp)
		case core.ActionDown:
			g.snake.RequestTurn(DirDown)
		case core.ActionLeft:
			g.snake.RequestTurn(DirLeft)
		case core.ActionRight:
			g.snake.RequestTurn(DirRight)
		}
	}
}

// speedDelta sums the speed key presses of a frame.
func (g *Game) speedDelta(input core.InputFrame) int {
	delta := 0
	for _, a := range input.Order {
		switch a {
		case core.ActionSpeedUp:
			delta += g.settings.SpeedStep
		case core.ActionSpeedDown:
			delta -= g.settings.SpeedStep
		}
	}
	return delta
}

// Speed returns the current tick rate in ticks per second.
func (g *Game) Speed() int {
	return g.speed
}

// TickRate is the cadence at which the platform should call Step.
func (g *Game) TickRate() int {
	return g.speed
}

// SetSpeed sets the tick rate, clamped to the configured range and never
// below 1.
func (g *Game) SetSpeed(n int) {
	g.speed = g.clampSpeed(n)
}

// AdjustSpeed changes the tick rate by delta.
func (g *Game) AdjustSpeed(delta int) {
	g.SetSpeed(g.speed + delta)
}

func (g *Game) clampSpeed(n int) int {
	lo := max(g.settings.MinSpeed, 1)
	hi := max(g.settings.MaxSpeed, lo)
	return core.Clamp(n, lo, hi)
}

// Status returns the game loop state.
func (g *Game) Status() Status {
	return g.status
}

// Snake returns the snake. Callers must treat it as read-only.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food cell.
func (g *Game) Food() Cell {
	return g.food
}

// Grid returns the board geometry.
func (g *Game) Grid() Grid {
	return g.grid
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusWon,
		Paused:   g.paused,
	}
}
