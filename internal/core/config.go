package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Initial simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventAte EventKind = iota + 1
	EventCollided
	EventWon
	EventSpeedChanged
)

// String returns a lowercase name for logging.
func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventCollided:
		return "collided"
	case EventWon:
		return "won"
	case EventSpeedChanged:
		return "speed_changed"
	default:
		return "unknown"
	}
}

// Event is emitted by Game.Step for the platform to log or react to.
type Event struct {
	Kind  EventKind
	Value int // Kind-specific: length after eating, new speed, etc.
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred during the step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
