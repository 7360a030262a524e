package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the wall time covered by one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Reason   string // Why the game ended, empty while running
}

// EventKind classifies things that happened during a tick.
type EventKind int

const (
	EventFire EventKind = iota
	EventRockHit
	EventCrash
	EventPickup
	EventGameOver
	EventMenu
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFire:
		return "fire"
	case EventRockHit:
		return "rock-hit"
	case EventCrash:
		return "crash"
	case EventPickup:
		return "pickup"
	case EventGameOver:
		return "game-over"
	case EventMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Event is a single notification emitted by a game step.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// RunStats summarises a finished run for persistence.
type RunStats struct {
	Score      float64
	RocksHit   int
	Resources  int
	Gold       int
	ProperTime float64
	Reason     string
}
