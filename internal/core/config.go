package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
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

// GameState represents the current state of a round.
type GameState struct {
	Score    float64 // Current decayed score
	GameOver bool    // Whether the round has ended
	Won      bool    // Round ended because the egg hatched
	Paused   bool    // Whether the round is paused
}

// Event is a discrete occurrence inside one tick that the platform may react to.
type Event int

const (
	EventCollision  Event = iota // Egg took damage from an obstacle
	EventPickup                  // Egg collected a triangle
	EventRegen                   // Health regenerated
	EventLevelUp                 // Level and obstacle speed increased
	EventBackground              // Background color changed
	EventLost                    // Health reached zero
	EventWon                     // Hatch progress reached the goal
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventCollision:
		return "collision"
	case EventPickup:
		return "pickup"
	case EventRegen:
		return "regen"
	case EventLevelUp:
		return "level-up"
	case EventBackground:
		return "background"
	case EventLost:
		return "lost"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
