package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int
	Status Status
}

// Terminal reports whether the game has reached Won or Over.
func (s GameState) Terminal() bool {
	return s.Status.Terminal()
}

// StepResult is returned after a command or tick has been applied.
type StepResult struct {
	State GameState

	// Accepted is true when the event changed engine state.
	// The platform uses it to open the move cooldown window.
	Accepted bool

	// Scored is true when the score changed during this event.
	Scored bool
}

// Timing describes the scheduler handles a game needs from the platform.
// Zero values mean the handle is not used.
type Timing struct {
	TickEvery    time.Duration // Fixed interval between Tick calls while playing
	MoveCooldown time.Duration // Window after an accepted move during which moves are dropped
}
