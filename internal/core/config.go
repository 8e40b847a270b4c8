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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives, 0 when the game does not track lives
	Level    int  // Current level for games with progression
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in victory
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Advance() after each host frame.
// Contains the updated game state and how many logic ticks fired.
type StepResult struct {
	State GameState
	Ticks int // Logic ticks executed during this Advance call
}
