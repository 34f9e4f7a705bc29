package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for deterministic simulation; the platform uses the
// screen dimensions for rendering.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the platform-visible state of a game, returned by
// Game.State() after each tick.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best historical score known to the session
	Lives     int  // Remaining lives, never negative
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
