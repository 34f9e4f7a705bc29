package tui

import "github.com/neilkapoor/asteroid-belt/internal/core"

// Game is the contract between the platform and a game implementation.
// The platform owns the tick loop and the screen buffer; the game owns all
// simulation state and mutates it only inside Reset and Step.
type Game interface {
	// ID returns a stable identifier used for storage and logging.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts or restarts a session with the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(s *core.Screen)

	// State returns the current platform-visible state.
	State() core.GameState

	// SetHighScore seeds the in-memory best from persisted history.
	SetHighScore(score int)

	// Quit ends the session immediately.
	Quit()

	// QuitRequested reports whether the session ended by explicit quit
	// rather than by losing all lives.
	QuitRequested() bool
}
