package core

// Game is the contract between a game and the platform. Implementations
// contain pure logic with no UI dependencies; the platform owns timing,
// input mapping and display.
type Game interface {
	// ID returns a unique identifier (used for CLI and logging).
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game state.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick with the given input.
	Step(in InputFrame) StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
