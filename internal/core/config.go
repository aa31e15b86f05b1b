package core

// RuntimeConfig is the configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in cells
	ScreenH  int    // Screen height in cells
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed; 0 means the platform picks one from the clock
	Config   string // Optional path to a game config file
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the per-tick status a game reports to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended (including fatal faults)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
