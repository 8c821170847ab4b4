package core

// RuntimeConfig contains the frontend parameters passed to a game.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Target ticks per second; the real dt is measured per tick
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Paused   bool    // Whether the simulation is frozen
	Ticks    uint64  // Simulation ticks run since the last reset
	Elapsed  float64 // Simulated seconds since the last reset
	Respawns int     // Times the actor was put back at the spawn point
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	Err   error // Non-nil when the tick was rejected (e.g. negative dt)
}
