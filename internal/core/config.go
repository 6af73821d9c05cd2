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
		ScreenW:  100,
		ScreenH:  36,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the duration of one tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Name of the active state machine state
	Score    int    // Current score
	Health   int    // Current player health
	Enemies  int    // Enemies remaining
	Ticks    int    // Ticks simulated in the current run
	GameOver bool   // Player was defeated
	Victory  bool   // All enemies were defeated
	Paused   bool   // Whether the game is paused
	InMenu   bool   // Main menu is showing
	Quit     bool   // The game asked the platform to exit
}

// RunEnded reports whether the current run has finished either way.
func (s GameState) RunEnded() bool {
	return s.GameOver || s.Victory
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
