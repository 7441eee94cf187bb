package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// Outcome describes how a playthrough ended.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeLost      Outcome = "lost"      // Last ship destroyed
	OutcomeAbandoned Outcome = "abandoned" // Reset key pressed mid-game
	OutcomeVictory   Outcome = "victory"   // Boss defeated
)

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int    // Current score
	HighScore  int    // Best score seen by this process
	Level      int    // Current wave
	Lives      int    // Ships left
	Difficulty string // Active difficulty mode name
	Paused     bool   // Whether the game is paused
	Quit       bool   // Whether the player asked to exit
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	// Ended is set on the tick a playthrough finishes, together with its outcome.
	Ended   bool
	Outcome Outcome
}
