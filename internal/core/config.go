package core

// RuntimeConfig contains host settings passed down from the CLI.
type RuntimeConfig struct {
	ScreenW  int   // Field width in cells
	ScreenH  int   // Field height in cells
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time
}

// GameState is the summary of a game a host needs between ticks.
type GameState struct {
	Score    int  // Current score
	Playing  bool // Whether a round is in progress
	GameOver bool // Whether the last round has ended
}

// StepResult is returned by Game.Step() after each host tick.
type StepResult struct {
	State GameState
	Quit  bool // Set when the player asked to leave
}
