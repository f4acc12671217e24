package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for board dimensions and deterministic simulation.
type RuntimeConfig struct {
	BoardSize int   // Board width/height in cells (the matrix is 8x8)
	Seed      int64 // RNG seed; 0 means the wiring layer picks a time-based one
}

// DefaultRuntimeConfig returns a RuntimeConfig matching the physical matrix.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardSize: FrameSize,
		Seed:      0,
	}
}

// GameState represents the current state of a game round, as reported to the
// driving loop after every tick.
type GameState struct {
	Score int  // Current score
	Over  bool // Whether the round has ended
}
