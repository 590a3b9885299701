package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its arena and seed its simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}
