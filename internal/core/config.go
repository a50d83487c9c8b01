package core

// RuntimeConfig contains configuration passed to a game session at start.
// The platform layer fills it from the terminal and CLI flags.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frame requests per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Player   string // Name recorded next to saved scores
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
