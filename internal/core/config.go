package core

// RuntimeConfig contains configuration passed to the world at initialization.
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
		ScreenH:  30,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta converts elapsed milliseconds into the normalized tick delta
// used by the simulation (1.0 == one 60 Hz frame), capped at 2.
func FrameDelta(elapsedMs float64) float64 {
	dt := elapsedMs / (1000.0 / 60.0)
	if dt > 2 {
		return 2
	}
	if dt < 0 {
		return 0
	}
	return dt
}
