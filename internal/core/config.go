package core

// RuntimeConfig contains configuration passed to effects at construction.
// The grid dimensions are fixed for the lifetime of a demo.
type RuntimeConfig struct {
	GridW    int   // Scene width in cells
	GridH    int   // Scene height in cells
	TickRate int   // Ticks per second (default 60)
	Seed     int64 // RNG seed for effects with random state
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:    32,
		GridH:    32,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Cells returns the number of cells in the scene grid.
func (c RuntimeConfig) Cells() int {
	return c.GridW * c.GridH
}
