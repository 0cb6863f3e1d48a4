package hierarchy

import log "log/slog"

// Config describes the geometry of a [Hierarchy].
type Config struct {
	// Logger receives eviction and invalidation events.
	// Nil discards them.
	Logger *log.Logger
	// Sets and Ways of the outer (L2) cache.
	Sets, Ways int
	// L1Lines is the capacity of the fully associative inner cache.
	L1Lines int
	// LineSize is the number of bytes per line in both caches.
	LineSize uint64
}

// DefaultConfig returns a 32KiB, 8 way L2
// behind a 2KiB L1, with 64 byte lines.
func DefaultConfig() Config {
	return Config{
		Sets:     64,
		Ways:     8,
		L1Lines:  32,
		LineSize: 64,
	}
}

func (c Config) validate() error {
	switch {
	case c.Sets < 1:
		return configError("Sets", c.Sets)
	case c.Ways < 1:
		return configError("Ways", c.Ways)
	case c.L1Lines < 1:
		return configError("L1Lines", c.L1Lines)
	case c.LineSize < 1:
		return configError("LineSize", c.LineSize)
	}
	return nil
}
