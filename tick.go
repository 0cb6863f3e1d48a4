package l1miss

import "sync/atomic"

type (
	// Tick is a unit of logical time.
	Tick uint64
	// TickSource supplies the current [Tick].
	// Values must never decrease over the lifetime of the source.
	TickSource interface {
		Now() Tick
	}
	// TickFunc adapts a function to a [TickSource].
	TickFunc func() Tick
	// Counter is a [TickSource] that only moves when advanced.
	// It is safe for concurrent use.
	// The zero value is ready to use and starts at tick 0.
	Counter struct {
		now atomic.Uint64
	}
)

func (fn TickFunc) Now() Tick { return fn() }

// Now returns the current tick.
func (c *Counter) Now() Tick {
	return Tick(c.now.Load())
}

// Advance moves the counter forward by n ticks and returns the new tick.
func (c *Counter) Advance(n uint64) Tick {
	return Tick(c.now.Add(n))
}
