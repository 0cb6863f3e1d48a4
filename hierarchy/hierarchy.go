// Package hierarchy simulates a two level cache hierarchy:
// a small fully associative LRU inner cache (L1)
// in front of a set associative outer cache (L2)
// replaced by [l1miss.Policy].
//
// The hierarchy is mostly inclusive;
// L2 evictions do not remove the line from L1.
package hierarchy

import (
	log "log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kratiagrawal/l1miss"
	"github.com/kratiagrawal/l1miss/internal/tags"
)

type (
	// Outcome is the level that served an access.
	Outcome uint8
	// Stats counts events since construction.
	Stats struct {
		Accesses, L1Hits, L2Hits, Misses,
		Evictions, Invalidations uint64
	}
	// Hierarchy is safe for concurrent use.
	// Constructed by [New].
	Hierarchy struct {
		ticks    l1miss.Counter
		log      *log.Logger
		l1       *lru.Cache[uint64, struct{}]
		l2       *tags.Array
		lineSize uint64
		stats    Stats
		// mu covers lookup, victim selection and fill as one step.
		mu sync.Mutex
	}
)

const (
	// Miss means neither cache held the line; it was filled into both.
	Miss Outcome = iota
	// L2Hit means L1 missed and L2 held the line.
	L2Hit
	// L1Hit means L1 held the line; L2 was not consulted.
	L1Hit
)

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case L2Hit:
		return "L2 hit"
	case L1Hit:
		return "L1 hit"
	default:
		return "unknown outcome"
	}
}

// L2HitRate returns the fraction of L2 lookups that hit.
func (s Stats) L2HitRate() float64 {
	lookups := s.L2Hits + s.Misses
	if lookups == 0 {
		return 0
	}
	return float64(s.L2Hits) / float64(lookups)
}

// New creates a [Hierarchy] with empty caches at tick 0.
func New(cfg Config) (*Hierarchy, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(log.DiscardHandler)
	}
	h := &Hierarchy{
		log:      logger,
		lineSize: cfg.LineSize,
	}
	policy, err := l1miss.New(&h.ticks)
	if err != nil {
		return nil, err
	}
	if h.l2, err = tags.New(cfg.Sets, cfg.Ways, policy); err != nil {
		return nil, err
	}
	if h.l1, err = lru.New[uint64, struct{}](cfg.L1Lines); err != nil {
		return nil, err
	}
	logger.Info("cache hierarchy created",
		"l1_lines", cfg.L1Lines,
		"l2_sets", cfg.Sets,
		"l2_ways", cfg.Ways,
		"line_size", cfg.LineSize)
	return h, nil
}

// Access reads the line containing addr, filling it on a miss,
// and advances logical time by one tick.
func (h *Hierarchy) Access(addr uint64) Outcome {
	line := addr / h.lineSize
	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.ticks.Advance(1)
	h.stats.Accesses++
	if _, hit := h.l1.Get(line); hit {
		h.stats.L1Hits++
		return L1Hit
	}
	if block, hit := h.l2.Lookup(line); hit {
		h.l2.Touch(block)
		h.l1.Add(line, struct{}{})
		h.stats.L2Hits++
		return L2Hit
	}
	victim := h.l2.Victim(line)
	if victim.Valid {
		h.stats.Evictions++
		h.log.Debug("evicting line",
			"line", h.l2.Line(victim),
			"set", victim.Set,
			"way", victim.Way,
			"last_miss", victim.ReplacementData().LastMissTick,
			"in_l1", victim.ReplacementData().InL1,
			"tick", now)
	}
	h.l2.Insert(line, victim)
	h.l1.Add(line, struct{}{})
	h.stats.Misses++
	return Miss
}

// Invalidate removes the line containing addr from both caches.
// It reports whether L2 held the line.
func (h *Hierarchy) Invalidate(addr uint64) bool {
	line := addr / h.lineSize
	h.mu.Lock()
	defer h.mu.Unlock()
	h.l1.Remove(line)
	block, held := h.l2.Lookup(line)
	if !held {
		return false
	}
	h.l2.Invalidate(block)
	h.stats.Invalidations++
	h.log.Debug("invalidated line",
		"line", line,
		"set", block.Set,
		"way", block.Way,
		"tick", h.ticks.Now())
	return true
}

// Contains reports whether each cache holds the line containing addr,
// without changing any replacement state.
func (h *Hierarchy) Contains(addr uint64) (inL1, inL2 bool) {
	line := addr / h.lineSize
	h.mu.Lock()
	defer h.mu.Unlock()
	_, inL2 = h.l2.Lookup(line)
	return h.l1.Contains(line), inL2
}

// Stats returns a snapshot of the event counters.
func (h *Hierarchy) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

// Now returns the current tick.
func (h *Hierarchy) Now() l1miss.Tick {
	return h.ticks.Now()
}
