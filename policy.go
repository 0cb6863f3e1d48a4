package l1miss

type (
	// Metadata is the replacement state of a single way.
	// It is created by [Policy.InstantiateEntry]
	// and owned by that way for its lifetime.
	Metadata struct {
		// LastMissTick is the tick of the most recent
		// fill or touch. Zero once invalidated.
		LastMissTick Tick
		// InL1 is true if the way was filled and has
		// not been touched or invalidated since.
		// It is a hint that the line is also held by the
		// inner cache, not a tracked membership bit;
		// inner cache evictions never clear it.
		InL1 bool
	}
	// Candidate is a way that may be chosen as a victim.
	Candidate interface {
		ReplacementData() *Metadata
	}
	// Policy protects lines held by the inner cache
	// and otherwise evicts the line whose last miss is oldest.
	// Callers must serialize operations on the same [Metadata].
	// Constructed by [New].
	Policy struct {
		ticks TickSource
	}
)

// New creates a [Policy] reading the current tick from ticks.
func New(ticks TickSource) (*Policy, error) {
	if ticks == nil {
		return nil, ErrNilTickSource
	}
	return &Policy{ticks: ticks}, nil
}

// InstantiateEntry returns new, invalid replacement state for one way.
func (*Policy) InstantiateEntry() *Metadata {
	return new(Metadata)
}

// Invalidate clears entry so that it is preferred for eviction.
func (*Policy) Invalidate(entry *Metadata) {
	entry.LastMissTick = 0
	entry.InL1 = false
}

// Touch records a hit on entry's line.
func (p *Policy) Touch(entry *Metadata) {
	entry.LastMissTick = p.now(entry)
	entry.InL1 = false
}

// Reset records a fill of entry's line after a miss.
// The line is protected from eviction until it is touched or invalidated.
func (p *Policy) Reset(entry *Metadata) {
	entry.LastMissTick = p.now(entry)
	entry.InL1 = true
}

func (p *Policy) now(entry *Metadata) Tick {
	now := p.ticks.Now()
	if debugging {
		assert(now >= entry.LastMissTick,
			"tick source moved backwards for a line")
	}
	return now
}

// GetVictim is [Victim] for callers
// holding candidates as interface values.
func (*Policy) GetVictim(candidates []Candidate) Candidate {
	return Victim(candidates)
}

// Victim returns the candidate to evict.
//
// The victim is the earliest candidate with the lowest
// [Metadata.LastMissTick] among those not marked [Metadata.InL1].
// If every candidate is marked, the first candidate is returned.
//
// Victim panics with [ErrNoCandidates] if candidates is empty.
func Victim[C Candidate](candidates []C) C {
	if len(candidates) == 0 {
		panic(noCandidatesError())
	}
	victim := candidates[0]
	for _, candidate := range candidates {
		if !candidate.ReplacementData().InL1 {
			victim = candidate
			break
		}
	}
	// When every candidate is in L1 the first one is kept as is;
	// it is not the resident line with the lowest tick.
	oldest := victim.ReplacementData().LastMissTick
	for _, candidate := range candidates {
		data := candidate.ReplacementData()
		if !data.InL1 &&
			data.LastMissTick < oldest {
			victim = candidate
			oldest = data.LastMissTick
		}
	}
	return victim
}
