// Package l1miss implements a cache line replacement [Policy]
// for set associative caches that sit behind a smaller inner (L1) cache.
//
// Lines recently filled are assumed to also be held by the inner cache
// and are protected from eviction; among the remaining lines,
// the one whose last miss is oldest is evicted.
//
// The following is a summary intended for maintainers.
//
// Glossary:
//
//   - Way
//
//     One slot of a cache set. Each way owns exactly one [Metadata]
//     for its whole lifetime, created by [Policy.InstantiateEntry].
//
//   - Tick
//
//     Logical time read from a [TickSource]. The policy never advances it.
//
//   - Victim
//
//     The way chosen to be replaced by a new fill.
//
// Metadata transitions:
//
//   - Invalidate: {0, InL1: false}
//
//   - Touch (hit): {now, InL1: false}
//
//   - Reset (fill after miss): {now, InL1: true}
//
//     InL1 is only a hint. It is set on fill and cleared by the next touch or
//     invalidation, and is never updated by events that only concern the
//     inner cache. A line may stay marked long after the inner cache dropped it.
//
// Victim selection:
//
//   - Seed
//
//     The first way not marked InL1, or the first way if all of them are.
//
//   - Refine
//
//     Scan every way in order; an unmarked way replaces the seed
//     only if its LastMissTick is strictly lower.
//     Ties therefore keep the earliest way.
//
//     When every way is marked, the first way is evicted,
//     regardless of the marked ways' ticks.
//
// Callers must serialize operations on a set,
// and selecting a victim followed by filling it must happen
// under the same critical section if the set is shared between goroutines.
package l1miss
