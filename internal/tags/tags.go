// Package tags models the tag array of a set associative cache,
// delegating replacement decisions to an [l1miss.Policy].
package tags

import (
	"iter"

	"github.com/kratiagrawal/l1miss"
)

type (
	// Block is one way of a set.
	Block struct {
		data     *l1miss.Metadata
		Tag      uint64
		Set, Way int
		Valid    bool
	}
	// Array is a set associative tag array.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	Array struct {
		policy *l1miss.Policy
		sets   [][]*Block
		valid  int
	}
)

// ReplacementData returns the block's replacement state.
func (b *Block) ReplacementData() *l1miss.Metadata { return b.data }

// New creates an [Array] of sets*ways invalid blocks.
// Each block's replacement state is instantiated once, by policy.
func New(sets, ways int, policy *l1miss.Policy) (*Array, error) {
	if sets < 1 || ways < 1 {
		return nil, geometryError(sets, ways)
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}
	array := &Array{
		policy: policy,
		sets:   make([][]*Block, sets),
	}
	for set := range array.sets {
		blocks := make([]*Block, ways)
		for way := range blocks {
			blocks[way] = &Block{
				data: policy.InstantiateEntry(),
				Set:  set,
				Way:  way,
			}
		}
		array.sets[set] = blocks
	}
	return array, nil
}

// Geometry returns the number of sets and ways per set.
func (a *Array) Geometry() (sets, ways int) {
	return len(a.sets), len(a.sets[0])
}

func (a *Array) locate(line uint64) (set int, tag uint64) {
	count := uint64(len(a.sets))
	return int(line % count), line / count
}

// Lookup returns the valid block holding line, if any.
func (a *Array) Lookup(line uint64) (*Block, bool) {
	set, tag := a.locate(line)
	for _, block := range a.sets[set] {
		if block.Valid && block.Tag == tag {
			return block, true
		}
	}
	return nil, false
}

// Line returns the line address held by block.
func (a *Array) Line(block *Block) uint64 {
	return block.Tag*uint64(len(a.sets)) + uint64(block.Set)
}

// Victim returns the block to replace in order to insert line.
// The block may be valid, in which case the caller evicts its line.
func (a *Array) Victim(line uint64) *Block {
	set, _ := a.locate(line)
	return l1miss.Victim(a.sets[set])
}

// Insert places line in block, which must belong to line's set,
// and records the fill.
func (a *Array) Insert(line uint64, block *Block) {
	set, tag := a.locate(line)
	if debugging {
		assert(set == block.Set,
			"inserting a line into a block of another set")
		assert(a.sets[block.Set][block.Way] == block,
			"inserting into a block of another array")
	}
	if !block.Valid {
		a.valid++
	}
	block.Tag = tag
	block.Valid = true
	a.policy.Reset(block.data)
}

// Touch records a hit on block.
func (a *Array) Touch(block *Block) {
	if debugging {
		assert(block.Valid, "touching an invalid block")
	}
	a.policy.Touch(block.data)
}

// Invalidate discards the line held by block.
func (a *Array) Invalidate(block *Block) {
	if block.Valid {
		a.valid--
	}
	block.Valid = false
	a.policy.Invalidate(block.data)
}

// Len returns the number of valid blocks.
func (a *Array) Len() int {
	return a.valid
}

// Set returns an iterator over the ways of the set line maps to.
func (a *Array) Set(line uint64) iter.Seq[*Block] {
	set, _ := a.locate(line)
	return func(yield func(*Block) bool) {
		for _, block := range a.sets[set] {
			if !yield(block) {
				return
			}
		}
	}
}

// Blocks returns an iterator over every block, set by set.
func (a *Array) Blocks() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		for _, blocks := range a.sets {
			for _, block := range blocks {
				if !yield(block) {
					return
				}
			}
		}
	}
}
