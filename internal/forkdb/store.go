package forkdb

import (
	"slices"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DefaultCapacity is the retained height window of a store.
const DefaultCapacity uint64 = 1024

// Store indexes resident blocks by id and by height. Blocks at one height
// keep their insertion order. Store is not safe for concurrent use; the
// owning ForkGraph serializes access.
type Store struct {
	byID     map[chainhash.Hash]*BlockRef
	byHeight map[uint64][]*BlockRef
	capacity uint64
}

// NewStore returns an empty store retaining capacity heights below the frontier.
func NewStore(capacity uint64) *Store {
	return &Store{
		byID:     make(map[chainhash.Hash]*BlockRef),
		byHeight: make(map[uint64][]*BlockRef),
		capacity: capacity,
	}
}

// Insert adds ref. An existing entry with the same id is replaced in both indices.
func (s *Store) Insert(ref *BlockRef) {
	if _, ok := s.byID[ref.id]; ok {
		s.Remove(ref.id)
	}
	s.byID[ref.id] = ref
	s.byHeight[ref.num] = append(s.byHeight[ref.num], ref)
}

// Remove deletes the block with the given id and reports whether it was resident.
func (s *Store) Remove(id chainhash.Hash) bool {
	ref, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)

	bucket := s.byHeight[ref.num]
	bucket = slices.DeleteFunc(bucket, func(b *BlockRef) bool { return b.id == id })
	if len(bucket) == 0 {
		delete(s.byHeight, ref.num)
	} else {
		s.byHeight[ref.num] = bucket
	}
	return true
}

// ByHeight returns the blocks at height in insertion order.
func (s *Store) ByHeight(height uint64) []*BlockRef {
	bucket := s.byHeight[height]
	if len(bucket) == 0 {
		return nil
	}
	return slices.Clone(bucket)
}

func (s *Store) ByHash(id chainhash.Hash) (*BlockRef, bool) {
	ref, ok := s.byID[id]
	return ref, ok
}

// Len returns the number of resident blocks.
func (s *Store) Len() int {
	return len(s.byID)
}

func (s *Store) Capacity() uint64 {
	return s.capacity
}

func (s *Store) SetCapacity(capacity uint64) {
	s.capacity = capacity
}

// Heights returns the resident heights in ascending order.
func (s *Store) Heights() []uint64 {
	heights := make([]uint64, 0, len(s.byHeight))
	for h := range s.byHeight {
		heights = append(heights, h)
	}
	slices.Sort(heights)
	return heights
}

// Tip returns the first-inserted block at the greatest resident height.
func (s *Store) Tip() (*BlockRef, bool) {
	var (
		top   uint64
		found bool
	)
	for h := range s.byHeight {
		if !found || h > top {
			top, found = h, true
		}
	}
	if !found {
		return nil, false
	}
	return s.byHeight[top][0], true
}

// Prune evicts every block whose height is below EvictionThreshold(frontier,
// capacity) and returns the evicted blocks.
func (s *Store) Prune(frontier uint64) []*BlockRef {
	minHeight := EvictionThreshold(frontier, s.capacity)
	if minHeight == 0 {
		return nil
	}

	var evicted []*BlockRef
	for h, bucket := range s.byHeight {
		if h >= minHeight {
			continue
		}
		for _, ref := range bucket {
			delete(s.byID, ref.id)
		}
		evicted = append(evicted, bucket...)
		delete(s.byHeight, h)
	}
	return evicted
}

// EvictionThreshold returns the lowest height a store keeps for the given
// frontier and capacity.
func EvictionThreshold(frontier, capacity uint64) uint64 {
	if frontier <= capacity {
		return 0
	}
	return frontier - capacity
}
