package forkdb

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"
)

// ForkGraph holds blocks that are not yet committed, including forks, and
// tracks the head of the best known chain.
type ForkGraph struct {
	mu      sync.RWMutex
	linked  *Store
	staging *Store
	head    *BlockRef
	started bool

	metrics Metrics
	logger  *zap.Logger
}

// Option configures a ForkGraph.
type Option func(*ForkGraph)

// WithCapacity sets the retained height window of both stores.
func WithCapacity(capacity uint64) Option {
	return func(g *ForkGraph) {
		g.linked.SetCapacity(capacity)
		g.staging.SetCapacity(capacity)
	}
}

// NewForkGraph builds an empty ForkGraph.
func NewForkGraph(metrics Metrics, logger *zap.Logger, opts ...Option) (*ForkGraph, error) {
	if metrics == nil {
		return nil, errors.New("fork graph metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &ForkGraph{
		linked:  NewStore(DefaultCapacity),
		staging: NewStore(DefaultCapacity),
		metrics: metrics,
		logger:  logger.Named("forkdb"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Start makes block the head of an empty graph.
func (g *ForkGraph) Start(block Block) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return ErrAlreadyStarted
	}
	ref := NewBlockRef(block)
	g.linked.Insert(ref)
	g.started = true
	g.setHead(ref)
	g.sweep()
	return nil
}

// Attach adds block to the graph and returns the resulting head.
//
// A block whose parent is missing from the linked store is kept in staging
// and ErrUnlinkedParent is returned; attaching it again after the parent
// arrives links it. A block whose height does not follow its parent is
// rejected with a *HeightMismatchError and stored nowhere.
func (g *ForkGraph) Attach(block Block) (head Block, err error) {
	started := time.Now()
	defer func() {
		g.metrics.ObserveAttach(err, started)
	}()

	g.mu.Lock()
	defer g.mu.Unlock()

	ref := NewBlockRef(block)
	if g.head != nil {
		if _, ok := g.linked.ByHash(ref.id); ok {
			return g.head.block, nil
		}
	}

	genesis := g.head == nil || ref.parentID == ZeroHash
	if !genesis {
		parent, ok := g.linked.ByHash(ref.parentID)
		if !ok {
			g.staging.Insert(ref)
			g.sweep()
			g.logger.Debug("staged block with unlinked parent",
				zap.Stringer("hash", ref.id),
				zap.Uint64("height", ref.num),
				zap.Stringer("parent", ref.parentID),
			)
			return nil, fmt.Errorf("block %s parent %s: %w", ref.id, ref.parentID, ErrUnlinkedParent)
		}
		if parent.num == math.MaxUint64 || ref.num != parent.num+1 {
			return nil, &HeightMismatchError{
				Hash:         ref.id,
				ParentHash:   parent.id,
				Height:       ref.num,
				ParentHeight: parent.num,
			}
		}
		ref.link()
	}

	g.staging.Remove(ref.id)
	g.linked.Insert(ref)
	g.started = true
	g.logger.Debug("linked block",
		zap.Stringer("hash", ref.id),
		zap.Uint64("height", ref.num),
		zap.Bool("genesis", genesis),
	)

	if genesis || ref.num > g.head.num {
		g.setHead(ref)
	}
	g.sweep()
	return g.head.block, nil
}

// DetachHead moves the head to its parent. It reports false when the head
// has no resident parent. The old head stays in the linked store.
func (g *ForkGraph) DetachHead() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.head == nil {
		return false
	}
	parent, ok := g.head.parent(g.linked)
	if !ok {
		return false
	}
	g.setHead(parent)
	return true
}

// RemoveBlock deletes the block from the linked store, or from staging when
// it is not linked, and reports whether anything was removed. The head is
// then reset to the highest resident linked block, first inserted on ties.
// ErrHeadlessStore is returned when no linked block remains.
func (g *ForkGraph) RemoveBlock(id chainhash.Hash) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := g.linked.Remove(id)
	if !removed {
		removed = g.staging.Remove(id)
	}
	g.metrics.ObserveStoreSize(StoreLinked, g.linked.Len())
	g.metrics.ObserveStoreSize(StoreStaging, g.staging.Len())

	tip, ok := g.linked.Tip()
	if !ok {
		g.head = nil
		g.logger.Error("fork graph left without head", zap.Stringer("removed", id))
		return removed, fmt.Errorf("remove block %s: %w", id, ErrHeadlessStore)
	}
	g.setHead(tip)
	return removed, nil
}

// ContainsBlock reports whether id is in the linked or the staging store.
func (g *ForkGraph) ContainsBlock(id chainhash.Hash) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.linked.ByHash(id); ok {
		return true
	}
	_, ok := g.staging.ByHash(id)
	return ok
}

// ContainsInLinked reports whether id is in the linked store.
func (g *ForkGraph) ContainsInLinked(id chainhash.Hash) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.linked.ByHash(id)
	return ok
}

// GetBlock returns the payload of id, searching linked before staging.
func (g *ForkGraph) GetBlock(id chainhash.Hash) (Block, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if ref, ok := g.linked.ByHash(id); ok {
		return ref.block, true
	}
	if ref, ok := g.staging.ByHash(id); ok {
		return ref.block, true
	}
	return nil, false
}

// Parent returns the payload of the resident parent of id.
func (g *ForkGraph) Parent(id chainhash.Hash) (Block, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ref, ok := g.linked.ByHash(id)
	if !ok {
		ref, ok = g.staging.ByHash(id)
	}
	if !ok {
		return nil, false
	}
	parent, ok := ref.parent(g.linked)
	if !ok {
		return nil, false
	}
	return parent.block, true
}

// BlocksAtHeight returns the linked blocks at height in arrival order.
func (g *ForkGraph) BlocksAtHeight(height uint64) []Block {
	g.mu.RLock()
	defer g.mu.RUnlock()

	refs := g.linked.ByHeight(height)
	blocks := make([]Block, 0, len(refs))
	for _, ref := range refs {
		blocks = append(blocks, ref.block)
	}
	return blocks
}

// Head returns the payload of the head, or nil before Start.
func (g *ForkGraph) Head() Block {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.head == nil {
		return nil
	}
	return g.head.block
}

// HasData reports whether the linked store holds any block.
func (g *ForkGraph) HasData() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.linked.Len() > 0
}

// SetMaxSize sets the retained height window of both stores and prunes
// blocks that fall outside it.
func (g *ForkGraph) SetMaxSize(capacity uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.linked.SetCapacity(capacity)
	g.staging.SetCapacity(capacity)
	g.sweep()
}

// SetValidity marks a resident block and reports whether it was found.
func (g *ForkGraph) SetValidity(id chainhash.Hash, v Validity) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	ref, ok := g.linked.ByHash(id)
	if !ok {
		ref, ok = g.staging.ByHash(id)
	}
	if !ok {
		return false
	}
	ref.SetValidity(v)
	return true
}

// Stats returns store sizes and the head height.
func (g *ForkGraph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		Linked:  g.linked.Len(),
		Staging: g.staging.Len(),
	}
	if g.head != nil {
		s.HeadHeight = g.head.num
		s.HasHead = true
	}
	return s
}

func (g *ForkGraph) setHead(ref *BlockRef) {
	if g.head != nil && g.head.id == ref.id {
		return
	}
	g.head = ref
	g.metrics.ObserveHead(ref.num)
	g.logger.Info("head changed",
		zap.Stringer("hash", ref.id),
		zap.Uint64("height", ref.num),
	)
}

// sweep prunes both stores against the head height.
func (g *ForkGraph) sweep() {
	if g.head == nil {
		return
	}
	frontier := g.head.num
	g.prune(StoreLinked, g.linked, frontier)
	g.prune(StoreStaging, g.staging, frontier)
}

func (g *ForkGraph) prune(name string, store *Store, frontier uint64) {
	if evicted := store.Prune(frontier); len(evicted) > 0 {
		g.metrics.ObserveEvicted(name, len(evicted))
		fields := []zap.Field{
			zap.String("store", name),
			zap.Int("count", len(evicted)),
			zap.Uint64("frontier", frontier),
			zap.Uint64("threshold", EvictionThreshold(frontier, store.Capacity())),
		}
		if heights := store.Heights(); len(heights) > 0 {
			fields = append(fields, zap.Uint64("lowest_height", heights[0]))
		}
		g.logger.Debug("evicted blocks", fields...)
	}
	g.metrics.ObserveStoreSize(name, store.Len())
}
