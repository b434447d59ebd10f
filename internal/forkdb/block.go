// Package forkdb tracks unconfirmed blocks and their competing branches.
//
// A ForkGraph keeps two bounded stores: the linked store for blocks whose
// parent is resident, and the staging store for blocks that arrived before
// their parent. Parent relations are recorded as ids and resolved against the
// linked store on every use, so an evicted parent reads as absent.
package forkdb

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/atomic"
)

// ZeroHash is the parent id of a block that has no parent.
var ZeroHash chainhash.Hash

// Block is the caller-owned payload tracked by the graph.
type Block interface {
	ID() chainhash.Hash
	Num() uint64
	ParentID() chainhash.Hash
}

// Validity is the tri-state marking of a block.
type Validity int32

const (
	ValidityUnknown Validity = iota
	ValidityValid
	ValidityInvalid
)

func (v Validity) String() string {
	switch v {
	case ValidityValid:
		return "valid"
	case ValidityInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// BlockRef wraps a Block resident in one of the graph stores.
type BlockRef struct {
	id       chainhash.Hash
	num      uint64
	parentID chainhash.Hash
	block    Block

	// linked is set when the parent relation was established at insertion.
	linked   bool
	validity atomic.Int32
}

// NewBlockRef extracts id, height and parent id from block.
func NewBlockRef(block Block) *BlockRef {
	return &BlockRef{
		id:       block.ID(),
		num:      block.Num(),
		parentID: block.ParentID(),
		block:    block,
	}
}

func (r *BlockRef) ID() chainhash.Hash       { return r.id }
func (r *BlockRef) Num() uint64              { return r.num }
func (r *BlockRef) ParentID() chainhash.Hash { return r.parentID }
func (r *BlockRef) Block() Block             { return r.block }

// Validity returns the current marking.
func (r *BlockRef) Validity() Validity {
	return Validity(r.validity.Load())
}

// SetValidity updates the marking.
func (r *BlockRef) SetValidity(v Validity) {
	r.validity.Store(int32(v))
}

// Equal reports whether both refs carry the same id.
func (r *BlockRef) Equal(other *BlockRef) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.id == other.id
}

// link records the parent relation. Called once, before the ref is published.
func (r *BlockRef) link() {
	r.linked = true
}

// parent resolves the parent relation against store.
func (r *BlockRef) parent(store *Store) (*BlockRef, bool) {
	if !r.linked {
		return nil, false
	}
	return store.ByHash(r.parentID)
}
