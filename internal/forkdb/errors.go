package forkdb

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// ErrHeightMismatch is returned when a block's height is not its parent's height plus one.
	ErrHeightMismatch = errors.New("block height does not follow parent")
	// ErrUnlinkedParent is returned when the parent is not in the linked store.
	// The block is kept in staging and may be attached again later.
	ErrUnlinkedParent = errors.New("parent block is not linked")
	// ErrNoCommonAncestor is returned when two branches cannot be walked back to a shared block.
	ErrNoCommonAncestor = errors.New("no common ancestor")
	// ErrHeadlessStore is returned when a removal leaves the linked store empty.
	ErrHeadlessStore = errors.New("fork graph has no head")
	// ErrAlreadyStarted is returned by a second Start.
	ErrAlreadyStarted = errors.New("fork graph already started")
)

// HeightMismatchError carries the heights of a rejected block and its parent.
type HeightMismatchError struct {
	Hash         chainhash.Hash
	ParentHash   chainhash.Hash
	Height       uint64
	ParentHeight uint64
}

func (e *HeightMismatchError) Error() string {
	return fmt.Sprintf("block %s at height %d: parent %s at height %d: %s",
		e.Hash, e.Height, e.ParentHash, e.ParentHeight, ErrHeightMismatch)
}

func (e *HeightMismatchError) Unwrap() error {
	return ErrHeightMismatch
}
