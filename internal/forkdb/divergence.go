package forkdb

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Fork describes two branches of the linked store and the block they share.
// PathA and PathB run from their endpoint towards Ancestor, which neither
// path contains.
type Fork struct {
	Ancestor *BlockRef
	PathA    []*BlockRef
	PathB    []*BlockRef
}

// FindDivergence walks back from a and b until both reach the same block.
// Only linked blocks are eligible. ErrNoCommonAncestor is returned when an
// endpoint is missing or a parent on either walk is no longer resident;
// partial paths are never returned.
func (g *ForkGraph) FindDivergence(a, b chainhash.Hash) (fork *Fork, err error) {
	started := time.Now()
	defer func() {
		var depthA, depthB int
		if fork != nil {
			depthA, depthB = len(fork.PathA), len(fork.PathB)
		}
		g.metrics.ObserveDivergence(err, depthA, depthB, started)
	}()

	g.mu.RLock()
	defer g.mu.RUnlock()

	return findDivergence(g.linked, a, b)
}

func findDivergence(store *Store, a, b chainhash.Hash) (*Fork, error) {
	cursorA, ok := store.ByHash(a)
	if !ok {
		return nil, fmt.Errorf("block %s not linked: %w", a, ErrNoCommonAncestor)
	}
	cursorB, ok := store.ByHash(b)
	if !ok {
		return nil, fmt.Errorf("block %s not linked: %w", b, ErrNoCommonAncestor)
	}

	var (
		pathA, pathB []*BlockRef
		err          error
	)
	for cursorA.num > cursorB.num {
		pathA = append(pathA, cursorA)
		if cursorA, err = stepBack(store, cursorA); err != nil {
			return nil, err
		}
	}
	for cursorB.num > cursorA.num {
		pathB = append(pathB, cursorB)
		if cursorB, err = stepBack(store, cursorB); err != nil {
			return nil, err
		}
	}
	for !cursorA.Equal(cursorB) {
		pathA = append(pathA, cursorA)
		pathB = append(pathB, cursorB)
		if cursorA, err = stepBack(store, cursorA); err != nil {
			return nil, err
		}
		if cursorB, err = stepBack(store, cursorB); err != nil {
			return nil, err
		}
	}

	return &Fork{
		Ancestor: cursorA,
		PathA:    pathA,
		PathB:    pathB,
	}, nil
}

func stepBack(store *Store, ref *BlockRef) (*BlockRef, error) {
	parent, ok := ref.parent(store)
	if !ok {
		return nil, fmt.Errorf("parent %s of block %s at height %d not linked: %w",
			ref.parentID, ref.id, ref.num, ErrNoCommonAncestor)
	}
	return parent, nil
}
