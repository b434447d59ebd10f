package tracker

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/forkdb/internal/forkdb"
	"github.com/goodnatureofminers/forkdb/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeaderSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		HeaderByHeight(ctx context.Context, height uint64) (*model.Header, error)
		HeaderByHash(ctx context.Context, hash chainhash.Hash) (*model.Header, error)
	}
	ForkGraph interface {
		Start(block forkdb.Block) error
		Attach(block forkdb.Block) (forkdb.Block, error)
		Head() forkdb.Block
		HasData() bool
		ContainsInLinked(id chainhash.Hash) bool
		FindDivergence(a, b chainhash.Hash) (*forkdb.Fork, error)
	}
	ReorgHandler interface {
		HandleReorg(ctx context.Context, reorg Reorg) error
	}
	Metrics interface {
		ObserveIteration(err error, headers int, started time.Time)
		ObserveAncestorWalk(err error, steps int)
		ObserveReorg(connected, disconnected int)
		ObserveRejected()
	}
)

// Reorg describes a head change that abandons blocks of the previous head.
// Connected runs from the block after Ancestor up to the new head.
// Disconnected runs from the previous head down to the block after Ancestor.
type Reorg struct {
	Ancestor     forkdb.Block
	Connected    []forkdb.Block
	Disconnected []forkdb.Block
}
