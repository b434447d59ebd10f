package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/forkdb/internal/model"
	"github.com/goodnatureofminers/forkdb/pkg/safe"
)

// HeaderSource fetches headers from a Bitcoin node.
type HeaderSource struct {
	rpc     RPCClient
	coin    model.Coin
	network model.Network
}

// NewHeaderSource creates a HeaderSource.
func NewHeaderSource(rpc RPCClient, coin model.Coin, network model.Network) *HeaderSource {
	return &HeaderSource{
		rpc:     rpc,
		coin:    coin,
		network: network,
	}
}

// LatestHeight returns the latest block height from the node.
func (s *HeaderSource) LatestHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// HeaderByHeight returns the header at height on the node's best chain.
func (s *HeaderSource) HeaderByHeight(ctx context.Context, height uint64) (*model.Header, error) {
	rpcHeight, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("block height exceeds rpc limit: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.rpc.GetBlockHash(rpcHeight)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return s.HeaderByHash(ctx, *hash)
}

// HeaderByHash returns the header of the block with the given hash.
func (s *HeaderSource) HeaderByHash(ctx context.Context, hash chainhash.Hash) (*model.Header, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := s.rpc.GetBlockHeaderVerbose(&hash)
	if err != nil {
		return nil, fmt.Errorf("get block header %s: %w", hash, err)
	}
	return BuildHeaderFromVerbose(*src, s.coin, s.network)
}
