package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ObservedClient wraps an RPCClient with metrics instrumentation.
type ObservedClient struct {
	client     RPCClient
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented RPC client.
func NewObservedClient(client RPCClient, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the height of the node's best block.
func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBlockHash returns the block hash for a height on the node's best chain.
func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetBlockHeaderVerbose returns the decoded header of a block.
func (r *ObservedClient) GetBlockHeaderVerbose(blockHash *chainhash.Hash) (res *btcjson.GetBlockHeaderVerboseResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_header_verbose", err, started)
	}()
	return r.client.GetBlockHeaderVerbose(blockHash)
}
