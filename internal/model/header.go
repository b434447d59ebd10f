// Package model defines the block payloads tracked by the fork graph.
package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Header is a block header fetched from a node. It is the payload handed to
// the fork graph.
type Header struct {
	Coin       Coin
	Network    Network
	Hash       chainhash.Hash
	PrevHash   chainhash.Hash
	Height     uint64
	Timestamp  time.Time
	Version    uint32
	MerkleRoot string
	Bits       uint32
	Nonce      uint32
	Difficulty float64
}

func (h *Header) ID() chainhash.Hash       { return h.Hash }
func (h *Header) Num() uint64              { return h.Height }
func (h *Header) ParentID() chainhash.Hash { return h.PrevHash }
