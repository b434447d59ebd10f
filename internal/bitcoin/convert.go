// Package bitcoin reads block headers from a Bitcoin node.
package bitcoin

import (
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/forkdb/internal/model"
	"github.com/goodnatureofminers/forkdb/pkg/safe"
)

// ParseBits parses a bits string into a 32-bit value.
func ParseBits(value string) (uint32, error) {
	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(parsed), nil
}

// ParseHash parses a hex block hash. The empty string, which the node reports
// as the previous hash of the genesis block, maps to the zero hash.
func ParseHash(value string) (chainhash.Hash, error) {
	if value == "" {
		return chainhash.Hash{}, nil
	}
	hash, err := chainhash.NewHashFromStr(value)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return *hash, nil
}

// BuildHeaderFromVerbose maps a btcjson header result into a model.Header.
func BuildHeaderFromVerbose(src btcjson.GetBlockHeaderVerboseResult, coin model.Coin, network model.Network) (*model.Header, error) {
	hash, err := ParseHash(src.Hash)
	if err != nil {
		return nil, fmt.Errorf("header %d hash parse: %w", src.Height, err)
	}
	prevHash, err := ParseHash(src.PreviousHash)
	if err != nil {
		return nil, fmt.Errorf("header %d previous hash parse: %w", src.Height, err)
	}
	bits, err := ParseBits(src.Bits)
	if err != nil {
		return nil, fmt.Errorf("header %d bits parse: %w", src.Height, err)
	}
	height, err := safe.Uint64(src.Height)
	if err != nil {
		return nil, fmt.Errorf("header height %d overflow: %w", src.Height, err)
	}
	version, err := safe.Uint32(src.Version)
	if err != nil {
		return nil, fmt.Errorf("header %d version overflow: %w", src.Height, err)
	}
	nonce, err := safe.Uint32(src.Nonce)
	if err != nil {
		return nil, fmt.Errorf("header %d nonce overflow: %w", src.Height, err)
	}

	return &model.Header{
		Coin:       coin,
		Network:    network,
		Hash:       hash,
		PrevHash:   prevHash,
		Height:     height,
		Timestamp:  time.Unix(src.Time, 0).UTC(),
		Version:    version,
		MerkleRoot: src.MerkleRoot,
		Bits:       bits,
		Nonce:      nonce,
		Difficulty: src.Difficulty,
	}, nil
}
