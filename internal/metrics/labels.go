// Package metrics exposes Prometheus collectors for the fork graph, the
// chain tracker and node RPC calls.
package metrics

import "github.com/goodnatureofminers/forkdb/internal/model"

const namespace = "forkdb"

type chainLabels struct {
	coin    string
	network string
}

func newChainLabels(coin model.Coin, network model.Network) chainLabels {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return chainLabels{coin: string(coin), network: string(network)}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
