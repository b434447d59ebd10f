package metrics

import (
	"time"

	"github.com/goodnatureofminers/forkdb/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "coin", "network", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// RPCClient tracks metrics for RPC calls to blockchain nodes.
type RPCClient struct {
	labels chainLabels
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(coin model.Coin, network model.Network) *RPCClient {
	return &RPCClient{labels: newChainLabels(coin, network)}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	rpcRequestsTotal.WithLabelValues(operation, m.labels.coin, m.labels.network, s).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.labels.coin, m.labels.network, s).Observe(time.Since(started).Seconds())
}
