package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/forkdb/internal/forkdb"
	"github.com/goodnatureofminers/forkdb/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	forkAttachTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "attach_total",
		Help:      "Count of blocks offered to the fork graph by outcome.",
	}, []string{"coin", "network", "status"})

	forkAttachDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "attach_duration_seconds",
		Help:      "Duration of attaching a block to the fork graph.",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
	}, []string{"coin", "network", "status"})

	forkEvictedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "evicted_blocks_total",
		Help:      "Count of blocks evicted below the retention window.",
	}, []string{"coin", "network", "store"})

	forkStoreSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "store_blocks",
		Help:      "Number of blocks resident in each store.",
	}, []string{"coin", "network", "store"})

	forkHeadHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "head_height",
		Help:      "Height of the current fork graph head.",
	}, []string{"coin", "network"})

	forkDivergenceTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "divergence_total",
		Help:      "Count of divergence lookups.",
	}, []string{"coin", "network", "status"})

	forkDivergenceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "divergence_duration_seconds",
		Help:      "Duration of divergence lookups.",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
	}, []string{"coin", "network", "status"})

	forkDivergenceDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "divergence_depth_blocks",
		Help:      "Length of the longer path returned by a divergence lookup.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
	}, []string{"coin", "network"})
)

// ForkGraph records fork graph activity. It satisfies forkdb.Metrics.
type ForkGraph struct {
	labels chainLabels
}

// NewForkGraph constructs fork graph metrics for one chain.
func NewForkGraph(coin model.Coin, network model.Network) *ForkGraph {
	return &ForkGraph{labels: newChainLabels(coin, network)}
}

// ObserveAttach records the outcome of an attach call.
func (m ForkGraph) ObserveAttach(err error, started time.Time) {
	s := attachStatus(err)
	forkAttachTotal.WithLabelValues(m.labels.coin, m.labels.network, s).Inc()
	forkAttachDuration.WithLabelValues(m.labels.coin, m.labels.network, s).Observe(time.Since(started).Seconds())
}

// ObserveEvicted records blocks dropped from a store by the retention sweep.
func (m ForkGraph) ObserveEvicted(store string, count int) {
	forkEvictedTotal.WithLabelValues(m.labels.coin, m.labels.network, store).Add(float64(count))
}

// ObserveStoreSize records the current size of a store.
func (m ForkGraph) ObserveStoreSize(store string, size int) {
	forkStoreSize.WithLabelValues(m.labels.coin, m.labels.network, store).Set(float64(size))
}

// ObserveHead records the head height.
func (m ForkGraph) ObserveHead(height uint64) {
	forkHeadHeight.WithLabelValues(m.labels.coin, m.labels.network).Set(float64(height))
}

// ObserveDivergence records a divergence lookup.
func (m ForkGraph) ObserveDivergence(err error, depthA, depthB int, started time.Time) {
	s := status(err)
	forkDivergenceTotal.WithLabelValues(m.labels.coin, m.labels.network, s).Inc()
	forkDivergenceDuration.WithLabelValues(m.labels.coin, m.labels.network, s).Observe(time.Since(started).Seconds())
	if err == nil {
		forkDivergenceDepth.WithLabelValues(m.labels.coin, m.labels.network).Observe(float64(max(depthA, depthB)))
	}
}

func attachStatus(err error) string {
	switch {
	case err == nil:
		return "linked"
	case errors.Is(err, forkdb.ErrUnlinkedParent):
		return "staged"
	case errors.Is(err, forkdb.ErrHeightMismatch):
		return "height_mismatch"
	default:
		return "error"
	}
}
