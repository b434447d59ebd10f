package metrics

import (
	"time"

	"github.com/goodnatureofminers/forkdb/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trackerIterationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "iterations_total",
		Help:      "Count of tracker sync iterations.",
	}, []string{"coin", "network", "status"})

	trackerIterationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "iteration_duration_seconds",
		Help:      "Duration of a tracker sync iteration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	trackerHeadersAttached = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "headers_attached",
		Help:      "Number of headers attached per iteration.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"coin", "network"})

	trackerAncestorWalkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "ancestor_walks_total",
		Help:      "Count of walks back to a linked ancestor.",
	}, []string{"coin", "network", "status"})

	trackerAncestorWalkSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "ancestor_walk_steps",
		Help:      "Number of ancestors fetched per walk.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"coin", "network"})

	trackerReorgTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "reorgs_total",
		Help:      "Count of detected chain reorganizations.",
	}, []string{"coin", "network"})

	trackerReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "reorg_depth_blocks",
		Help:      "Number of blocks disconnected by a reorganization.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"coin", "network"})

	trackerRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "rejected_headers_total",
		Help:      "Count of headers rejected by the fork graph.",
	}, []string{"coin", "network"})
)

// Tracker tracks metrics for the chain tracker loop.
type Tracker struct {
	labels chainLabels
}

// NewTracker constructs tracker metrics for one chain.
func NewTracker(coin model.Coin, network model.Network) *Tracker {
	return &Tracker{labels: newChainLabels(coin, network)}
}

// ObserveIteration records one sync pass.
func (m Tracker) ObserveIteration(err error, headers int, started time.Time) {
	s := status(err)
	trackerIterationTotal.WithLabelValues(m.labels.coin, m.labels.network, s).Inc()
	trackerIterationDuration.WithLabelValues(m.labels.coin, m.labels.network, s).
		Observe(time.Since(started).Seconds())
	if headers > 0 {
		trackerHeadersAttached.WithLabelValues(m.labels.coin, m.labels.network).Observe(float64(headers))
	}
}

// ObserveAncestorWalk records a walk back to a linked ancestor.
func (m Tracker) ObserveAncestorWalk(err error, steps int) {
	trackerAncestorWalkTotal.WithLabelValues(m.labels.coin, m.labels.network, status(err)).Inc()
	trackerAncestorWalkSteps.WithLabelValues(m.labels.coin, m.labels.network).Observe(float64(steps))
}

// ObserveReorg records a reorganization.
func (m Tracker) ObserveReorg(_, disconnected int) {
	trackerReorgTotal.WithLabelValues(m.labels.coin, m.labels.network).Inc()
	trackerReorgDepth.WithLabelValues(m.labels.coin, m.labels.network).Observe(float64(disconnected))
}

// ObserveRejected records a header rejected by the fork graph.
func (m Tracker) ObserveRejected() {
	trackerRejectedTotal.WithLabelValues(m.labels.coin, m.labels.network).Inc()
}
