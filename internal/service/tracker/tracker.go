// Package tracker follows a node's best chain and feeds its headers into a
// fork graph, reporting reorganizations as the head switches branches.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/forkdb/internal/clock"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Tracker polls a HeaderSource and keeps a ForkGraph in step with it.
type Tracker struct {
	logger          *zap.Logger
	graph           ForkGraph
	source          HeaderSource
	handler         ReorgHandler
	metrics         Metrics
	limiter         ratelimit.Limiter
	rejected        *lru.Cache[chainhash.Hash, struct{}]
	wait            func(context.Context, time.Duration, <-chan struct{}) error
	pollInterval    time.Duration
	bootstrapDepth  uint64
	batchSize       uint64
	workerCount     int
	maxAncestorWalk int
	blockSignal     <-chan struct{}
}

type options struct {
	pollInterval      time.Duration
	bootstrapDepth    uint64
	batchSize         uint64
	workerCount       int
	rpcRate           int
	maxAncestorWalk   int
	rejectedCacheSize int
	blockSignal       <-chan struct{}
	handler           ReorgHandler
}

// Option configures a Tracker.
type Option func(*options)

// WithPollInterval sets how long the tracker waits between polls once caught up.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) { o.pollInterval = d }
}

// WithBootstrapDepth sets how far below the node tip an empty graph is seeded.
func WithBootstrapDepth(depth uint64) Option {
	return func(o *options) { o.bootstrapDepth = depth }
}

// WithBatchSize caps the number of heights fetched per iteration.
func WithBatchSize(n uint64) Option {
	return func(o *options) { o.batchSize = n }
}

// WithWorkers sets the number of concurrent header fetches.
func WithWorkers(n int) Option {
	return func(o *options) { o.workerCount = n }
}

// WithRPCRate limits source calls per second. Zero or less disables the limit.
func WithRPCRate(rps int) Option {
	return func(o *options) { o.rpcRate = rps }
}

// WithMaxAncestorWalk bounds how many missing ancestors are fetched for one header.
func WithMaxAncestorWalk(n int) Option {
	return func(o *options) { o.maxAncestorWalk = n }
}

// WithRejectedCacheSize sets how many rejected header hashes are remembered.
func WithRejectedCacheSize(n int) Option {
	return func(o *options) { o.rejectedCacheSize = n }
}

// WithBlockSignal wakes the tracker early whenever the channel fires.
func WithBlockSignal(signal <-chan struct{}) Option {
	return func(o *options) { o.blockSignal = signal }
}

// WithReorgHandler replaces the default logging reorg handler.
func WithReorgHandler(h ReorgHandler) Option {
	return func(o *options) { o.handler = h }
}

// New builds a Tracker.
func New(graph ForkGraph, source HeaderSource, metrics Metrics, logger *zap.Logger, opts ...Option) (*Tracker, error) {
	if graph == nil {
		return nil, errors.New("tracker fork graph is required")
	}
	if source == nil {
		return nil, errors.New("tracker header source is required")
	}
	if metrics == nil {
		return nil, errors.New("tracker metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	o := options{
		pollInterval:      defaultPollInterval,
		bootstrapDepth:    defaultBootstrapDepth,
		batchSize:         defaultBatchSize,
		workerCount:       defaultWorkerCount,
		rpcRate:           defaultRPCRate,
		maxAncestorWalk:   defaultMaxAncestorWalk,
		rejectedCacheSize: defaultRejectedCacheSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.batchSize == 0 {
		return nil, errors.New("tracker batch size must be positive")
	}
	if o.workerCount <= 0 {
		return nil, errors.New("tracker worker count must be positive")
	}

	rejected, err := lru.New[chainhash.Hash, struct{}](o.rejectedCacheSize)
	if err != nil {
		return nil, err
	}

	limiter := ratelimit.NewUnlimited()
	if o.rpcRate > 0 {
		limiter = ratelimit.New(o.rpcRate)
	}

	handler := o.handler
	if handler == nil {
		handler = NewLogReorgHandler(logger.Named("reorg"))
	}

	return &Tracker{
		logger:          logger,
		graph:           graph,
		source:          source,
		handler:         handler,
		metrics:         metrics,
		limiter:         limiter,
		rejected:        rejected,
		wait:            clock.WaitWithContext,
		pollInterval:    o.pollInterval,
		bootstrapDepth:  o.bootstrapDepth,
		batchSize:       o.batchSize,
		workerCount:     o.workerCount,
		maxAncestorWalk: o.maxAncestorWalk,
		blockSignal:     o.blockSignal,
	}, nil
}

// Run follows the source until the context is canceled.
func (t *Tracker) Run(ctx context.Context) error {
	t.logger.Info("starting tracker",
		zap.Uint64("bootstrap_depth", t.bootstrapDepth),
		zap.Uint64("batch_size", t.batchSize),
		zap.Duration("poll_interval", t.pollInterval),
	)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		behind, err := t.run(ctx)
		if err != nil {
			t.logger.Warn("tracker iteration failed, backing off", zap.Error(err), zap.Duration("sleep", t.pollInterval))
		}
		if behind && err == nil {
			continue
		}
		if err := t.wait(ctx, t.pollInterval, t.blockSignal); err != nil {
			return err
		}
	}
}

// run performs one sync pass and reports whether the source still has
// heights beyond what was fetched.
func (t *Tracker) run(ctx context.Context) (bool, error) {
	started := time.Now()
	attached, behind, err := t.sync(ctx)
	t.metrics.ObserveIteration(err, attached, started)
	return behind, err
}
