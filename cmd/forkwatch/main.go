// Command forkwatch follows a bitcoin-family node and reports chain
// reorganizations seen within a bounded window of recent blocks.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/forkdb/internal/bitcoin"
	"github.com/goodnatureofminers/forkdb/internal/forkdb"
	"github.com/goodnatureofminers/forkdb/internal/metrics"
	"github.com/goodnatureofminers/forkdb/internal/model"
	"github.com/goodnatureofminers/forkdb/internal/service/tracker"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Coin           model.Coin    `long:"coin" env:"FORKWATCH_COIN" description:"coin name" required:"true"`
	Network        model.Network `long:"network" env:"FORKWATCH_NETWORK" description:"network name" required:"true"`
	RPCURL         string        `long:"rpc-url" env:"FORKWATCH_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser        string        `long:"rpc-user" env:"FORKWATCH_RPC_USER" description:"node RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"FORKWATCH_RPC_PASSWORD" description:"node RPC password"`
	MaxSize        uint64        `long:"max-size" env:"FORKWATCH_MAX_SIZE" description:"number of heights retained below the head" default:"1024"`
	BootstrapDepth uint64        `long:"bootstrap-depth" env:"FORKWATCH_BOOTSTRAP_DEPTH" description:"heights below the node tip to seed from" default:"100"`
	BatchSize      uint64        `long:"batch-size" env:"FORKWATCH_BATCH_SIZE" description:"max headers fetched per iteration" default:"100"`
	RPCRate        int           `long:"rpc-rps" env:"FORKWATCH_RPC_RPS" description:"max RPC calls per second, 0 disables the limit" default:"50"`
	Workers        int           `long:"workers" env:"FORKWATCH_WORKERS" description:"concurrent header fetches" default:"8"`
	PollInterval   time.Duration `long:"poll-interval" env:"FORKWATCH_POLL_INTERVAL" description:"wait between polls once caught up" default:"5s"`
	ZMQAddr        string        `long:"zmq-addr" env:"FORKWATCH_ZMQ_ADDR" description:"node zmq hashblock endpoint"`
	MetricsAddr    string        `long:"metrics-addr" env:"FORKWATCH_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("forkwatch failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(
		zap.String("coin", string(cfg.Coin)),
		zap.String("network", string(cfg.Network)),
	)
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := bitcoin.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))
	source := bitcoin.NewHeaderSource(rpc, cfg.Coin, cfg.Network)

	graph, err := forkdb.NewForkGraph(
		metrics.NewForkGraph(cfg.Coin, cfg.Network),
		logger.Named("forkdb"),
		forkdb.WithCapacity(cfg.MaxSize),
	)
	if err != nil {
		return fmt.Errorf("init fork graph: %w", err)
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger.Named("zmq"))
	if err != nil {
		return fmt.Errorf("init block signal: %w", err)
	}

	svc, err := tracker.New(
		graph,
		source,
		metrics.NewTracker(cfg.Coin, cfg.Network),
		logger.Named("tracker"),
		tracker.WithBootstrapDepth(cfg.BootstrapDepth),
		tracker.WithBatchSize(cfg.BatchSize),
		tracker.WithRPCRate(cfg.RPCRate),
		tracker.WithWorkers(cfg.Workers),
		tracker.WithPollInterval(cfg.PollInterval),
		tracker.WithBlockSignal(blockSignal),
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}
