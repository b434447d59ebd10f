package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/forkdb/internal/forkdb"
	"go.uber.org/zap"
)

// reconcile compares the previous and current heads and hands any
// reorganization to the handler.
func (t *Tracker) reconcile(ctx context.Context, prev, next forkdb.Block) error {
	fork, err := t.graph.FindDivergence(next.ID(), prev.ID())
	if err != nil {
		if errors.Is(err, forkdb.ErrNoCommonAncestor) {
			t.logger.Error("previous head is outside the retained window",
				zap.Stringer("previous", prev.ID()),
				zap.Stringer("head", next.ID()),
			)
		}
		return fmt.Errorf("reconcile head %s with %s: %w", next.ID(), prev.ID(), err)
	}
	if len(fork.PathB) == 0 {
		return nil
	}

	reorg := Reorg{
		Ancestor:     fork.Ancestor.Block(),
		Connected:    make([]forkdb.Block, 0, len(fork.PathA)),
		Disconnected: make([]forkdb.Block, 0, len(fork.PathB)),
	}
	for i := len(fork.PathA) - 1; i >= 0; i-- {
		reorg.Connected = append(reorg.Connected, fork.PathA[i].Block())
	}
	for _, ref := range fork.PathB {
		reorg.Disconnected = append(reorg.Disconnected, ref.Block())
	}

	t.metrics.ObserveReorg(len(reorg.Connected), len(reorg.Disconnected))
	if err := t.handler.HandleReorg(ctx, reorg); err != nil {
		return fmt.Errorf("handle reorg at %s: %w", fork.Ancestor.ID(), err)
	}
	return nil
}

// LogReorgHandler reports reorganizations to a logger.
type LogReorgHandler struct {
	logger *zap.Logger
}

// NewLogReorgHandler builds a LogReorgHandler.
func NewLogReorgHandler(logger *zap.Logger) *LogReorgHandler {
	return &LogReorgHandler{logger: logger}
}

// HandleReorg logs the ancestor and both tips of the reorganization.
func (h *LogReorgHandler) HandleReorg(_ context.Context, reorg Reorg) error {
	fields := []zap.Field{
		zap.Stringer("ancestor", reorg.Ancestor.ID()),
		zap.Uint64("ancestor_height", reorg.Ancestor.Num()),
		zap.Int("connected", len(reorg.Connected)),
		zap.Int("disconnected", len(reorg.Disconnected)),
	}
	if n := len(reorg.Connected); n > 0 {
		fields = append(fields, zap.Stringer("new_tip", reorg.Connected[n-1].ID()))
	}
	if len(reorg.Disconnected) > 0 {
		fields = append(fields, zap.Stringer("old_tip", reorg.Disconnected[0].ID()))
	}
	h.logger.Info("chain reorganization", fields...)
	return nil
}
