package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/forkdb/internal/forkdb"
	"github.com/goodnatureofminers/forkdb/internal/model"
	"github.com/goodnatureofminers/forkdb/pkg/workerpool"
	"go.uber.org/zap"
)

func (t *Tracker) sync(ctx context.Context) (int, bool, error) {
	t.limiter.Take()
	tip, err := t.source.LatestHeight(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("latest height: %w", err)
	}

	if !t.graph.HasData() {
		if err := t.bootstrap(ctx, tip); err != nil {
			return 0, false, err
		}
	}

	prev := t.graph.Head()
	if prev == nil {
		return 0, false, forkdb.ErrHeadlessStore
	}
	from := prev.Num() + 1
	if from > tip {
		t.logger.Debug("caught up with source", zap.Uint64("height", prev.Num()))
		return 0, false, nil
	}
	to := min(tip, prev.Num()+t.batchSize)

	headers, err := t.fetchRange(ctx, from, to)
	if err != nil {
		return 0, false, err
	}

	attached := 0
	for _, h := range headers {
		ok, err := t.attach(ctx, h)
		if err != nil {
			return attached, false, err
		}
		if ok {
			attached++
		}
	}

	if next := t.graph.Head(); next != nil && next.ID() != prev.ID() {
		if err := t.reconcile(ctx, prev, next); err != nil {
			return attached, false, err
		}
	}
	return attached, to < tip, nil
}

func (t *Tracker) bootstrap(ctx context.Context, tip uint64) error {
	height := tip - min(tip, t.bootstrapDepth)
	t.limiter.Take()
	h, err := t.source.HeaderByHeight(ctx, height)
	if err != nil {
		return fmt.Errorf("bootstrap header %d: %w", height, err)
	}

	err = t.graph.Start(h)
	if errors.Is(err, forkdb.ErrAlreadyStarted) {
		// The graph lost every block after starting; reseed through Attach.
		_, err = t.graph.Attach(h)
	}
	if err != nil {
		return fmt.Errorf("bootstrap at %s: %w", h.Hash, err)
	}
	t.logger.Info("fork graph seeded", zap.Uint64("height", h.Height), zap.Stringer("hash", h.Hash))
	return nil
}

func (t *Tracker) fetchRange(ctx context.Context, from, to uint64) ([]*model.Header, error) {
	heights := make([]uint64, 0, to-from+1)
	for h := from; h <= to; h++ {
		heights = append(heights, h)
	}

	return workerpool.Map(ctx, t.workerCount, heights, func(ctx context.Context, height uint64) (*model.Header, error) {
		t.limiter.Take()
		h, err := t.source.HeaderByHeight(ctx, height)
		if err != nil {
			return nil, fmt.Errorf("header %d: %w", height, err)
		}
		return h, nil
	})
}

// attach links h into the graph, fetching missing ancestors when needed.
// It reports false when h was skipped as rejected.
func (t *Tracker) attach(ctx context.Context, h *model.Header) (bool, error) {
	if t.rejected.Contains(h.Hash) {
		return false, nil
	}

	_, err := t.graph.Attach(h)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, forkdb.ErrHeightMismatch):
		t.reject(h, err)
		return false, nil
	case errors.Is(err, forkdb.ErrUnlinkedParent):
		return true, t.resolveAncestors(ctx, h)
	default:
		return false, err
	}
}

func (t *Tracker) reject(h *model.Header, err error) {
	t.rejected.Add(h.Hash, struct{}{})
	t.metrics.ObserveRejected()
	t.logger.Warn("header rejected", zap.Stringer("hash", h.Hash), zap.Uint64("height", h.Height), zap.Error(err))
}

// resolveAncestors walks back from h until it reaches a linked parent, then
// attaches the fetched headers oldest first.
func (t *Tracker) resolveAncestors(ctx context.Context, h *model.Header) (err error) {
	pending := []*model.Header{h}
	defer func() {
		t.metrics.ObserveAncestorWalk(err, len(pending)-1)
	}()

	cursor := h
	for !t.graph.ContainsInLinked(cursor.PrevHash) {
		if cursor.PrevHash == forkdb.ZeroHash || len(pending) > t.maxAncestorWalk {
			return fmt.Errorf("header %s: no linked ancestor within %d blocks: %w",
				h.Hash, len(pending)-1, forkdb.ErrUnlinkedParent)
		}
		t.limiter.Take()
		parent, err := t.source.HeaderByHash(ctx, cursor.PrevHash)
		if err != nil {
			return fmt.Errorf("ancestor %s: %w", cursor.PrevHash, err)
		}
		pending = append(pending, parent)
		cursor = parent
	}

	t.logger.Debug("attaching fetched ancestors", zap.Stringer("hash", h.Hash), zap.Int("ancestors", len(pending)-1))
	for i := len(pending) - 1; i >= 0; i-- {
		if _, err := t.graph.Attach(pending[i]); err != nil {
			if errors.Is(err, forkdb.ErrHeightMismatch) {
				// Descendants of a rejected header can never link.
				for _, d := range pending[:i+1] {
					t.reject(d, err)
				}
			}
			return fmt.Errorf("attach ancestor %s: %w", pending[i].Hash, err)
		}
	}
	return nil
}
