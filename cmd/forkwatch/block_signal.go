//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

// startBlockSignal is a no-op without the zmq build tag; the tracker polls.
func startBlockSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		logger.Warn("zmq address ignored, binary built without zmq tag", zap.String("addr", addr))
	}
	return nil, nil
}
