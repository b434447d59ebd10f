// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// WaitWithContext waits for the duration, a value on wake, or context
// cancellation, whichever comes first. A nil wake channel never fires.
func WaitWithContext(ctx context.Context, d time.Duration, wake <-chan struct{}) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wake:
		return nil
	case <-timer.C:
		return nil
	}
}
