// Package services holds the orchestration layer: relationship management,
// post creation with fan-out, the like ledger, the notification center, feed
// assembly and directory search. Services hold no state of their own; they
// coordinate the repositories and bound every storage call with a timeout.
package services

import (
	"context"
	"time"
)

// DefaultStorageTimeout bounds a single storage call when no explicit
// timeout is configured.
const DefaultStorageTimeout = 5 * time.Second

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultStorageTimeout
	}
	return context.WithTimeout(ctx, d)
}
