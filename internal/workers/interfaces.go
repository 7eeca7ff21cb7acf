// Package workers runs the background jobs of the document server: the
// periodic purge of expired documents and the fire-and-forget purge that
// follows every create.
package workers

import (
	"context"
	"time"
)

// Worker is a long-running background job.
//
// Run blocks until ctx is cancelled. Implementations must return promptly
// once that happens.
type Worker interface {
	Run(ctx context.Context)
}

// Purger removes documents that are past their expiry window at now and
// reports how many were removed.
type Purger interface {
	Purge(ctx context.Context, now time.Time) (int64, error)
}

// PurgerFunc adapts an ordinary function to [Purger].
type PurgerFunc func(ctx context.Context, now time.Time) (int64, error)

// Purge calls f(ctx, now).
func (f PurgerFunc) Purge(ctx context.Context, now time.Time) (int64, error) {
	return f(ctx, now)
}
