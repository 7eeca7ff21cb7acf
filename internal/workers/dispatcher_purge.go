package workers

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-seal-doc/internal/logger"
)

const purgeKey = "purge"

// PurgeDispatcher runs opportunistic purges in the background. Triggers that
// arrive while a purge is in flight join it instead of starting another.
// Failures are logged and never reach the caller.
type PurgeDispatcher struct {
	purger  Purger
	timeout time.Duration
	clock   func() time.Time
	group   singleflight.Group
	wg      sync.WaitGroup
	logger  *logger.Logger
}

// NewPurgeDispatcher returns a dispatcher whose purges are bounded by
// timeout.
func NewPurgeDispatcher(purger Purger, timeout time.Duration, log *logger.Logger) *PurgeDispatcher {
	return &PurgeDispatcher{
		purger:  purger,
		timeout: timeout,
		clock:   time.Now,
		logger:  log,
	}
}

// Trigger schedules a purge and returns immediately. The purge outlives the
// cancellation of ctx; only its values (the request logger) are kept.
func (d *PurgeDispatcher) Trigger(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	d.wg.Go(func() {
		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		_, _, _ = d.group.Do(purgeKey, func() (any, error) {
			deleted, err := d.purger.Purge(ctx, d.clock())
			if err != nil {
				d.logger.Err(err).Str("func", "PurgeDispatcher.Trigger").Msg("opportunistic purge failed")
			}
			return deleted, err
		})
	})
}

// Wait blocks until every dispatched purge has finished.
func (d *PurgeDispatcher) Wait() {
	d.wg.Wait()
}
