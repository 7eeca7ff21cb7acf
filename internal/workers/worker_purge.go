package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-seal-doc/internal/logger"
)

// PurgeWorker invokes a [Purger] on a fixed interval. The first purge runs
// immediately on start.
type PurgeWorker struct {
	purger   Purger
	interval time.Duration
	clock    func() time.Time
	logger   *logger.Logger
}

func NewPurgeWorker(purger Purger, interval time.Duration, log *logger.Logger) *PurgeWorker {
	return &PurgeWorker{
		purger:   purger,
		interval: interval,
		clock:    time.Now,
		logger:   log,
	}
}

func (w *PurgeWorker) Run(ctx context.Context) {
	w.logger.Info().Str("func", "PurgeWorker.Run").Dur("interval", w.interval).Msg("purge worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.purge(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Str("func", "PurgeWorker.Run").Msg("purge worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *PurgeWorker) purge(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	deleted, err := w.purger.Purge(w.logger.WithContext(ctx), w.clock())
	if err != nil {
		w.logger.Err(err).Str("func", "PurgeWorker.purge").Msg("scheduled purge failed")
		return
	}
	if deleted > 0 {
		w.logger.Info().Str("func", "PurgeWorker.purge").Int64("deleted", deleted).Msg("expired documents purged")
	}
}
