package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/passvet/passvet/internal/service/audit"
)

// CleanupWorker periodically deletes password attempts older than the
// retention window.
type CleanupWorker struct {
	svc           *audit.Service
	retentionDays int
	interval      time.Duration
	logger        zerolog.Logger
}

func NewCleanupWorker(svc *audit.Service, retentionDays int, interval time.Duration,
	logger zerolog.Logger) *CleanupWorker {
	return &CleanupWorker{
		svc:           svc,
		retentionDays: retentionDays,
		interval:      interval,
		logger:        logger,
	}
}

func (w *CleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().AddDate(0, 0, -w.retentionDays)
			deleted, err := w.svc.Cleanup(ctx, cutoff)
			if err != nil {
				w.logger.Error().Err(err).Msg("attempt cleanup failed")
				continue
			}
			if deleted > 0 {
				w.logger.Info().Int64("deleted", deleted).Msg("cleaned up old password attempts")
			}
		}
	}
}
