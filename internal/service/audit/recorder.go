package audit

import (
	"context"
	"time"

	"github.com/passvet/passvet/internal/model"
)

// recordTimeout bounds the detached write so a stuck store cannot leak
// goroutines forever.
const recordTimeout = 5 * time.Second

// Recorder records attempts without blocking the evaluation path. Failures
// are counted and logged but never surfaced to the caller.
type Recorder struct {
	service *Service
}

func NewRecorder(service *Service) *Recorder {
	return &Recorder{service: service}
}

// Record writes the attempt asynchronously. The write is detached from the
// caller's context so an already-answered request cannot cancel it.
func (r *Recorder) Record(_ context.Context, attempt *model.PasswordAttempt) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := r.service.Record(ctx, attempt); err != nil {
			r.service.metrics.IncAuditFailure()
			r.service.logger.Error().Err(err).
				Str("username", attempt.Username).
				Str("outcome", attempt.Outcome).
				Msg("failed to record password attempt")
		}
	}()
}

// RecordSync writes the attempt on the caller's goroutine. Used by tests and
// batch tooling that needs the error.
func (r *Recorder) RecordSync(ctx context.Context, attempt *model.PasswordAttempt) error {
	return r.service.Record(ctx, attempt)
}
