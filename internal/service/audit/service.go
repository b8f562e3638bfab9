package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/passvet/passvet/internal/model"
	"github.com/passvet/passvet/internal/repository"
	"github.com/passvet/passvet/pkg/messaging"
	"github.com/passvet/passvet/pkg/metrics"
)

// RejectionChannel is the pub/sub channel rejected attempts are broadcast on.
const RejectionChannel = "passvet.rejections"

type Service struct {
	repo      repository.AttemptRepository
	publisher messaging.Publisher
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewService builds an audit service. publisher may be nil, in which case
// rejection events are not broadcast.
func NewService(repo repository.AttemptRepository, publisher messaging.Publisher,
	m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Record persists one password attempt and broadcasts it when rejected.
// The attempt's ID and timestamp are assigned here.
func (s *Service) Record(ctx context.Context, attempt *model.PasswordAttempt) error {
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now().UTC()
	}
	if attempt.Username == "" {
		attempt.Username = model.UnknownUser
	}

	if err := s.repo.Create(ctx, attempt); err != nil {
		return err
	}

	if s.publisher != nil && attempt.Outcome == model.OutcomeRejected {
		if err := s.publisher.Publish(ctx, RejectionChannel, attempt); err != nil {
			// Broadcast is best-effort and never affects the verdict.
			s.metrics.IncPublishFailure()
		}
	}

	return nil
}

// List returns stored attempts matching the filters.
func (s *Service) List(ctx context.Context, filters map[string]interface{}) ([]*model.PasswordAttempt, error) {
	return s.repo.List(ctx, filters)
}

// Cleanup removes attempts older than the cutoff and returns how many went.
func (s *Service) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.DeleteBefore(ctx, cutoff)
}
