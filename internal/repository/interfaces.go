package repository

import (
	"context"
	"time"

	"github.com/passvet/passvet/internal/model"
)

// AttemptRepository persists password attempt audit records.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.PasswordAttempt) error
	List(ctx context.Context, filters map[string]interface{}) ([]*model.PasswordAttempt, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
