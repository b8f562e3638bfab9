package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/passvet/passvet/internal/model"
	"github.com/passvet/passvet/internal/repository"
)

type attemptRepository struct {
	db *sqlx.DB
}

func NewAttemptRepository(db *sqlx.DB) repository.AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.PasswordAttempt) error {
	query := `
        INSERT INTO password_attempts (
            id, username, outcome, reason, ip_address, user_agent, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := r.db.ExecContext(ctx, query,
		attempt.ID,
		attempt.Username,
		attempt.Outcome,
		attempt.Reason,
		attempt.IPAddress,
		attempt.UserAgent,
		attempt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create password attempt: %w", err)
	}
	return nil
}

func (r *attemptRepository) List(ctx context.Context, filters map[string]interface{}) ([]*model.PasswordAttempt, error) {
	query := `SELECT * FROM password_attempts WHERE 1=1`
	var args []interface{}

	if v, ok := filters["username"]; ok {
		query += fmt.Sprintf(" AND username = $%d", len(args)+1)
		args = append(args, v)
	}
	if v, ok := filters["outcome"]; ok {
		query += fmt.Sprintf(" AND outcome = $%d", len(args)+1)
		args = append(args, v)
	}

	query += " ORDER BY created_at DESC"

	var attempts []*model.PasswordAttempt
	if err := r.db.SelectContext(ctx, &attempts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list password attempts: %w", err)
	}
	return attempts, nil
}

func (r *attemptRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM password_attempts WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete password attempts: %w", err)
	}
	return result.RowsAffected()
}
