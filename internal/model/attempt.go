package model

import (
	"time"

	"github.com/google/uuid"
)

// Attempt outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// UnknownUser is recorded when no username could be resolved for an attempt.
const UnknownUser = "unknown"

// PasswordAttempt is the audit record for a single evaluation. The candidate
// password itself is never stored.
type PasswordAttempt struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Outcome   string    `json:"outcome" db:"outcome"`
	Reason    string    `json:"reason" db:"reason"`
	IPAddress string    `json:"ip_address" db:"ip_address"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CheckRequest is the payload for a password check call.
type CheckRequest struct {
	Password string         `json:"password" binding:"required"`
	Account  *AccountRecord `json:"account,omitempty"`
}

// CheckResponse surfaces the verdict to API callers.
type CheckResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}
