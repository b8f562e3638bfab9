// Package evaluator decides whether a candidate password is acceptable,
// sequencing the structural checks and the dictionary collaborator.
package evaluator

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/passvet/passvet/internal/dictionary"
	"github.com/passvet/passvet/internal/identity"
	"github.com/passvet/passvet/internal/model"
	"github.com/passvet/passvet/internal/policy"
	"github.com/passvet/passvet/pkg/errors"
	"github.com/passvet/passvet/pkg/metrics"
)

// AttemptRecorder records attempt audit entries. Recording is fire-and-forget
// and must never influence the verdict.
type AttemptRecorder interface {
	Record(ctx context.Context, attempt *model.PasswordAttempt)
}

// Request is a single password evaluation call.
type Request struct {
	Password  string
	Account   *model.AccountRecord
	IPAddress string
	UserAgent string
}

type Service struct {
	checker  dictionary.Checker
	auditor  AttemptRecorder
	metrics  *metrics.Metrics
	logger   zerolog.Logger
	dictPath string
}

// NewService builds an evaluator. auditor may be nil when auditing is not
// wired; metrics may be nil.
func NewService(checker dictionary.Checker, auditor AttemptRecorder,
	m *metrics.Metrics, logger zerolog.Logger, dictPath string) *Service {
	return &Service{
		checker:  checker,
		auditor:  auditor,
		metrics:  m,
		logger:   logger,
		dictPath: dictPath,
	}
}

// Evaluate runs the full acceptability pipeline: identity resolution,
// palindrome check, complexity scoring, then the dictionary check. Every
// rejection is terminal; a dictionary checker failure is returned as an
// error so the caller never fails open. Evaluation is stateless and safe for
// concurrent use.
func (s *Service) Evaluate(ctx context.Context, req Request) (model.Verdict, error) {
	start := time.Now()

	hint, hasUser := identity.Resolve(req.Account)
	if req.Account != nil && !hasUser {
		s.logger.Debug().Msg("no username on account record, proceeding without identity-aware checks")
	}

	if policy.IsPalindrome(req.Password) {
		return s.reject(ctx, req, hint, model.ReasonPalindrome, start), nil
	}

	if v := policy.Score(req.Password); !v.Accepted {
		return s.reject(ctx, req, hint, v.Reason, start), nil
	}

	dictStart := time.Now()
	var (
		reason string
		err    error
	)
	if hasUser {
		reason, err = s.checker.CheckWithUser(ctx, req.Password, s.dictPath, hint.Username, hint.DisplayName)
	} else {
		reason, err = s.checker.Check(ctx, req.Password, s.dictPath)
	}
	s.metrics.ObserveDictionary(time.Since(dictStart).Seconds())

	if err != nil {
		return model.Verdict{}, errors.Unavailable("password evaluation could not complete", err)
	}
	if reason != "" {
		return s.reject(ctx, req, hint, reason, start), nil
	}

	// Success is silent on the operational log; the audit trail still gets
	// the accepted attempt.
	s.record(ctx, req, hint, model.OutcomeAccepted, "")
	s.metrics.ObserveEvaluation(model.OutcomeAccepted, "", time.Since(start).Seconds())
	return model.Accept(), nil
}

func (s *Service) reject(ctx context.Context, req Request, hint model.IdentityHint,
	reason string, start time.Time) model.Verdict {
	s.logger.Info().
		Str("username", usernameOrUnknown(hint)).
		Str("reason", reason).
		Msg("password change attempt rejected")

	s.record(ctx, req, hint, model.OutcomeRejected, reason)
	s.metrics.ObserveEvaluation(model.OutcomeRejected, reason, time.Since(start).Seconds())
	return model.Reject(reason)
}

func (s *Service) record(ctx context.Context, req Request, hint model.IdentityHint,
	outcome, reason string) {
	if s.auditor == nil {
		return
	}
	s.auditor.Record(ctx, &model.PasswordAttempt{
		Username:  usernameOrUnknown(hint),
		Outcome:   outcome,
		Reason:    reason,
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
	})
}

func usernameOrUnknown(hint model.IdentityHint) string {
	if hint.HasUsername() {
		return hint.Username
	}
	return model.UnknownUser
}
