package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/peoplehub/hr-platform/internal/core/domain"
	"github.com/peoplehub/hr-platform/internal/core/ports"
)

type auditService struct {
	attempts ports.AuditRepository
	log      zerolog.Logger
}

// NewAuditService returns an AuditService writing to the given repository.
func NewAuditService(attempts ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{attempts: attempts, log: log}
}

// Process persists a single login attempt into the audit trail.
func (s *auditService) Process(ctx context.Context, in ports.LoginAttemptInput) error {
	attempt := &domain.LoginAttempt{
		Username:  in.Username,
		RemoteIP:  in.RemoteIP,
		Outcome:   in.Outcome,
		Timestamp: in.Timestamp,
	}
	if err := s.attempts.InsertAttempt(ctx, attempt); err != nil {
		return fmt.Errorf("record login attempt: %w", err)
	}

	s.log.Debug().
		Str("username", in.Username).
		Str("outcome", string(in.Outcome)).
		Str("remote_ip", in.RemoteIP).
		Msg("login attempt recorded")

	return nil
}
