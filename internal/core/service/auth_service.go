package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplehub/hr-platform/internal/core/domain"
	"github.com/peoplehub/hr-platform/internal/core/ports"
)

// AuthService implements login with account lockout and the administrative
// unlock action. Its only side effects are the failed-attempt counter and
// lock-expiry fields on the identity.
type AuthService struct {
	identities ports.IdentityRepository
	tokens     *TokenService
	policy     domain.LockoutPolicy
	now        func() time.Time
	log        zerolog.Logger
}

func NewAuthService(identities ports.IdentityRepository, tokens *TokenService, policy domain.LockoutPolicy, log zerolog.Logger) *AuthService {
	if policy.Threshold <= 0 {
		policy.Threshold = 5
	}
	if policy.LockDuration <= 0 {
		policy.LockDuration = 15 * time.Minute
	}
	return &AuthService{
		identities: identities,
		tokens:     tokens,
		policy:     policy,
		now:        time.Now,
		log:        log,
	}
}

// Login authenticates a username/password pair.
//
// Unknown usernames and wrong passwords produce the same
// domain.ErrInvalidCredentials, so callers cannot enumerate accounts. The
// lockout policy is consulted before any password comparison: a locked
// account costs no bcrypt work and keeps its lock timing observable.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if decision := s.policy.Evaluate(identity, s.now()); !decision.Permitted {
		return nil, &domain.LockedError{RetryAfter: decision.Remaining}
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		if err := s.recordFailure(ctx, identity); err != nil {
			s.log.Error().Err(err).Str("username", username).Msg("failed to record login failure")
		}
		return nil, domain.ErrInvalidCredentials
	}

	if !identity.Status.IsActive() {
		// Lockout state is deliberately left untouched: a correct password on
		// a deactivated account is not a successful login.
		return nil, domain.ErrAccountInactive
	}

	if err := s.identities.ResetLockout(ctx, identity.Username); err != nil {
		return nil, fmt.Errorf("login: reset lockout: %w", err)
	}

	token, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("username", identity.Username).Str("role_id", identity.RoleID).Msg("login succeeded")

	return &ports.LoginResult{
		Token: token,
		Identity: ports.IdentitySummary{
			ID:       identity.ID,
			Username: identity.Username,
			RoleID:   identity.RoleID,
		},
	}, nil
}

// Unlock resets an identity's failed-attempt counter and clears any lock
// window. Repeating the call on an already-clean identity is a no-op.
func (s *AuthService) Unlock(ctx context.Context, username string) error {
	if err := s.identities.ResetLockout(ctx, username); err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return err
		}
		return fmt.Errorf("unlock: %w", err)
	}
	s.log.Info().Str("username", username).Msg("lockout cleared by administrator")
	return nil
}

// recordFailure applies one failed-verification transition through the
// repository's conditional update. A miss means a concurrent attempt won the
// write; the state is re-read and the transition recomputed, so increments
// are never lost. If the re-read shows an open lock window the increment is
// abandoned; concurrent over-threshold failures establish exactly one
// window, not several overlapping ones.
func (s *AuthService) recordFailure(ctx context.Context, identity *domain.Identity) error {
	for {
		count, lockedUntil := s.policy.NextFailure(identity, s.now())
		matched, err := s.identities.UpdateLockout(ctx, identity.Username, identity.FailedAttempts, count, lockedUntil)
		if err != nil {
			return err
		}
		if matched {
			if count == s.policy.Threshold {
				s.log.Warn().Str("username", identity.Username).Int("failed_attempts", count).Msg("account locked")
			}
			return nil
		}

		fresh, err := s.identities.FindByUsername(ctx, identity.Username)
		if err != nil {
			return err
		}
		if !s.policy.Evaluate(fresh, s.now()).Permitted {
			return nil
		}
		identity = fresh

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
