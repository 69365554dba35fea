package domain

import (
	"errors"
	"fmt"
	"time"
)

// AccountStatus is the administrative state of an identity. It is an explicit
// enumeration: anything other than StatusActive is treated as inactive.
type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusInactive AccountStatus = "inactive"
)

// IsActive reports whether the account may complete a login. Unknown status
// values fail closed.
func (s AccountStatus) IsActive() bool {
	return s == StatusActive
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrIdentityNotFound = errors.New("identity not found")
var ErrAccountInactive = errors.New("account inactive")
var ErrForbidden = errors.New("access forbidden")

// LockedError reports a login attempt rejected by the lockout policy.
// RetryAfter is the time remaining until the lock window expires.
type LockedError struct {
	RetryAfter time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account locked, retry after %s", e.RetryAfter)
}

// Identity models an account capable of authenticating.
//
// FailedAttempts and LockedUntil are the only fields this core mutates; they
// form the lockout state machine (see lockout.go). Usernames are matched
// exactly as stored, case included.
type Identity struct {
	ID             string        `json:"id"`
	Username       string        `json:"username"`
	PasswordHash   string        `json:"-"`
	RoleID         string        `json:"role_id"`
	Status         AccountStatus `json:"status"`
	FailedAttempts int           `json:"failed_attempts"`
	LockedUntil    *time.Time    `json:"locked_until,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
