package domain

import "time"

// LoginOutcome labels the result of a single login attempt in the audit trail.
type LoginOutcome string

const (
	LoginSucceeded LoginOutcome = "success"
	LoginRejected  LoginOutcome = "invalid_credentials"
	LoginLocked    LoginOutcome = "locked"
	LoginInactive  LoginOutcome = "inactive"
)

// LoginAttempt is one audit-trail record. Attempts for the same username are
// recorded in submission order; attempts across usernames carry no ordering
// guarantee.
type LoginAttempt struct {
	Username  string
	RemoteIP  string
	Outcome   LoginOutcome
	Timestamp time.Time
}
