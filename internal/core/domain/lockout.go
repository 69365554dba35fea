package domain

import "time"

// LockoutState classifies an identity's position in the lockout state machine.
type LockoutState string

const (
	LockoutClean       LockoutState = "clean"        // counter 0, no lock
	LockoutWarned      LockoutState = "warned"       // counter below threshold, no lock
	LockoutLocked      LockoutState = "locked"       // lock window open
	LockoutExpiredLock LockoutState = "expired_lock" // lock window passed, counter retained
)

// LockoutPolicy is the pure decision logic over an identity's failed-attempt
// counter and lock-expiry timestamp. It never touches storage; callers apply
// the computed transitions through the identity repository.
type LockoutPolicy struct {
	Threshold    int
	LockDuration time.Duration
}

// LockoutDecision is the outcome of Evaluate.
type LockoutDecision struct {
	Permitted bool
	Remaining time.Duration
}

// State derives the machine state from the identity's lockout fields.
// An expired lock is not proactively cleared; the stale counter stays visible
// to operators until the next successful login resets it.
func (p LockoutPolicy) State(id *Identity, now time.Time) LockoutState {
	if id.LockedUntil != nil {
		if id.LockedUntil.After(now) {
			return LockoutLocked
		}
		return LockoutExpiredLock
	}
	if id.FailedAttempts > 0 {
		return LockoutWarned
	}
	return LockoutClean
}

// Evaluate decides whether an authentication attempt may proceed. Only an
// open lock window denies the attempt; every other state, including an
// expired lock with the counter still at threshold, is permitted.
func (p LockoutPolicy) Evaluate(id *Identity, now time.Time) LockoutDecision {
	if p.State(id, now) == LockoutLocked {
		return LockoutDecision{Remaining: id.LockedUntil.Sub(now)}
	}
	return LockoutDecision{Permitted: true}
}

// NextFailure computes the counter and lock expiry after one more failed
// verification. Reaching the threshold opens a lock window of LockDuration;
// a failure in the expired-lock state opens a fresh window, since the counter
// is never reset while a lock is pending.
func (p LockoutPolicy) NextFailure(id *Identity, now time.Time) (count int, lockedUntil *time.Time) {
	count = id.FailedAttempts + 1
	if count >= p.Threshold {
		expiry := now.Add(p.LockDuration)
		return count, &expiry
	}
	return count, id.LockedUntil
}
