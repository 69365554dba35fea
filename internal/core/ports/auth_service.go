package ports

import (
	"context"
)

// IdentitySummary is the caller-facing slice of an identity returned on a
// successful login. The password hash and lockout fields never leave the core.
type IdentitySummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	RoleID   string `json:"role_id"`
}

// LoginResult carries the issued session token and the identity it binds.
type LoginResult struct {
	Token    string
	Identity IdentitySummary
}

// AuthService implements login and the administrative unlock action.
//
// Login returns domain.ErrInvalidCredentials for unknown usernames and wrong
// passwords alike, *domain.LockedError while a lock window is open,
// domain.ErrAccountInactive for a correct password on a deactivated account,
// and a wrapped store error when the credential store is unreachable.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Unlock(ctx context.Context, username string) error
}
