package handler

import "github.com/peoplehub/hr-platform/internal/core/ports"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses outside the login flow.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool                  `json:"success"`
	Token   string                `json:"token"`
	User    ports.IdentitySummary `json:"user"`
}

// loginFailure is the envelope shared by every rejected login. Reason is one
// of "invalid_credentials", "locked", or "inactive"; RetryAfterSeconds is
// present only when the account is locked.
type loginFailure struct {
	Success           bool   `json:"success"`
	Reason            string `json:"reason"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
}
