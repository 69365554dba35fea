package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hr-platform/internal/api/metrics"
	"github.com/peoplehub/hr-platform/internal/core/domain"
	"github.com/peoplehub/hr-platform/internal/core/ports"
)

// AuditDispatcher is the interface the handler uses to enqueue audit records.
type AuditDispatcher interface {
	Enqueue(attempt ports.LoginAttemptInput)
}

type AuthHandler struct {
	authService ports.AuthService
	audit       AuditDispatcher
}

func NewAuthHandler(authService ports.AuthService, audit AuditDispatcher) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

// Login authenticates a username/password pair and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  loginFailure
// @Failure      401   {object}  loginFailure
// @Failure      403   {object}  loginFailure
// @Failure      423   {object}  loginFailure
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, loginFailure{Reason: "invalid_payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, loginFailure{Reason: "invalid_payload"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.loginFailed(c, req.Username, err)
	}

	h.record(c, req.Username, domain.LoginSucceeded)
	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   result.Token,
		User:    result.Identity,
	})
}

// loginFailed maps a login error to its response envelope. Unknown usernames
// and wrong passwords share one envelope; only lockout and deactivation are
// distinguishable, and only unexpected store failures escape to the central
// error handler.
func (h *AuthHandler) loginFailed(c echo.Context, username string, err error) error {
	var locked *domain.LockedError
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.record(c, username, domain.LoginRejected)
		return c.JSON(http.StatusUnauthorized, loginFailure{Reason: "invalid_credentials"})
	case errors.As(err, &locked):
		h.record(c, username, domain.LoginLocked)
		return c.JSON(http.StatusLocked, loginFailure{
			Reason:            "locked",
			RetryAfterSeconds: retryAfterSeconds(locked.RetryAfter),
		})
	case errors.Is(err, domain.ErrAccountInactive):
		h.record(c, username, domain.LoginInactive)
		return c.JSON(http.StatusForbidden, loginFailure{Reason: "inactive"})
	default:
		return err
	}
}

func (h *AuthHandler) record(c echo.Context, username string, outcome domain.LoginOutcome) {
	metrics.LoginAttemptsTotal.WithLabelValues(string(outcome)).Inc()
	h.audit.Enqueue(ports.LoginAttemptInput{
		Username:  username,
		RemoteIP:  c.RealIP(),
		Outcome:   outcome,
		Timestamp: time.Now().UTC(),
	})
}

// retryAfterSeconds rounds the remaining lock duration up to whole seconds so
// a client honouring the hint never retries into a still-open window.
func retryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return secs
}
