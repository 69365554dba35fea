package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hr-platform/internal/core/domain"
	"github.com/peoplehub/hr-platform/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	unlockFn func(ctx context.Context, username string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Unlock(ctx context.Context, username string) error {
	return s.unlockFn(ctx, username)
}

type stubDispatcher struct {
	attempts []ports.LoginAttemptInput
}

func (d *stubDispatcher) Enqueue(attempt ports.LoginAttemptInput) {
	d.attempts = append(d.attempts, attempt)
}

func loginContext(t *testing.T, e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "alice" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.LoginResult{
				Token:    "token123",
				Identity: ports.IdentitySummary{ID: "id-1", Username: "alice", RoleID: "role-admin"},
			}, nil
		},
	}
	audit := &stubDispatcher{}
	handler := NewAuthHandler(stub, audit)

	c, rec := loginContext(t, e, `{"username":"alice","password":"s3cret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["token"] != "token123" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "id-1" || user["username"] != "alice" || user["role_id"] != "role-admin" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}

	if len(audit.attempts) != 1 || audit.attempts[0].Outcome != domain.LoginSucceeded {
		t.Fatalf("expected one success audit record, got %+v", audit.attempts)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	audit := &stubDispatcher{}
	handler := NewAuthHandler(stub, audit)

	c, rec := loginContext(t, e, `{"username":"ghost","password":"nope"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false || resp["reason"] != "invalid_credentials" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, present := resp["retry_after_seconds"]; present {
		t.Fatalf("retry_after_seconds must not leak on invalid credentials")
	}

	if len(audit.attempts) != 1 || audit.attempts[0].Outcome != domain.LoginRejected {
		t.Fatalf("expected one rejection audit record, got %+v", audit.attempts)
	}
}

func TestAuthHandler_Login_Locked(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, &domain.LockedError{RetryAfter: 14*time.Minute + 30*time.Second}
		},
	}
	handler := NewAuthHandler(stub, &stubDispatcher{})

	c, rec := loginContext(t, e, `{"username":"alice","password":"s3cret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusLocked {
		t.Fatalf("expected 423, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["reason"] != "locked" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["retry_after_seconds"] != float64(870) {
		t.Fatalf("expected retry_after_seconds 870, got %v", resp["retry_after_seconds"])
	}
}

func TestAuthHandler_Login_Inactive(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrAccountInactive
		},
	}
	handler := NewAuthHandler(stub, &stubDispatcher{})

	c, rec := loginContext(t, e, `{"username":"dave","password":"s3cret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["reason"] != "inactive" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubDispatcher{})

	for _, body := range []string{"not-json", `{"username":"alice"}`} {
		c, rec := loginContext(t, e, body)
		if err := handler.Login(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Login_StoreErrorPropagates(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, context.DeadlineExceeded
		},
	}
	audit := &stubDispatcher{}
	handler := NewAuthHandler(stub, audit)

	c, _ := loginContext(t, e, `{"username":"alice","password":"s3cret"}`)
	if err := handler.Login(c); err == nil {
		t.Fatalf("expected error to reach the central error handler")
	}
	if len(audit.attempts) != 0 {
		t.Fatalf("store outage must not be audited as a login outcome")
	}
}
