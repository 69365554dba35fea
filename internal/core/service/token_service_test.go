package service

import (
	"testing"
	"time"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

func testIdentity() *domain.Identity {
	return &domain.Identity{
		ID:       "id-1",
		Username: "alice",
		RoleID:   "role-admin",
		Status:   domain.StatusActive,
	}
}

func TestTokenService_IssueAndAuthenticate(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Authenticate(token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if claims.Subject != "id-1" || claims.Username != "alice" || claims.RoleID != "role-admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Millisecond)

	token, err := svc.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	time.Sleep(1100 * time.Millisecond) // jwt NumericDate has second precision

	if _, err := svc.Authenticate(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b"} {
		if _, err := svc.Authenticate(token); err != domain.ErrTokenMalformed {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenService_IncompleteClaims(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// A well-signed token still needs all three identity claims; a blank
	// subject, username, or role must not authenticate.
	incomplete := []*domain.Identity{
		{ID: "", Username: "alice", RoleID: "role-admin"},
		{ID: "id-1", Username: "", RoleID: "role-admin"},
		{ID: "id-1", Username: "alice", RoleID: ""},
	}
	for _, identity := range incomplete {
		token, err := svc.Issue(identity)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := svc.Authenticate(token); err != domain.ErrTokenInvalid {
			t.Fatalf("identity %+v: expected ErrTokenInvalid, got %v", identity, err)
		}
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Authenticate(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
