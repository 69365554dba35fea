package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hr-platform/internal/core/ports"
)

type stubMenuService struct {
	entries []ports.MenuEntry
	err     error
	roleID  string
}

func (s *stubMenuService) BuildMenu(ctx context.Context, roleID string) ([]ports.MenuEntry, error) {
	s.roleID = roleID
	return s.entries, s.err
}

func menuContext(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMenuHandler_ReturnsTreeForRole(t *testing.T) {
	e := echo.New()
	stub := &stubMenuService{
		entries: []ports.MenuEntry{
			{ID: "employees", Label: "Employees", Route: "/employees", Children: []ports.MenuEntry{
				{ID: "employees-list", Label: "Directory", Route: "/employees/list", Children: []ports.MenuEntry{}},
			}},
		},
	}
	handler := NewMenuHandler(stub)

	c, rec := menuContext(e)
	c.Set("role_id", "role-supervisor")
	if err := handler.Menu(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.roleID != "role-supervisor" {
		t.Fatalf("expected role from context, got %q", stub.roleID)
	}

	var entries []ports.MenuEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "employees" || len(entries[0].Children) != 1 {
		t.Fatalf("unexpected tree: %+v", entries)
	}
}

func TestMenuHandler_EmptyMenuIsAnArray(t *testing.T) {
	e := echo.New()
	handler := NewMenuHandler(&stubMenuService{entries: nil})

	c, rec := menuContext(e)
	c.Set("role_id", "role-restricted")
	if err := handler.Menu(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty json array, got %q", got)
	}
}

func TestMenuHandler_MissingRoleClaim(t *testing.T) {
	e := echo.New()
	handler := NewMenuHandler(&stubMenuService{})

	c, _ := menuContext(e)
	err := handler.Menu(c)
	if err == nil {
		t.Fatalf("expected error for missing role claim")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestMenuHandler_StoreErrorPropagates(t *testing.T) {
	e := echo.New()
	handler := NewMenuHandler(&stubMenuService{err: context.DeadlineExceeded})

	c, _ := menuContext(e)
	c.Set("role_id", "role-admin")
	if err := handler.Menu(c); err == nil {
		t.Fatalf("expected error to reach the central error handler")
	}
}
