package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRBAC(t *testing.T, role string, allowed ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return RBAC(allowed...)(next)(c)
}

func TestRBAC_AllowedRole(t *testing.T) {
	if err := runRBAC(t, "admin", "admin"); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}

func TestRBAC_DisallowedRole(t *testing.T) {
	err := runRBAC(t, "customer", "admin")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRBAC_MissingRole(t *testing.T) {
	err := runRBAC(t, "", "admin")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when role claim is absent, got %v", err)
	}
}
