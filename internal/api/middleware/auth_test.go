package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/selvanails/selva-api/internal/core/ports"
)

type stubVerifier struct {
	claims *ports.TokenClaims
	err    error
}

func (s *stubVerifier) VerifyToken(string) (*ports.TokenClaims, error) {
	return s.claims, s.err
}

func runAuth(t *testing.T, verifier TokenVerifier, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, Auth(verifier)(next)(c)
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, &stubVerifier{}, "")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err := runAuth(t, &stubVerifier{}, "Basic abc123")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("bad token")}
	_, err := runAuth(t, verifier, "Bearer not-a-token")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ValidToken_InjectsClaims(t *testing.T) {
	verifier := &stubVerifier{claims: &ports.TokenClaims{
		UserID: "u1",
		Email:  "alice@example.com",
		Role:   "customer",
	}}

	c, err := runAuth(t, verifier, "Bearer token123")
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if c.Get("user_id") != "u1" || c.Get("email") != "alice@example.com" || c.Get("role") != "customer" {
		t.Fatalf("claims not injected: %v %v %v", c.Get("user_id"), c.Get("email"), c.Get("role"))
	}
}

func TestAuth_BearerSchemeIsCaseInsensitive(t *testing.T) {
	verifier := &stubVerifier{claims: &ports.TokenClaims{UserID: "u1", Role: "admin"}}

	_, err := runAuth(t, verifier, "bearer token123")
	if err != nil {
		t.Fatalf("expected lowercase scheme to pass, got %v", err)
	}
}
