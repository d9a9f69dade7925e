package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/openretail/pos-gateway/internal/core/authz"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
	"github.com/openretail/pos-gateway/internal/session"
)

const testCookie = "pos_session"

func testCodec(t *testing.T) *session.Codec {
	t.Helper()
	return session.NewCodec("test-secret", testCookie)
}

func testSession() *domain.Session {
	return &domain.Session{
		Principal: domain.Principal{
			ID:          "u1",
			Email:       "admin@pos.com",
			Role:        domain.RoleAdmin,
			Permissions: map[string]bool{"canEditProducts": true},
		},
		Token:    "backend-token",
		IssuedAt: time.Now(),
	}
}

type stubDenylist struct {
	revoked map[string]bool
	err     error
}

func (d *stubDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return nil
}

func (d *stubDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	return d.revoked[token], d.err
}

func runSession(t *testing.T, codec *session.Codec, deny ports.TokenDenylist, req *http.Request) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var inner echo.Context
	h := Session(codec, deny, zerolog.Nop())(func(c echo.Context) error {
		inner = c
		return nil
	})
	err := h(c)
	return inner, err
}

func TestSessionAnonymousPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	c, err := runSession(t, testCodec(t), nil, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if SessionFrom(c) != nil {
		t.Fatal("expected no session for anonymous request")
	}
}

func TestSessionDecodesCookie(t *testing.T) {
	codec := testCodec(t)
	token, err := codec.Encode(testSession())
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

	c, err := runSession(t, codec, nil, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := SessionFrom(c)
	if s == nil {
		t.Fatal("expected session in context")
	}
	if s.Principal.Email != "admin@pos.com" {
		t.Fatalf("unexpected principal: %+v", s.Principal)
	}
	if TokenFrom(c) != "backend-token" {
		t.Fatalf("unexpected token %q", TokenFrom(c))
	}
}

func TestSessionRevokedTokenIsAnonymous(t *testing.T) {
	codec := testCodec(t)
	token, err := codec.Encode(testSession())
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

	deny := &stubDenylist{revoked: map[string]bool{"backend-token": true}}
	c, err := runSession(t, codec, deny, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if SessionFrom(c) != nil {
		t.Fatal("revoked token must not produce a session")
	}
}

func TestSessionDenylistFailureIsAdvisory(t *testing.T) {
	codec := testCodec(t)
	token, err := codec.Encode(testSession())
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

	deny := &stubDenylist{err: context.DeadlineExceeded}
	c, err := runSession(t, codec, deny, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if SessionFrom(c) == nil {
		t.Fatal("denylist outage should not log the user out")
	}
}

func TestRequireAuthWithoutSession(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/products", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	h := RequireAuth()(func(c echo.Context) error { return nil })
	err := h(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if !strings.Contains(he.Message.(string), "authentication required") {
		t.Fatalf("unexpected message %v", he.Message)
	}
}

func TestRequireAuthExpiredSession(t *testing.T) {
	codec := testCodec(t)
	old := testSession()
	old.IssuedAt = time.Now().Add(-domain.SessionLifetime - time.Hour)
	token, err := codec.Encode(old)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())
	h := Session(codec, nil, zerolog.Nop())(RequireAuth()(func(c echo.Context) error { return nil }))
	err = h(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if !strings.Contains(he.Message.(string), "expired") {
		t.Fatalf("expected expiry message, got %v", he.Message)
	}
}

func TestRequireRoleDeniesOutsiders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/reports/sales", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	s := testSession()
	s.Principal.Role = domain.RoleCashier
	c.Set(keySession, s)

	h := RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin)(func(c echo.Context) error { return nil })
	err := h(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequirePermissionAll(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/products/1", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	s := testSession()
	s.Principal.Permissions = map[string]bool{"canEditProducts": true}
	c.Set(keySession, s)

	guard := Require(authz.Requirement{
		Permissions: []string{"canEditProducts", "canDeleteProducts"},
		RequireAll:  true,
	})
	err := guard(func(c echo.Context) error { return nil })(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for missing permission, got %v", err)
	}

	s.Principal.Permissions["canDeleteProducts"] = true
	if err := guard(func(c echo.Context) error { return nil })(c); err != nil {
		t.Fatalf("expected pass with both permissions, got %v", err)
	}
}
