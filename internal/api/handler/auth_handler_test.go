package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/session"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, email, password string) (*domain.Session, error)
	logoutFn  func(ctx context.Context, s *domain.Session) error
	loggedOut *domain.Session
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sess *domain.Session) error {
	s.loggedOut = sess
	if s.logoutFn != nil {
		return s.logoutFn(ctx, sess)
	}
	return nil
}

func newAuthTestEnv(stub *stubAuthService) (*echo.Echo, *AuthHandler, *session.Codec) {
	e := echo.New()
	e.Validator = NewValidator()
	codec := session.NewCodec("test-secret", "pos_session")
	h := NewAuthHandler(stub, codec, false, zerolog.Nop())
	return e, h, codec
}

func adminSession() *domain.Session {
	return &domain.Session{
		Principal: domain.Principal{
			ID:          "u1",
			Name:        "Admin",
			Email:       "admin@pos.com",
			Role:        domain.RoleSuperAdmin,
			Permissions: map[string]bool{"canEditProducts": true},
		},
		Token:    "tok123",
		IssuedAt: time.Now(),
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Session, error) {
			if email != "admin@pos.com" || password != "admin123" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return adminSession(), nil
		},
	}
	e, h, codec := newAuthTestEnv(stub)

	body := strings.NewReader(`{"email":"admin@pos.com","password":"admin123"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var setCookie string
	for _, line := range rec.Header().Values("Set-Cookie") {
		if strings.HasPrefix(line, "pos_session=") {
			setCookie = line
		}
	}
	if setCookie == "" {
		t.Fatal("expected session cookie to be set")
	}
	if !strings.Contains(setCookie, "HttpOnly") {
		t.Fatalf("session cookie must be HttpOnly: %s", setCookie)
	}

	raw := strings.TrimPrefix(strings.Split(setCookie, ";")[0], "pos_session=")
	sess, err := codec.Decode(raw)
	if err != nil {
		t.Fatalf("cookie does not decode: %v", err)
	}
	if sess.Principal.Email != "admin@pos.com" || sess.Token != "tok123" {
		t.Fatalf("unexpected session payload: %+v", sess)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatal("expected user in response")
	}
	if user["role"] != domain.RoleSuperAdmin {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Session, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	e, h, _ := newAuthTestEnv(stub)

	for _, body := range []string{
		`{"email":"","password":"x"}`,
		`{"email":"not-an-email","password":"x"}`,
		`{"email":"a@b.com","password":""}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())

		err := h.Login(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_BackendMessagePassthrough(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Session, error) {
			return nil, &backend.AuthFailure{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
		},
	}
	e, h, _ := newAuthTestEnv(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"email":"a@b.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Login(c)
	if err == nil {
		t.Fatal("expected error")
	}
	var af *backend.AuthFailure
	if !errors.As(err, &af) {
		t.Fatalf("expected AuthFailure to surface unchanged, got %v", err)
	}
	if af.Message != "Invalid credentials" || af.StatusCode != http.StatusUnauthorized {
		t.Fatalf("backend message must survive verbatim: %+v", af)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Session, error) { return nil, nil },
	}
	e, h, _ := newAuthTestEnv(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", adminSession())

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if stub.loggedOut == nil || stub.loggedOut.Token != "tok123" {
		t.Fatalf("expected logout to reach the service, got %+v", stub.loggedOut)
	}

	var cleared bool
	for _, line := range rec.Header().Values("Set-Cookie") {
		if strings.HasPrefix(line, "pos_session=") && strings.Contains(line, "Max-Age=0") {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected expired session cookie")
	}
}

func TestAuthHandler_Logout_AnonymousStillClears(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Session, error) { return nil, nil },
	}
	e, h, _ := newAuthTestEnv(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if stub.loggedOut != nil {
		t.Fatal("service must not be called without a session")
	}
}

func TestAuthHandler_Session(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Session, error) { return nil, nil },
	}
	e, h, _ := newAuthTestEnv(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", adminSession())

	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User == nil || resp.User.Email != "admin@pos.com" {
		t.Fatalf("unexpected session response: %+v", resp)
	}
	if resp.ExpiresAt == "" {
		t.Fatal("expected expires_at")
	}

	// Anonymous request gets 401.
	c2 := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil), httptest.NewRecorder())
	err := h.Session(c2)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous session lookup, got %v", err)
	}
}
