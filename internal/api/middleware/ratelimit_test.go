package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type memRateStore struct {
	counts map[string]int64
	err    error
}

func (s *memRateStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.counts == nil {
		s.counts = map[string]int64{}
	}
	s.counts[key]++
	return s.counts[key], nil
}

func doLogin(t *testing.T, mw echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:4242"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	return rec, err
}

func TestRateLimitUnderLimit(t *testing.T) {
	store := &memRateStore{}
	mw := RateLimit(store, 3, time.Minute, zerolog.Nop())

	rec, err := doLogin(t, mw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "2" {
		t.Fatalf("expected remaining 2, got %q", got)
	}
}

func TestRateLimitOverLimit(t *testing.T) {
	store := &memRateStore{}
	mw := RateLimit(store, 2, time.Minute, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := doLogin(t, mw); err != nil {
			t.Fatalf("attempt %d: unexpected error %v", i, err)
		}
	}
	rec, err := doLogin(t, mw)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Fatalf("expected remaining 0, got %q", got)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	store := &memRateStore{err: errors.New("redis down")}
	mw := RateLimit(store, 1, time.Minute, zerolog.Nop())

	for i := 0; i < 5; i++ {
		if _, err := doLogin(t, mw); err != nil {
			t.Fatalf("expected fail-open, got %v", err)
		}
	}
}
