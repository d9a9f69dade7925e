package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openretail/pos-gateway/internal/core/domain"
)

func testCodec(now time.Time) *Codec {
	c := NewCodec("test-secret", "pos_session")
	c.now = func() time.Time { return now }
	return c
}

func samplePrincipal() domain.Principal {
	return domain.Principal{
		ID:     "42",
		Name:   "Ada",
		Email:  "ada@pos.com",
		Role:   domain.RoleManager,
		RoleID: "role-7",
		Permissions: map[string]bool{
			"canEditProducts":   true,
			"canDeleteProducts": false,
		},
		Image:       "https://cdn.example.com/ada.png",
		LastLoginAt: time.Unix(1700000000, 0).UTC(),
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	issued := time.Unix(1750000000, 0).UTC()
	c := testCodec(issued)

	in := &domain.Session{Principal: samplePrincipal(), Token: "tok123", IssuedAt: issued}
	raw, err := c.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Token != "tok123" {
		t.Fatalf("token: got %q", out.Token)
	}
	if !out.IssuedAt.Equal(issued) {
		t.Fatalf("issued at: got %v want %v", out.IssuedAt, issued)
	}

	p := out.Principal
	want := samplePrincipal()
	if p.ID != want.ID || p.Name != want.Name || p.Email != want.Email ||
		p.Role != want.Role || p.RoleID != want.RoleID || p.Image != want.Image {
		t.Fatalf("principal fields mismatch: %+v", p)
	}
	if !p.LastLoginAt.Equal(want.LastLoginAt) {
		t.Fatalf("last login: got %v want %v", p.LastLoginAt, want.LastLoginAt)
	}
	if len(p.Permissions) != len(want.Permissions) {
		t.Fatalf("permissions size mismatch: %v", p.Permissions)
	}
	for k, v := range want.Permissions {
		if p.Permissions[k] != v {
			t.Fatalf("permission %s: got %v want %v", k, p.Permissions[k], v)
		}
	}
}

func TestCodec_AbsoluteExpiry(t *testing.T) {
	issued := time.Unix(1750000000, 0).UTC()
	c := testCodec(issued)

	raw, err := c.Encode(&domain.Session{Principal: samplePrincipal(), Token: "tok", IssuedAt: issued})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// One hour before the window closes: still valid.
	c.now = func() time.Time { return issued.Add(domain.SessionLifetime - time.Hour) }
	if _, err := c.Decode(raw); err != nil {
		t.Fatalf("session inside window rejected: %v", err)
	}

	// One hour past: terminal expiry regardless of activity in between.
	c.now = func() time.Time { return issued.Add(domain.SessionLifetime + time.Hour) }
	if _, err := c.Decode(raw); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestCodec_TamperedToken(t *testing.T) {
	issued := time.Unix(1750000000, 0).UTC()
	c := testCodec(issued)

	raw, err := c.Encode(&domain.Session{Principal: samplePrincipal(), Token: "tok", IssuedAt: issued})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	other := NewCodec("different-secret", "pos_session")
	other.now = c.now
	if _, err := other.Decode(raw); err == nil {
		t.Fatalf("token signed with another secret must not verify")
	}

	if _, err := c.Decode(raw + "x"); err == nil {
		t.Fatalf("corrupted token must not verify")
	}
}

func TestCodec_NilPermissionsBecomeEmpty(t *testing.T) {
	issued := time.Unix(1750000000, 0).UTC()
	c := testCodec(issued)

	in := &domain.Session{
		Principal: domain.Principal{ID: "1", Name: "Min", Email: "m@pos.com", Role: domain.RoleCashier},
		Token:     "tok",
		IssuedAt:  issued,
	}
	raw, err := c.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Principal.Permissions == nil {
		t.Fatalf("permissions must never be nil on a decoded principal")
	}
}

func TestCodec_DecodeRequest(t *testing.T) {
	issued := time.Unix(1750000000, 0).UTC()
	c := testCodec(issued)

	raw, err := c.Encode(&domain.Session{Principal: samplePrincipal(), Token: "tok", IssuedAt: issued})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Absent: anonymous, not an error condition.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := c.DecodeRequest(req); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	// Cookie wins.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "pos_session", Value: raw})
	s, err := c.DecodeRequest(req)
	if err != nil {
		t.Fatalf("cookie decode: %v", err)
	}
	if s.Principal.ID != "42" {
		t.Fatalf("unexpected principal: %+v", s.Principal)
	}

	// Bearer header fallback.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	if _, err := c.DecodeRequest(req); err != nil {
		t.Fatalf("bearer decode: %v", err)
	}
}
