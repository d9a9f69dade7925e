// Package session encodes the authenticated principal and its backend
// bearer token into a stateless signed cookie, and decodes it back on
// every request. Expiry is absolute: thirty days from issuance, never
// renewed by activity.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openretail/pos-gateway/internal/core/domain"
)

// ErrNoSession is returned by DecodeRequest when no session cookie or
// bearer header is present. Callers treat it as anonymous, not as a
// failure.
var ErrNoSession = errors.New("no session")

// Codec signs and verifies session tokens with a shared HMAC secret.
type Codec struct {
	secret     []byte
	cookieName string
	now        func() time.Time
}

// NewCodec returns a Codec signing with secret and reading/writing the
// named cookie.
func NewCodec(secret, cookieName string) *Codec {
	return &Codec{
		secret:     []byte(secret),
		cookieName: cookieName,
		now:        time.Now,
	}
}

// CookieName returns the configured session cookie name.
func (c *Codec) CookieName() string { return c.cookieName }

type sessionClaims struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	RoleID      string          `json:"role_id,omitempty"`
	Permissions map[string]bool `json:"permissions"`
	Image       string          `json:"image,omitempty"`
	LastLoginAt int64           `json:"last_login_at,omitempty"`
	AccessToken string          `json:"access_token"`
	jwt.RegisteredClaims
}

// Encode packs the session into a signed compact JWT. The session's
// IssuedAt is stamped here when unset.
func (c *Codec) Encode(s *domain.Session) (string, error) {
	issued := s.IssuedAt
	if issued.IsZero() {
		issued = c.now()
	}

	claims := sessionClaims{
		Name:        s.Principal.Name,
		Email:       s.Principal.Email,
		Role:        s.Principal.Role,
		RoleID:      s.Principal.RoleID,
		Permissions: s.Principal.Permissions,
		Image:       s.Principal.Image,
		AccessToken: s.Token,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.Principal.ID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(domain.SessionLifetime)),
		},
	}
	if !s.Principal.LastLoginAt.IsZero() {
		claims.LastLoginAt = s.Principal.LastLoginAt.Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies the signature and reconstructs the session. A session
// older than domain.SessionLifetime yields domain.ErrSessionExpired and
// a nil session: from that point the principal and token are treated as
// absent. The age check runs on the issuance claim itself so the window
// cannot be stretched by a generous exp claim.
func (c *Codec) Decode(tokenString string) (*domain.Session, error) {
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.IssuedAt == nil {
		return nil, jwt.ErrTokenInvalidClaims
	}
	issued := claims.IssuedAt.Time

	s := &domain.Session{
		Principal: domain.Principal{
			ID:          claims.Subject,
			Name:        claims.Name,
			Email:       claims.Email,
			Role:        claims.Role,
			RoleID:      claims.RoleID,
			Permissions: claims.Permissions,
			Image:       claims.Image,
		},
		Token:    claims.AccessToken,
		IssuedAt: issued,
	}
	if s.Principal.Permissions == nil {
		s.Principal.Permissions = map[string]bool{}
	}
	if claims.LastLoginAt != 0 {
		s.Principal.LastLoginAt = time.Unix(claims.LastLoginAt, 0).UTC()
	}

	if s.Expired(c.now()) {
		return nil, domain.ErrSessionExpired
	}
	return s, nil
}

// DecodeRequest extracts the session from the request's cookie, falling
// back to a bearer Authorization header. ErrNoSession means anonymous.
func (c *Codec) DecodeRequest(r *http.Request) (*domain.Session, error) {
	if ck, err := r.Cookie(c.cookieName); err == nil && ck.Value != "" {
		return c.Decode(ck.Value)
	}
	const prefix = "Bearer "
	if h := r.Header.Get("Authorization"); len(h) > len(prefix) && h[:len(prefix)] == prefix {
		return c.Decode(h[len(prefix):])
	}
	return nil, ErrNoSession
}

// Cookie builds the Set-Cookie value for an encoded session.
func (c *Codec) Cookie(value string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     c.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(domain.SessionLifetime / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie builds an expired cookie that removes the session.
func (c *Codec) ClearCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     c.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
