package domain

import "time"

// SessionLifetime is the absolute validity window of a session, measured
// from original issuance. There is no refresh token and no sliding
// renewal: once the window closes the user must authenticate again.
const SessionLifetime = 30 * 24 * time.Hour

// Session binds a Principal to the backend bearer token obtained at login.
// Sessions are never mutated in place; login replaces them wholesale.
type Session struct {
	Principal Principal `json:"principal"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
}

// Age returns how long ago the session was issued.
func (s *Session) Age(now time.Time) time.Duration {
	return now.Sub(s.IssuedAt)
}

// Expired reports whether the session has outlived SessionLifetime.
// Expiry is terminal: an expired session behaves as if absent.
func (s *Session) Expired(now time.Time) bool {
	return s.Age(now) > SessionLifetime
}

// ExpiresAt returns the instant the session becomes invalid.
func (s *Session) ExpiresAt() time.Time {
	return s.IssuedAt.Add(SessionLifetime)
}
