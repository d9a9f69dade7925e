package ports

import (
	"context"

	"github.com/openretail/pos-gateway/internal/core/domain"
)

// AuthService owns the credential exchange and the session lifecycle
// boundaries: login creates a session, logout revokes and destroys one.
type AuthService interface {
	// Login exchanges credentials for a fresh session. The session's
	// IssuedAt is the time of this call.
	Login(ctx context.Context, email, password string) (*domain.Session, error)

	// Logout revokes the session's token with the backend (best effort)
	// and denylists it locally. It never fails the local logout.
	Logout(ctx context.Context, s *domain.Session) error
}
