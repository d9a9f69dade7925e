package ports

import (
	"context"
	"time"
)

// TokenDenylist records revoked bearer tokens so logout takes effect
// immediately even though the session cookie is stateless. Entries only
// need to live as long as the session they invalidate.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
