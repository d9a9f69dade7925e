package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore implements fixed-window counting on Redis. INCR and
// the window expiry run in one pipeline so a crash between the two
// cannot leave an immortal counter.
type RateLimitStore struct {
	client *redis.Client
}

func NewRateLimitStore(client *redis.Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

func (s *RateLimitStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
