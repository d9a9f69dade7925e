package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/openretail/pos-gateway/internal/api/metrics"
)

// RateLimitStore counts hits against a key inside a fixed window. The
// first hit of a window arms the expiry.
type RateLimitStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit throttles a route per client IP. Meant for the login
// endpoint, where unbounded retries are a credential-stuffing vector.
func RateLimit(store RateLimitStore, limit int64, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ratelimit:login:" + c.RealIP()
			count, err := store.Incr(c.Request().Context(), key, window)
			if err != nil {
				// Fail open: losing Redis should degrade the throttle,
				// not the login.
				log.Warn().Err(err).Msg("rate limit store unavailable")
				return next(c)
			}
			remaining := limit - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			c.Response().Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			if count > limit {
				metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
			}
			return next(c)
		}
	}
}
