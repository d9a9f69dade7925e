package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/openretail/pos-gateway/internal/api/metrics"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
	"github.com/openretail/pos-gateway/internal/session"
)

const (
	keySession      = "session"
	keySessionError = "session_error"
)

// Session decodes the session cookie (or bearer header) and injects the
// result into the echo context. Anonymous and expired requests pass
// through: downstream RequireAuth decides whether that matters. Expiry
// travels as a typed flag, never as a panic or a dropped request.
func Session(codec *session.Codec, denylist ports.TokenDenylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := codec.DecodeRequest(c.Request())
			switch {
			case err == nil:
				if denylist != nil {
					revoked, derr := denylist.IsRevoked(c.Request().Context(), sess.Token)
					if derr != nil {
						// Denylist is advisory: a dead Redis must not take
						// the console down with it.
						log.Warn().Err(derr).Msg("denylist check failed")
					} else if revoked {
						return next(c)
					}
				}
				c.Set(keySession, sess)
			case errors.Is(err, session.ErrNoSession):
				// Anonymous.
			case errors.Is(err, domain.ErrSessionExpired):
				metrics.SessionsExpiredTotal.Inc()
				c.Set(keySessionError, domain.ErrSessionExpired)
			default:
				// Garbage or tampered cookie: treat as anonymous.
				log.Debug().Err(err).Msg("session decode failed")
			}
			return next(c)
		}
	}
}

// SessionFrom returns the decoded session, or nil for anonymous and
// expired requests.
func SessionFrom(c echo.Context) *domain.Session {
	s, _ := c.Get(keySession).(*domain.Session)
	return s
}

// TokenFrom returns the backend bearer token of the current session, or
// the empty string when there is none.
func TokenFrom(c echo.Context) string {
	if s := SessionFrom(c); s != nil {
		return s.Token
	}
	return ""
}

// RequireAuth rejects requests without a live session. An expired
// session answers with its own message so the UI can redirect to the
// sign-in boundary rather than suggest a password problem.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionFrom(c) != nil {
				return next(c)
			}
			if err, ok := c.Get(keySessionError).(error); ok && errors.Is(err, domain.ErrSessionExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrSessionExpired.Error())
			}
			return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrAuthRequired.Error())
		}
	}
}
