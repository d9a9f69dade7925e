package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/core/authz"
	"github.com/openretail/pos-gateway/internal/core/domain"
)

// Require enforces a role/permission requirement on a route group. It
// assumes RequireAuth already ran, but a nil principal is still denied
// here rather than trusted.
func Require(req authz.Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var p *domain.Principal
			if s := SessionFrom(c); s != nil {
				p = &s.Principal
			}
			if !authz.Allowed(p, req) {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}

// RequireRole is shorthand for a role-only requirement.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return Require(authz.Requirement{Roles: roles})
}
