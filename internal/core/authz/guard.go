// Package authz implements the permission guard: a pure, synchronous
// predicate over the current Principal. It performs no I/O and holds no
// state; callers (UI routes, middleware) decide what denial means.
package authz

import "github.com/openretail/pos-gateway/internal/core/domain"

// Requirement describes what a caller must satisfy. Zero value allows
// everyone: with no roles and no permissions listed the check passes.
type Requirement struct {
	// Permissions are capability keys evaluated against the principal's
	// permission set. With RequireAll false (the default) one granted key
	// suffices; with RequireAll true every key must be granted.
	Permissions []string

	// Roles, when non-empty, restricts the check to principals whose role
	// is in the list. The role gate is evaluated before permissions.
	Roles []string

	RequireAll bool
}

// Allowed evaluates the requirement against p. A nil principal is denied
// unless the requirement is empty.
func Allowed(p *domain.Principal, req Requirement) bool {
	if len(req.Roles) == 0 && len(req.Permissions) == 0 {
		return true
	}
	if p == nil {
		return false
	}

	if len(req.Roles) > 0 && !roleAllowed(p.Role, req.Roles) {
		return false
	}

	if len(req.Permissions) == 0 {
		return true
	}
	if req.RequireAll {
		for _, key := range req.Permissions {
			if !p.HasPermission(key) {
				return false
			}
		}
		return true
	}
	for _, key := range req.Permissions {
		if p.HasPermission(key) {
			return true
		}
	}
	return false
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
