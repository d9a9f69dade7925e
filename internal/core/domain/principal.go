package domain

import "time"

// Role names match the backend's role enumeration exactly.
const (
	RoleCashier    = "cashier"
	RoleSeller     = "seller"
	RoleEditor     = "editor"
	RoleManager    = "manager"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

var validRoles = map[string]struct{}{
	RoleCashier:    {},
	RoleSeller:     {},
	RoleEditor:     {},
	RoleManager:    {},
	RoleAdmin:      {},
	RoleSuperAdmin: {},
}

// ValidRole reports whether role is one of the fixed role enumeration.
func ValidRole(role string) bool {
	_, ok := validRoles[role]
	return ok
}

// Principal models the authenticated identity carried by a session.
// Permissions is never nil once a Principal exists; an empty map means
// the backend granted no named capabilities.
type Principal struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	RoleID      string          `json:"role_id,omitempty"`
	Permissions map[string]bool `json:"permissions"`
	Image       string          `json:"image,omitempty"`
	LastLoginAt time.Time       `json:"last_login_at,omitempty"`
}

// HasPermission reports whether the named capability is granted.
func (p *Principal) HasPermission(key string) bool {
	if p == nil {
		return false
	}
	return p.Permissions[key]
}
