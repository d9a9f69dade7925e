package domain

import "time"

// Audit actions recorded by the gateway.
const (
	AuditLogin  = "login"
	AuditLogout = "logout"
	AuditCreate = "create"
	AuditUpdate = "update"
	AuditDelete = "delete"
)

// AuditEntry is one line of the console activity trail: who did what to
// which resource, and how it went.
type AuditEntry struct {
	ActorID    string    `bson:"actor_id" json:"actor_id"`
	ActorEmail string    `bson:"actor_email,omitempty" json:"actor_email,omitempty"`
	ActorRole  string    `bson:"actor_role,omitempty" json:"actor_role,omitempty"`
	Action     string    `bson:"action" json:"action"`
	Resource   string    `bson:"resource,omitempty" json:"resource,omitempty"`
	ResourceID string    `bson:"resource_id,omitempty" json:"resource_id,omitempty"`
	Outcome    string    `bson:"outcome" json:"outcome"`
	RequestID  string    `bson:"request_id,omitempty" json:"request_id,omitempty"`
	At         time.Time `bson:"at" json:"at"`
}
