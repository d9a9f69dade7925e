package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

const auditCollection = "console_audit"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{db: db}
}

// Insert persists one audit entry to the console_audit collection.
func (r *AuditRepository) Insert(ctx context.Context, e domain.AuditEntry) error {
	doc := bson.M{
		"actor_id":   e.ActorID,
		"actor_role": e.ActorRole,
		"action":     e.Action,
		"outcome":    e.Outcome,
		"at":         e.At.UTC(),
	}
	if e.ActorEmail != "" {
		doc["actor_email"] = e.ActorEmail
	}
	if e.Resource != "" {
		doc["resource"] = e.Resource
	}
	if e.ResourceID != "" {
		doc["resource_id"] = e.ResourceID
	}
	if e.RequestID != "" {
		doc["request_id"] = e.RequestID
	}

	_, err := r.db.Collection(auditCollection).InsertOne(ctx, doc)
	return err
}
