package ports

import (
	"context"

	"github.com/openretail/pos-gateway/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, e domain.AuditEntry) error
}

// AuditSink accepts audit entries from the request path. Implementations
// must not block: a slow store may drop entries, never stall a request.
type AuditSink interface {
	Record(e domain.AuditEntry)
}

// NopAuditSink discards everything; used when auditing is disabled.
type NopAuditSink struct{}

func (NopAuditSink) Record(domain.AuditEntry) {}
