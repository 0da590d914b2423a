package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/eesaa/retail-suite/internal/domain/entity"
)

// appendAudit prepends one entry to the audit trail and persists it.
// Caller must hold s.mu.
func (s *Store) appendAudit(action, details, actor string) {
	if actor == "" {
		actor = "System"
	}
	entry := entity.AuditLog{
		ID:      uuid.NewString(),
		Action:  action,
		User:    actor,
		Date:    time.Now(),
		Details: details,
	}
	s.auditLogs = append([]entity.AuditLog{entry}, s.auditLogs...)
	s.persist(KeyAuditLogs, s.auditLogs)
}
