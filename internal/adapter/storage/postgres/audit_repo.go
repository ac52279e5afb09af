package postgres

import (
	"context"
	"fmt"

	"merchant-reserve-engine/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository over the append-only audit_log
// table.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create appends one audit entry.
func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	metadata, err := marshalDocument(entry.Metadata)
	if err != nil {
		return err
	}

	query := `INSERT INTO audit_log (id, action, entity_type, entity_id, actor, classification, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.pool.Exec(ctx, query,
		entry.ID, entry.Action, entry.EntityType, entry.EntityID,
		entry.Actor, entry.Classification, metadata, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
