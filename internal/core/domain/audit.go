package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionReserveHold       AuditAction = "RESERVE_HOLD"
	AuditActionReserveRelease    AuditAction = "RESERVE_RELEASE"
	AuditActionReserveAdjustment AuditAction = "RESERVE_ADJUSTMENT"
	AuditActionChargebackDebit   AuditAction = "CHARGEBACK_DEBIT"
	AuditActionSettlementBatch   AuditAction = "SETTLEMENT_BATCH"
	AuditActionChargebackCreate  AuditAction = "CHARGEBACK_CREATE"
	AuditActionChargebackUpdate  AuditAction = "CHARGEBACK_UPDATE"
	AuditActionRepresentment     AuditAction = "CHARGEBACK_REPRESENTMENT"
	AuditActionChargebackResolve AuditAction = "CHARGEBACK_RESOLVE"
	AuditActionProfileCreate     AuditAction = "PROFILE_CREATE"
	AuditActionRiskAssessment    AuditAction = "RISK_ASSESSMENT"
	AuditActionRiskApproval      AuditAction = "RISK_APPROVAL"
)

// AuditEntry records a single balance- or state-affecting event. The sink is
// append-only and best-effort: a failed write never unwinds the mutation it
// describes.
type AuditEntry struct {
	ID             uuid.UUID   `json:"id"`
	Action         AuditAction `json:"action"`
	EntityType     string      `json:"entity_type"`
	EntityID       string      `json:"entity_id"`
	Actor          string      `json:"actor"`
	Classification string      `json:"classification,omitempty"` // e.g. "financial", "risk"
	Metadata       Document    `json:"metadata,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}
