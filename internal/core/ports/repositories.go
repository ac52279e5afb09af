package ports

import (
	"context"
	"errors"
	"time"

	"merchant-reserve-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProfileRepository defines persistence operations for merchant risk
// profiles. Methods accepting pgx.Tx run inside transaction blocks so the
// profile row can be read under a FOR UPDATE lock and written back
// atomically with its ledger entry.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.MerchantRiskProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantRiskProfile, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.MerchantRiskProfile, error)
	// UpdateReserveAggregates writes the reserve balance and cumulative
	// totals back to the locked row.
	UpdateReserveAggregates(ctx context.Context, tx pgx.Tx, p *domain.MerchantRiskProfile) error
	// ApplyChargeback bumps the profile's chargeback count and amount.
	ApplyChargeback(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount decimal.Decimal) error
	// UpdateRiskPosture applies an approved (or auto-applied) risk level,
	// score and next review date.
	UpdateRiskPosture(ctx context.Context, tx pgx.Tx, id uuid.UUID, level domain.RiskLevel, score int, nextReview time.Time) error
	UpdateNextReview(ctx context.Context, id uuid.UUID, nextReview time.Time) error
	ListDueForReview(ctx context.Context, asOf time.Time, limit int) ([]domain.MerchantRiskProfile, error)
}

// LedgerRepository defines persistence for the append-only reserve ledger.
// Inserts always run inside the same transaction that updates the profile
// aggregate; the only permitted update is stamping a HOLD's release time.
type LedgerRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, entry *domain.ReserveTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReserveTransaction, error)
	List(ctx context.Context, params LedgerListParams) ([]domain.ReserveTransaction, int64, error)
	// FindDueHolds returns HOLD entries scheduled at or before asOf with no
	// release stamp, oldest first.
	FindDueHolds(ctx context.Context, asOf time.Time, limit int) ([]domain.ReserveTransaction, error)
	// FindPendingHolds returns unreleased holds for one profile.
	FindPendingHolds(ctx context.Context, profileID uuid.UUID) ([]domain.ReserveTransaction, error)
	// StampReleased sets released_at on a HOLD. It must fail (no rows) when
	// the hold was already released, so concurrent runners cannot double-release.
	StampReleased(ctx context.Context, tx pgx.Tx, holdID uuid.UUID, releasedAt time.Time) error
}

// LedgerListParams holds filter + pagination for ledger history reads.
type LedgerListParams struct {
	ProfileID uuid.UUID
	EntryType *domain.EntryType
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
}

// ErrDuplicateExternalID reports a unique-key collision on a chargeback's
// external_id. Concurrent creates rely on the database constraint, so the
// repository surfaces the violation as this sentinel.
var ErrDuplicateExternalID = errors.New("external_id already exists")

// ChargebackRepository defines persistence for chargeback records.
type ChargebackRepository interface {
	Create(ctx context.Context, tx pgx.Tx, cb *domain.ChargebackRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ChargebackRecord, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.ChargebackRecord, error)
	// UpdateMetadata writes mutable non-lifecycle fields.
	UpdateMetadata(ctx context.Context, cb *domain.ChargebackRecord) error
	// UpdateRepresentment transitions to REPRESENTMENT guarded by the
	// expected current status; fails with no rows on a lost race.
	UpdateRepresentment(ctx context.Context, cb *domain.ChargebackRecord, expected domain.ChargebackStatus) error
	// MarkResolved writes the terminal status and resolution fields within
	// the caller's transaction, guarded by the expected current status.
	MarkResolved(ctx context.Context, tx pgx.Tx, cb *domain.ChargebackRecord, expected domain.ChargebackStatus) error
	List(ctx context.Context, params ChargebackListParams) ([]domain.ChargebackRecord, int64, error)
	Stats(ctx context.Context, profileID uuid.UUID) (*ChargebackStats, error)
	// ListApproachingDeadline returns open disputes with respond_by inside
	// [now, until], ordered by deadline ascending.
	ListApproachingDeadline(ctx context.Context, now, until time.Time) ([]domain.ChargebackRecord, error)
}

// ChargebackListParams holds filter + pagination for chargeback listings.
type ChargebackListParams struct {
	ProfileID  *uuid.UUID
	Status     *domain.ChargebackStatus
	ReasonCode *string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

// ChargebackStats aggregates dispute outcomes for one merchant.
type ChargebackStats struct {
	Total           int64           `json:"total"`
	Open            int64           `json:"open"`
	Won             int64           `json:"won"`
	Lost            int64           `json:"lost"`
	Accepted        int64           `json:"accepted"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalFees       decimal.Decimal `json:"total_fees"`
	RecoveredAmount decimal.Decimal `json:"recovered_amount"`
}

// AssessmentRepository defines persistence for risk assessment records.
type AssessmentRepository interface {
	Create(ctx context.Context, a *domain.RiskAssessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RiskAssessment, error)
	// StampApproval records the sign-off within the caller's transaction so
	// it commits together with the profile's risk posture update.
	StampApproval(ctx context.Context, tx pgx.Tx, id uuid.UUID, approvedAt time.Time, approvedBy string) error
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]domain.RiskAssessment, error)
}

// AuditRepository persists append-only audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
