package ports

import (
	"context"
	"time"

	"merchant-reserve-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- Reserve Ledger ---

// ReserveService owns the per-merchant reserve balance. Every mutating
// operation is one atomic store transaction: lock profile row, validate,
// insert ledger entry, update aggregates.
type ReserveService interface {
	CreateHold(ctx context.Context, req CreateHoldRequest) (*domain.ReserveTransaction, error)
	Release(ctx context.Context, req ReleaseRequest) (*domain.ReserveTransaction, error)
	Adjust(ctx context.Context, req AdjustRequest) (*domain.ReserveTransaction, error)
	DebitForChargeback(ctx context.Context, req ChargebackDebitRequest) (*ChargebackDebitResult, error)
	GetSummary(ctx context.Context, profileID uuid.UUID) (*ReserveSummary, error)
	GetHistory(ctx context.Context, params LedgerListParams) ([]domain.ReserveTransaction, int64, error)
}

// ReserveDebitor is the narrow surface the chargeback coordinator composes
// into its own transaction, so a lost dispute's debit and status flip commit
// together. Returns the debit entry (nil when the balance was zero) and the
// unfunded remainder.
type ReserveDebitor interface {
	DebitForChargebackTx(ctx context.Context, tx pgx.Tx, profileID, chargebackID uuid.UUID, amount decimal.Decimal, actor string) (*domain.ReserveTransaction, decimal.Decimal, error)
}

// HoldSettler releases one due hold and stamps it, in a single transaction.
type HoldSettler interface {
	SettleHold(ctx context.Context, hold *domain.ReserveTransaction) (*domain.ReserveTransaction, error)
}

// CreateHoldRequest withholds a percentage of a processed transaction.
type CreateHoldRequest struct {
	ProfileID           uuid.UUID
	SourceTransactionID string
	SourceAmount        decimal.Decimal // minor units, > 0
	ReservePercentage   *decimal.Decimal // 0..1 inclusive; nil means the configured default
	HoldDays            int             // > 0
	Actor               string
}

// ReleaseRequest returns withheld funds to the merchant.
type ReleaseRequest struct {
	ProfileID   uuid.UUID
	Amount      decimal.Decimal // > 0, <= current balance
	Description string
	Actor       string
}

// AdjustRequest applies a signed manual correction. Amount may not be zero
// and may not drive the balance negative.
type AdjustRequest struct {
	ProfileID   uuid.UUID
	Amount      decimal.Decimal
	Description string
	Actor       string
}

// ChargebackDebitRequest debits the reserve for a lost dispute.
type ChargebackDebitRequest struct {
	ProfileID       uuid.UUID
	ChargebackID    uuid.UUID
	RequestedAmount decimal.Decimal // > 0
	Actor           string
}

// ChargebackDebitResult reports the partial-debit outcome: the ledger never
// goes negative, and any shortfall is handed back for out-of-band collection.
type ChargebackDebitResult struct {
	Entry             *domain.ReserveTransaction `json:"entry,omitempty"` // nil when balance was zero
	DebitedAmount     decimal.Decimal            `json:"debited_amount"`
	RemainingUnfunded decimal.Decimal            `json:"remaining_unfunded"`
}

// ReserveSummary is the point-in-time view of a merchant's reserve.
type ReserveSummary struct {
	ProfileID      uuid.UUID                   `json:"profile_id"`
	Balance        decimal.Decimal             `json:"balance"`
	HeldTotal      decimal.Decimal             `json:"held_total"`
	ReleasedTotal  decimal.Decimal             `json:"released_total"`
	DebitedTotal   decimal.Decimal             `json:"debited_total"`
	PendingHolds   []domain.ReserveTransaction `json:"pending_holds"`
	RecentEntries  []domain.ReserveTransaction `json:"recent_entries"`
	PendingAmount  decimal.Decimal             `json:"pending_amount"`
}

// --- Scheduled Settlement ---

// SettlementService scans due holds and releases them in batch, isolating
// per-item failure.
type SettlementService interface {
	ProcessDueReleases(ctx context.Context) (*SettlementBatchResult, error)
}

// Hold outcome statuses.
const (
	HoldOutcomeReleased = "released"
	HoldOutcomeError    = "error"
)

// HoldOutcome records the fate of one due hold within a batch.
type HoldOutcome struct {
	HoldID    uuid.UUID       `json:"hold_id"`
	ProfileID uuid.UUID       `json:"profile_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"` // released | error
	Error     string          `json:"error,omitempty"`
}

// SettlementBatchResult is the full per-hold outcome list for one run.
type SettlementBatchResult struct {
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Outcomes   []HoldOutcome `json:"outcomes"`
	Released   int           `json:"released"`
	Failed     int           `json:"failed"`
}

// --- Risk Assessment ---

// RiskService computes and applies merchant risk posture.
type RiskService interface {
	// CreateProfile onboards a merchant and runs the initial assessment.
	CreateProfile(ctx context.Context, req CreateProfileRequest) (*domain.MerchantRiskProfile, error)
	PerformAssessment(ctx context.Context, req AssessmentRequest) (*domain.RiskAssessment, error)
	// ApproveAssessment stamps the sign-off and applies the recommended
	// level, score and review date to the profile, atomically.
	ApproveAssessment(ctx context.Context, assessmentID uuid.UUID, actor string) (*domain.RiskAssessment, error)
	GetProfile(ctx context.Context, profileID uuid.UUID) (*domain.MerchantRiskProfile, error)
	ListProfilesDueForReview(ctx context.Context, limit int) ([]domain.MerchantRiskProfile, error)
}

// CreateProfileRequest onboards one merchant.
type CreateProfileRequest struct {
	MerchantName      string
	MCC               string
	BusinessStartDate *time.Time
	Actor             string
}

// AssessmentRequest triggers one scoring run.
type AssessmentRequest struct {
	ProfileID      uuid.UUID
	AssessmentType domain.AssessmentType
	Actor          string
	AIAssisted     bool
}

// --- Chargeback Resolution ---

// ChargebackService manages the dispute lifecycle and composes reserve
// debits on lost disputes.
type ChargebackService interface {
	Create(ctx context.Context, req CreateChargebackRequest) (*domain.ChargebackRecord, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, req UpdateChargebackRequest) (*domain.ChargebackRecord, error)
	SubmitRepresentment(ctx context.Context, id uuid.UUID, evidence domain.Document, notes, actor string) (*domain.ChargebackRecord, error)
	Resolve(ctx context.Context, id uuid.UUID, req ResolveChargebackRequest) (*domain.ChargebackRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ChargebackRecord, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.ChargebackRecord, error)
	List(ctx context.Context, params ChargebackListParams) ([]domain.ChargebackRecord, int64, error)
	GetStats(ctx context.Context, profileID uuid.UUID) (*ChargebackStatsResult, error)
	GetApproachingDeadline(ctx context.Context, daysAhead int) ([]domain.ChargebackRecord, error)
}

// CreateChargebackRequest ingests a new dispute from the processor.
type CreateChargebackRequest struct {
	ExternalID        string
	ProfileID         uuid.UUID
	Amount            decimal.Decimal
	Fee               decimal.Decimal
	ReasonCode        string
	ReasonDescription string
	RespondBy         *time.Time
	Actor             string
}

// UpdateChargebackRequest carries mutable non-lifecycle fields.
type UpdateChargebackRequest struct {
	ReasonDescription *string
	RespondBy         *time.Time
	ResolutionNotes   *string
	Actor             string
}

// ResolveChargebackRequest closes a dispute. For a LOST or ACCEPTED outcome
// with ImpactReserve set and a positive ReserveDebitAmount, the reserve debit
// and the status transition commit in one transaction; a zero debit amount
// resolves the dispute without touching the ledger.
type ResolveChargebackRequest struct {
	Outcome            domain.ChargebackStatus // WON | LOST | ACCEPTED
	ImpactReserve      bool
	ReserveDebitAmount decimal.Decimal
	RecoveredAmount    decimal.Decimal
	FeeRefunded        bool
	Notes              string
	Actor              string
}

// ChargebackStatsResult adds the live chargeback ratio to the aggregates.
type ChargebackStatsResult struct {
	ChargebackStats
	ChargebackRatio float64 `json:"chargeback_ratio"`
}

// --- Collaborators ---

// AuditService is the fire-and-forget audit sink.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditEntry)
}

// EventPublisher emits outbound events after committed mutations.
// Implementations must treat failure as non-fatal to the mutation.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// RunLock serializes batch runs across instances.
type RunLock interface {
	// Acquire returns true when the named lock was obtained.
	Acquire(ctx context.Context, name string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, name string) error
}
