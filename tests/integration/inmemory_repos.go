package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// In-memory repositories back the integration scenarios. They return copies
// on reads so an aborted service transaction never leaks half-applied
// mutations into the store, and the shared transactor serializes mutating
// blocks the way the row locks do in PostgreSQL.

// --- In-Memory Profile Repo ---

type inMemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*domain.MerchantRiskProfile
}

func newInMemoryProfileRepo() *inMemoryProfileRepo {
	return &inMemoryProfileRepo{profiles: make(map[uuid.UUID]*domain.MerchantRiskProfile)}
}

func (r *inMemoryProfileRepo) Create(ctx context.Context, p *domain.MerchantRiskProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *inMemoryProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantRiskProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryProfileRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.MerchantRiskProfile, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryProfileRepo) UpdateReserveAggregates(ctx context.Context, tx pgx.Tx, p *domain.MerchantRiskProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.profiles[p.ID]
	if !ok {
		return fmt.Errorf("profile not found")
	}
	stored.ReserveBalance = p.ReserveBalance
	stored.ReserveHeldTotal = p.ReserveHeldTotal
	stored.ReserveReleasedTotal = p.ReserveReleasedTotal
	stored.ChargebackDebitedTotal = p.ChargebackDebitedTotal
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryProfileRepo) ApplyChargeback(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.profiles[id]
	if !ok {
		return fmt.Errorf("profile not found")
	}
	stored.ChargebackCount++
	stored.ChargebackAmount = stored.ChargebackAmount.Add(amount)
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryProfileRepo) UpdateRiskPosture(ctx context.Context, tx pgx.Tx, id uuid.UUID, level domain.RiskLevel, score int, nextReview time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.profiles[id]
	if !ok {
		return fmt.Errorf("profile not found")
	}
	stored.RiskLevel = level
	stored.RiskScore = score
	stored.NextReviewDate = &nextReview
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryProfileRepo) UpdateNextReview(ctx context.Context, id uuid.UUID, nextReview time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.profiles[id]
	if !ok {
		return fmt.Errorf("profile not found")
	}
	stored.NextReviewDate = &nextReview
	return nil
}

func (r *inMemoryProfileRepo) ListDueForReview(ctx context.Context, asOf time.Time, limit int) ([]domain.MerchantRiskProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var due []domain.MerchantRiskProfile
	for _, p := range r.profiles {
		if p.NextReviewDate != nil && !p.NextReviewDate.After(asOf) {
			due = append(due, *p)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].NextReviewDate.Before(*due[j].NextReviewDate)
	})
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu      sync.RWMutex
	entries []*domain.ReserveTransaction
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{}
}

func (r *inMemoryLedgerRepo) Insert(ctx context.Context, tx pgx.Tx, entry *domain.ReserveTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *inMemoryLedgerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReserveTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryLedgerRepo) List(ctx context.Context, params ports.LedgerListParams) ([]domain.ReserveTransaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.ReserveTransaction
	for _, e := range r.entries {
		if e.ProfileID != params.ProfileID {
			continue
		}
		if params.EntryType != nil && e.EntryType != *params.EntryType {
			continue
		}
		if params.From != nil && e.CreatedAt.Before(*params.From) {
			continue
		}
		if params.To != nil && e.CreatedAt.After(*params.To) {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	total := int64(len(result))

	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.ReserveTransaction{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryLedgerRepo) FindDueHolds(ctx context.Context, asOf time.Time, limit int) ([]domain.ReserveTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var due []domain.ReserveTransaction
	for _, e := range r.entries {
		if e.IsDue(asOf) {
			due = append(due, *e)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].ScheduledReleaseAt.Before(*due[j].ScheduledReleaseAt)
	})
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r *inMemoryLedgerRepo) FindPendingHolds(ctx context.Context, profileID uuid.UUID) ([]domain.ReserveTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var pending []domain.ReserveTransaction
	for _, e := range r.entries {
		if e.ProfileID == profileID && e.IsPendingHold() {
			pending = append(pending, *e)
		}
	}
	return pending, nil
}

func (r *inMemoryLedgerRepo) StampReleased(ctx context.Context, tx pgx.Tx, holdID uuid.UUID, releasedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ID == holdID {
			if e.ReleasedAt != nil {
				return fmt.Errorf("hold already released")
			}
			at := releasedAt
			e.ReleasedAt = &at
			return nil
		}
	}
	return fmt.Errorf("hold not found")
}

// backdate rewinds a hold's scheduled release so the settlement runner picks
// it up without waiting out the hold period.
func (r *inMemoryLedgerRepo) backdate(holdID uuid.UUID, to time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ID == holdID {
			at := to
			e.ScheduledReleaseAt = &at
			return
		}
	}
}

// all returns every entry for a profile in creation order.
func (r *inMemoryLedgerRepo) all(profileID uuid.UUID) []domain.ReserveTransaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.ReserveTransaction
	for _, e := range r.entries {
		if e.ProfileID == profileID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// failingLedgerRepo wraps the ledger repo and fails inserts of one entry
// type, to prove a composed transaction aborts cleanly.
type failingLedgerRepo struct {
	*inMemoryLedgerRepo
	failType domain.EntryType
}

func (r *failingLedgerRepo) Insert(ctx context.Context, tx pgx.Tx, entry *domain.ReserveTransaction) error {
	if entry.EntryType == r.failType {
		return fmt.Errorf("injected insert failure for %s", r.failType)
	}
	return r.inMemoryLedgerRepo.Insert(ctx, tx, entry)
}

// --- In-Memory Chargeback Repo ---

type inMemoryChargebackRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.ChargebackRecord
}

func newInMemoryChargebackRepo() *inMemoryChargebackRepo {
	return &inMemoryChargebackRepo{records: make(map[uuid.UUID]*domain.ChargebackRecord)}
}

func (r *inMemoryChargebackRepo) Create(ctx context.Context, tx pgx.Tx, cb *domain.ChargebackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.ExternalID == cb.ExternalID {
			return ports.ErrDuplicateExternalID
		}
	}
	cp := *cb
	r.records[cb.ID] = &cp
	return nil
}

func (r *inMemoryChargebackRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChargebackRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cb, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *cb
	return &cp, nil
}

func (r *inMemoryChargebackRepo) GetByExternalID(ctx context.Context, externalID string) (*domain.ChargebackRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cb := range r.records {
		if cb.ExternalID == externalID {
			cp := *cb
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryChargebackRepo) UpdateMetadata(ctx context.Context, cb *domain.ChargebackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[cb.ID]
	if !ok {
		return fmt.Errorf("chargeback not found")
	}
	stored.ReasonDescription = cb.ReasonDescription
	stored.RespondBy = cb.RespondBy
	stored.ResolutionNotes = cb.ResolutionNotes
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryChargebackRepo) UpdateRepresentment(ctx context.Context, cb *domain.ChargebackRecord, expected domain.ChargebackStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[cb.ID]
	if !ok || stored.Status != expected {
		return fmt.Errorf("status changed concurrently")
	}
	cp := *cb
	r.records[cb.ID] = &cp
	return nil
}

func (r *inMemoryChargebackRepo) MarkResolved(ctx context.Context, tx pgx.Tx, cb *domain.ChargebackRecord, expected domain.ChargebackStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[cb.ID]
	if !ok || stored.Status != expected {
		return fmt.Errorf("status changed concurrently")
	}
	cp := *cb
	r.records[cb.ID] = &cp
	return nil
}

func (r *inMemoryChargebackRepo) List(ctx context.Context, params ports.ChargebackListParams) ([]domain.ChargebackRecord, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.ChargebackRecord
	for _, cb := range r.records {
		if params.ProfileID != nil && cb.ProfileID != *params.ProfileID {
			continue
		}
		if params.Status != nil && cb.Status != *params.Status {
			continue
		}
		if params.ReasonCode != nil && cb.ReasonCode != *params.ReasonCode {
			continue
		}
		result = append(result, *cb)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	total := int64(len(result))

	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.ChargebackRecord{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryChargebackRepo) Stats(ctx context.Context, profileID uuid.UUID) (*ports.ChargebackStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &ports.ChargebackStats{
		TotalAmount:     decimal.Zero,
		TotalFees:       decimal.Zero,
		RecoveredAmount: decimal.Zero,
	}
	for _, cb := range r.records {
		if cb.ProfileID != profileID {
			continue
		}
		stats.Total++
		stats.TotalAmount = stats.TotalAmount.Add(cb.Amount)
		stats.TotalFees = stats.TotalFees.Add(cb.Fee)
		stats.RecoveredAmount = stats.RecoveredAmount.Add(cb.RecoveredAmount)
		switch cb.Status {
		case domain.ChargebackStatusWon:
			stats.Won++
		case domain.ChargebackStatusLost:
			stats.Lost++
		case domain.ChargebackStatusAccepted:
			stats.Accepted++
		default:
			stats.Open++
		}
	}
	return stats, nil
}

func (r *inMemoryChargebackRepo) ListApproachingDeadline(ctx context.Context, now, until time.Time) ([]domain.ChargebackRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.ChargebackRecord
	for _, cb := range r.records {
		if !cb.IsOpen() || cb.RespondBy == nil {
			continue
		}
		if cb.RespondBy.Before(now) || cb.RespondBy.After(until) {
			continue
		}
		result = append(result, *cb)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RespondBy.Before(*result[j].RespondBy)
	})
	return result, nil
}

// --- In-Memory Assessment Repo ---

type inMemoryAssessmentRepo struct {
	mu          sync.RWMutex
	assessments map[uuid.UUID]*domain.RiskAssessment
}

func newInMemoryAssessmentRepo() *inMemoryAssessmentRepo {
	return &inMemoryAssessmentRepo{assessments: make(map[uuid.UUID]*domain.RiskAssessment)}
}

func (r *inMemoryAssessmentRepo) Create(ctx context.Context, a *domain.RiskAssessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.assessments[a.ID] = &cp
	return nil
}

func (r *inMemoryAssessmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RiskAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assessments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAssessmentRepo) StampApproval(ctx context.Context, tx pgx.Tx, id uuid.UUID, approvedAt time.Time, approvedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assessments[id]
	if !ok {
		return fmt.Errorf("assessment not found")
	}
	if a.ApprovedAt != nil {
		return fmt.Errorf("already approved")
	}
	at := approvedAt
	by := approvedBy
	a.ApprovedAt = &at
	a.ApprovedBy = &by
	return nil
}

func (r *inMemoryAssessmentRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]domain.RiskAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.RiskAssessment
	for _, a := range r.assessments {
		if a.ProfileID == profileID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.RWMutex
	entries []domain.AuditEntry
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor hands out transactions guarded by one mutex, standing in
// for the per-profile FOR UPDATE serialization the real store provides.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockedTx{release: &t.mu}, nil
}

// lockedTx releases the transactor mutex exactly once, on whichever of
// Commit or Rollback runs first.
type lockedTx struct {
	release *sync.Mutex
	once    sync.Once
}

func (t *lockedTx) unlock() {
	t.once.Do(func() { t.release.Unlock() })
}

func (t *lockedTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *lockedTx) Commit(ctx context.Context) error          { t.unlock(); return nil }
func (t *lockedTx) Rollback(ctx context.Context) error        { t.unlock(); return nil }
func (t *lockedTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *lockedTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *lockedTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *lockedTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *lockedTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *lockedTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *lockedTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *lockedTx) Conn() *pgx.Conn { return nil }
