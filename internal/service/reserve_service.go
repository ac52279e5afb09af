package service

import (
	"context"
	"fmt"
	"time"

	"merchant-reserve-engine/config"
	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var decimalOne = decimal.NewFromInt(1)

// ReserveServiceImpl implements ports.ReserveService, ports.ReserveDebitor
// and ports.HoldSettler. Every mutation follows the same shape: begin tx,
// lock the profile row, validate against the locked state, append the ledger
// entry, write the aggregates back, commit.
type ReserveServiceImpl struct {
	profileRepo ports.ProfileRepository
	ledgerRepo  ports.LedgerRepository
	transactor  ports.DBTransactor
	auditSvc    ports.AuditService
	events      ports.EventPublisher
	cfg         config.ReserveConfig
	log         zerolog.Logger
}

// NewReserveService creates a new ReserveServiceImpl.
func NewReserveService(
	profileRepo ports.ProfileRepository,
	ledgerRepo ports.LedgerRepository,
	transactor ports.DBTransactor,
	auditSvc ports.AuditService,
	events ports.EventPublisher,
	cfg config.ReserveConfig,
	log zerolog.Logger,
) *ReserveServiceImpl {
	return &ReserveServiceImpl{
		profileRepo: profileRepo,
		ledgerRepo:  ledgerRepo,
		transactor:  transactor,
		auditSvc:    auditSvc,
		events:      events,
		cfg:         cfg,
		log:         log,
	}
}

// CreateHold withholds a percentage of a processed transaction and schedules
// its release.
func (s *ReserveServiceImpl) CreateHold(ctx context.Context, req ports.CreateHoldRequest) (*domain.ReserveTransaction, error) {
	if !req.SourceAmount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	pct := decimal.NewFromFloat(s.cfg.DefaultPercentage)
	if req.ReservePercentage != nil {
		pct = *req.ReservePercentage
	}
	if pct.IsNegative() || pct.GreaterThan(decimalOne) {
		return nil, apperror.ErrInvalidReservePercentage()
	}

	holdDays := req.HoldDays
	if holdDays == 0 {
		holdDays = s.cfg.DefaultHoldDays
	}
	if holdDays < 1 {
		return nil, apperror.ErrInvalidHoldPeriod()
	}

	holdAmount := req.SourceAmount.Mul(pct).Round(2)
	if !holdAmount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	profile, err := s.profileRepo.GetByIDForUpdate(ctx, dbTx, req.ProfileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock profile: %w", err))
	}
	if profile == nil {
		return nil, apperror.ErrNotFound("merchant profile")
	}

	now := time.Now().UTC()
	scheduledAt := now.AddDate(0, 0, holdDays)
	srcID := req.SourceTransactionID

	entry := &domain.ReserveTransaction{
		ID:                 uuid.New(),
		ProfileID:          profile.ID,
		EntryType:          domain.EntryTypeHold,
		Amount:             holdAmount,
		BalanceAfter:       profile.ReserveBalance.Add(holdAmount),
		ScheduledReleaseAt: &scheduledAt,
		Description:        fmt.Sprintf("Reserve hold %s%% of %s", pct.Mul(decimal.NewFromInt(100)).String(), req.SourceAmount.String()),
		CreatedBy:          req.Actor,
		CreatedAt:          now,
	}
	if srcID != "" {
		entry.SourceTransactionID = &srcID
	}

	profile.ReserveBalance = entry.BalanceAfter
	profile.ReserveHeldTotal = profile.ReserveHeldTotal.Add(holdAmount)

	if err := s.ledgerRepo.Insert(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("insert hold entry: %w", err))
	}
	if err := s.profileRepo.UpdateReserveAggregates(ctx, dbTx, profile); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update aggregates: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AuditEntry{
		ID:             uuid.New(),
		Action:         domain.AuditActionReserveHold,
		EntityType:     "reserve_transaction",
		EntityID:       entry.ID.String(),
		Actor:          req.Actor,
		Classification: "financial",
		Metadata: domain.Document{
			"profile_id":    profile.ID.String(),
			"amount":        holdAmount.String(),
			"balance_after": entry.BalanceAfter.String(),
		},
		CreatedAt: now,
	})
	s.publish(ctx, domain.EventReserveHoldCreated, "reserve_transaction", entry.ID.String(), domain.Document{
		"profile_id": profile.ID.String(),
		"amount":     holdAmount.String(),
	})

	s.log.Info().
		Str("entry_id", entry.ID.String()).
		Str("profile_id", profile.ID.String()).
		Str("amount", holdAmount.String()).
		Str("scheduled_release_at", scheduledAt.Format(time.RFC3339)).
		Msg("reserve hold created")

	return entry, nil
}

// Release returns withheld funds to the merchant ahead of or outside the
// scheduled settlement path.
func (s *ReserveServiceImpl) Release(ctx context.Context, req ports.ReleaseRequest) (*domain.ReserveTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	profile, err := s.profileRepo.GetByIDForUpdate(ctx, dbTx, req.ProfileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock profile: %w", err))
	}
	if profile == nil {
		return nil, apperror.ErrNotFound("merchant profile")
	}

	if req.Amount.GreaterThan(profile.ReserveBalance) {
		return nil, apperror.ErrInsufficientReserve()
	}

	now := time.Now().UTC()
	description := req.Description
	if description == "" {
		description = "Manual reserve release"
	}

	entry := &domain.ReserveTransaction{
		ID:           uuid.New(),
		ProfileID:    profile.ID,
		EntryType:    domain.EntryTypeRelease,
		Amount:       req.Amount.Neg(),
		BalanceAfter: profile.ReserveBalance.Sub(req.Amount),
		Description:  description,
		CreatedBy:    req.Actor,
		CreatedAt:    now,
	}

	profile.ReserveBalance = entry.BalanceAfter
	profile.ReserveReleasedTotal = profile.ReserveReleasedTotal.Add(req.Amount)

	if err := s.ledgerRepo.Insert(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("insert release entry: %w", err))
	}
	if err := s.profileRepo.UpdateReserveAggregates(ctx, dbTx, profile); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update aggregates: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AuditEntry{
		ID:             uuid.New(),
		Action:         domain.AuditActionReserveRelease,
		EntityType:     "reserve_transaction",
		EntityID:       entry.ID.String(),
		Actor:          req.Actor,
		Classification: "financial",
		Metadata: domain.Document{
			"profile_id":    profile.ID.String(),
			"amount":        req.Amount.String(),
			"balance_after": entry.BalanceAfter.String(),
		},
		CreatedAt: now,
	})
	s.publish(ctx, domain.EventReserveReleased, "reserve_transaction", entry.ID.String(), domain.Document{
		"profile_id": profile.ID.String(),
		"amount":     req.Amount.String(),
	})

	s.log.Info().
		Str("entry_id", entry.ID.String()).
		Str("profile_id", profile.ID.String()).
		Str("amount", req.Amount.String()).
		Msg("reserve released")

	return entry, nil
}

// Adjust applies a signed manual correction to the reserve balance.
func (s *ReserveServiceImpl) Adjust(ctx context.Context, req ports.AdjustRequest) (*domain.ReserveTransaction, error) {
	if req.Amount.IsZero() {
		return nil, apperror.ErrZeroAdjustment()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	profile, err := s.profileRepo.GetByIDForUpdate(ctx, dbTx, req.ProfileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock profile: %w", err))
	}
	if profile == nil {
		return nil, apperror.ErrNotFound("merchant profile")
	}

	newBalance := profile.ReserveBalance.Add(req.Amount)
	if newBalance.IsNegative() {
		return nil, apperror.ErrNegativeBalance()
	}

	now := time.Now().UTC()
	description := req.Description
	if description == "" {
		description = "Manual reserve adjustment"
	}

	entry := &domain.ReserveTransaction{
		ID:           uuid.New(),
		ProfileID:    profile.ID,
		EntryType:    domain.EntryTypeAdjustment,
		Amount:       req.Amount,
		BalanceAfter: newBalance,
		Description:  description,
		CreatedBy:    req.Actor,
		CreatedAt:    now,
	}

	profile.ReserveBalance = newBalance

	if err := s.ledgerRepo.Insert(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("insert adjustment entry: %w", err))
	}
	if err := s.profileRepo.UpdateReserveAggregates(ctx, dbTx, profile); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update aggregates: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AuditEntry{
		ID:             uuid.New(),
		Action:         domain.AuditActionReserveAdjustment,
		EntityType:     "reserve_transaction",
		EntityID:       entry.ID.String(),
		Actor:          req.Actor,
		Classification: "financial",
		Metadata: domain.Document{
			"profile_id":    profile.ID.String(),
			"amount":        req.Amount.String(),
			"balance_after": newBalance.String(),
		},
		CreatedAt: now,
	})
	s.publish(ctx, domain.EventReserveAdjusted, "reserve_transaction", entry.ID.String(), domain.Document{
		"profile_id": profile.ID.String(),
		"amount":     req.Amount.String(),
	})

	s.log.Info().
		Str("entry_id", entry.ID.String()).
		Str("profile_id", profile.ID.String()).
		Str("amount", req.Amount.String()).
		Msg("reserve adjusted")

	return entry, nil
}

// DebitForChargeback debits the reserve for a lost dispute in its own
// transaction. The ledger never goes negative: the debit is capped at the
// current balance and any shortfall is reported back as unfunded.
func (s *ReserveServiceImpl) DebitForChargeback(ctx context.Context, req ports.ChargebackDebitRequest) (*ports.ChargebackDebitResult, error) {
	if !req.RequestedAmount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	entry, remaining, err := s.DebitForChargebackTx(ctx, dbTx, req.ProfileID, req.ChargebackID, req.RequestedAmount, req.Actor)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	debited := req.RequestedAmount.Sub(remaining)
	if entry != nil {
		s.auditSvc.Log(ctx, &domain.AuditEntry{
			ID:             uuid.New(),
			Action:         domain.AuditActionChargebackDebit,
			EntityType:     "reserve_transaction",
			EntityID:       entry.ID.String(),
			Actor:          req.Actor,
			Classification: "financial",
			Metadata: domain.Document{
				"profile_id":         req.ProfileID.String(),
				"chargeback_id":      req.ChargebackID.String(),
				"debited_amount":     debited.String(),
				"remaining_unfunded": remaining.String(),
			},
			CreatedAt: time.Now().UTC(),
		})
	}
	s.publish(ctx, domain.EventReserveDebited, "chargeback", req.ChargebackID.String(), domain.Document{
		"profile_id":         req.ProfileID.String(),
		"debited_amount":     debited.String(),
		"remaining_unfunded": remaining.String(),
	})

	return &ports.ChargebackDebitResult{
		Entry:             entry,
		DebitedAmount:     debited,
		RemainingUnfunded: remaining,
	}, nil
}

// DebitForChargebackTx performs the partial-debit inside the caller's
// transaction so a dispute resolution and its debit commit together. Returns
// a nil entry when the balance was zero (nothing to debit).
func (s *ReserveServiceImpl) DebitForChargebackTx(ctx context.Context, tx pgx.Tx, profileID, chargebackID uuid.UUID, amount decimal.Decimal, actor string) (*domain.ReserveTransaction, decimal.Decimal, error) {
	if !amount.IsPositive() {
		return nil, decimal.Zero, apperror.ErrInvalidAmount()
	}

	profile, err := s.profileRepo.GetByIDForUpdate(ctx, tx, profileID)
	if err != nil {
		return nil, decimal.Zero, apperror.InternalError(fmt.Errorf("lock profile: %w", err))
	}
	if profile == nil {
		return nil, decimal.Zero, apperror.ErrNotFound("merchant profile")
	}

	debit := amount
	if debit.GreaterThan(profile.ReserveBalance) {
		debit = profile.ReserveBalance
	}
	remaining := amount.Sub(debit)

	if !debit.IsPositive() {
		// Nothing to debit; the full amount is unfunded.
		return nil, amount, nil
	}

	now := time.Now().UTC()
	cbID := chargebackID
	entry := &domain.ReserveTransaction{
		ID:           uuid.New(),
		ProfileID:    profile.ID,
		EntryType:    domain.EntryTypeChargebackDebit,
		Amount:       debit.Neg(),
		BalanceAfter: profile.ReserveBalance.Sub(debit),
		ChargebackID: &cbID,
		Description:  fmt.Sprintf("Chargeback debit for dispute %s", chargebackID),
		CreatedBy:    actor,
		CreatedAt:    now,
	}

	profile.ReserveBalance = entry.BalanceAfter
	profile.ChargebackDebitedTotal = profile.ChargebackDebitedTotal.Add(debit)

	if err := s.ledgerRepo.Insert(ctx, tx, entry); err != nil {
		return nil, decimal.Zero, apperror.InternalError(fmt.Errorf("insert debit entry: %w", err))
	}
	if err := s.profileRepo.UpdateReserveAggregates(ctx, tx, profile); err != nil {
		return nil, decimal.Zero, apperror.InternalError(fmt.Errorf("update aggregates: %w", err))
	}

	// The audit row is the caller's to write after its transaction commits;
	// emitting it here would describe a debit the caller may yet roll back.

	s.log.Info().
		Str("entry_id", entry.ID.String()).
		Str("profile_id", profile.ID.String()).
		Str("chargeback_id", chargebackID.String()).
		Str("debited", debit.String()).
		Str("remaining_unfunded", remaining.String()).
		Msg("chargeback debit applied")

	return entry, remaining, nil
}

// SettleHold releases one due hold in a single transaction: stamp the hold,
// append the matching RELEASE entry, update the aggregates.
func (s *ReserveServiceImpl) SettleHold(ctx context.Context, hold *domain.ReserveTransaction) (*domain.ReserveTransaction, error) {
	if !hold.IsPendingHold() {
		return nil, apperror.ErrHoldAlreadyReleased()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	profile, err := s.profileRepo.GetByIDForUpdate(ctx, dbTx, hold.ProfileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock profile: %w", err))
	}
	if profile == nil {
		return nil, apperror.ErrNotFound("merchant profile")
	}

	if hold.Amount.GreaterThan(profile.ReserveBalance) {
		return nil, apperror.ErrInsufficientReserve()
	}

	now := time.Now().UTC()

	// Guarded update: fails when a concurrent runner already stamped it.
	if err := s.ledgerRepo.StampReleased(ctx, dbTx, hold.ID, now); err != nil {
		return nil, apperror.ErrHoldAlreadyReleased()
	}

	entry := &domain.ReserveTransaction{
		ID:           uuid.New(),
		ProfileID:    profile.ID,
		EntryType:    domain.EntryTypeRelease,
		Amount:       hold.Amount.Neg(),
		BalanceAfter: profile.ReserveBalance.Sub(hold.Amount),
		Description:  fmt.Sprintf("Scheduled release of hold %s", hold.ID),
		CreatedBy:    "settlement-runner",
		CreatedAt:    now,
	}

	profile.ReserveBalance = entry.BalanceAfter
	profile.ReserveReleasedTotal = profile.ReserveReleasedTotal.Add(hold.Amount)

	if err := s.ledgerRepo.Insert(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("insert release entry: %w", err))
	}
	if err := s.profileRepo.UpdateReserveAggregates(ctx, dbTx, profile); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update aggregates: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.EventReserveReleased, "reserve_transaction", entry.ID.String(), domain.Document{
		"profile_id": profile.ID.String(),
		"hold_id":    hold.ID.String(),
		"amount":     hold.Amount.String(),
	})

	s.log.Info().
		Str("hold_id", hold.ID.String()).
		Str("entry_id", entry.ID.String()).
		Str("profile_id", profile.ID.String()).
		Str("amount", hold.Amount.String()).
		Msg("hold settled")

	return entry, nil
}

// GetSummary assembles the point-in-time view of a merchant's reserve.
func (s *ReserveServiceImpl) GetSummary(ctx context.Context, profileID uuid.UUID) (*ports.ReserveSummary, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get profile: %w", err))
	}
	if profile == nil {
		return nil, apperror.ErrNotFound("merchant profile")
	}

	pending, err := s.ledgerRepo.FindPendingHolds(ctx, profileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find pending holds: %w", err))
	}

	recent, _, err := s.ledgerRepo.List(ctx, ports.LedgerListParams{
		ProfileID: profileID,
		Page:      1,
		PageSize:  s.cfg.SummaryEntries,
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list recent entries: %w", err))
	}

	pendingAmount := decimal.Zero
	for i := range pending {
		pendingAmount = pendingAmount.Add(pending[i].Amount)
	}

	return &ports.ReserveSummary{
		ProfileID:     profile.ID,
		Balance:       profile.ReserveBalance,
		HeldTotal:     profile.ReserveHeldTotal,
		ReleasedTotal: profile.ReserveReleasedTotal,
		DebitedTotal:  profile.ChargebackDebitedTotal,
		PendingHolds:  pending,
		RecentEntries: recent,
		PendingAmount: pendingAmount,
	}, nil
}

// GetHistory returns a filtered, paginated page of ledger entries.
func (s *ReserveServiceImpl) GetHistory(ctx context.Context, params ports.LedgerListParams) ([]domain.ReserveTransaction, int64, error) {
	entries, total, err := s.ledgerRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list ledger: %w", err))
	}
	return entries, total, nil
}

// publish emits an event post-commit, best-effort.
func (s *ReserveServiceImpl) publish(ctx context.Context, name, entityType, entityID string, payload domain.Document) {
	if s.events == nil {
		return
	}
	event := domain.Event{
		Name:       name,
		EntityType: entityType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event", name).Msg("failed to publish event")
	}
}
