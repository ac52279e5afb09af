package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ChargebackServiceImpl implements ports.ChargebackService.
type ChargebackServiceImpl struct {
	cbRepo      ports.ChargebackRepository
	profileRepo ports.ProfileRepository
	debitor     ports.ReserveDebitor
	transactor  ports.DBTransactor
	auditSvc    ports.AuditService
	events      ports.EventPublisher
	log         zerolog.Logger
}

// NewChargebackService creates a new ChargebackServiceImpl.
func NewChargebackService(
	cbRepo ports.ChargebackRepository,
	profileRepo ports.ProfileRepository,
	debitor ports.ReserveDebitor,
	transactor ports.DBTransactor,
	auditSvc ports.AuditService,
	events ports.EventPublisher,
	log zerolog.Logger,
) *ChargebackServiceImpl {
	return &ChargebackServiceImpl{
		cbRepo:      cbRepo,
		profileRepo: profileRepo,
		debitor:     debitor,
		transactor:  transactor,
		auditSvc:    auditSvc,
		events:      events,
		log:         log,
	}
}

// Create ingests a new dispute from the processor. The record and the
// profile's chargeback counters commit together.
func (s *ChargebackServiceImpl) Create(ctx context.Context, req ports.CreateChargebackRequest) (*domain.ChargebackRecord, error) {
	if req.ExternalID == "" {
		return nil, apperror.Validation("external_id is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Fee.IsNegative() {
		return nil, apperror.ErrInvalidAmount()
	}

	existing, err := s.cbRepo.GetByExternalID(ctx, req.ExternalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check duplicate: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateChargeback(req.ExternalID)
	}

	profile, err := s.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get profile: %w", err))
	}
	if profile == nil {
		return nil, apperror.ErrNotFound("merchant profile")
	}

	now := time.Now().UTC()
	cb := &domain.ChargebackRecord{
		ID:                uuid.New(),
		ExternalID:        req.ExternalID,
		ProfileID:         req.ProfileID,
		Amount:            req.Amount,
		Fee:               req.Fee,
		ReasonCode:        req.ReasonCode,
		ReasonDescription: req.ReasonDescription,
		Status:            domain.ChargebackStatusReceived,
		RespondBy:         req.RespondBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.cbRepo.Create(ctx, dbTx, cb); err != nil {
		// A concurrent create can slip past the read check; the unique
		// constraint is the authority either way.
		if errors.Is(err, ports.ErrDuplicateExternalID) {
			return nil, apperror.ErrDuplicateChargeback(req.ExternalID)
		}
		return nil, apperror.InternalError(fmt.Errorf("create chargeback: %w", err))
	}
	if err := s.profileRepo.ApplyChargeback(ctx, dbTx, req.ProfileID, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("apply chargeback to profile: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AuditEntry{
		ID:             uuid.New(),
		Action:         domain.AuditActionChargebackCreate,
		EntityType:     "chargeback",
		EntityID:       cb.ID.String(),
		Actor:          req.Actor,
		Classification: "financial",
		Metadata: domain.Document{
			"external_id": cb.ExternalID,
			"profile_id":  cb.ProfileID.String(),
			"amount":      cb.Amount.String(),
			"reason_code": cb.ReasonCode,
		},
		CreatedAt: now,
	})
	s.publish(ctx, domain.EventChargebackCreated, "chargeback", cb.ID.String(), domain.Document{
		"external_id": cb.ExternalID,
		"profile_id":  cb.ProfileID.String(),
		"amount":      cb.Amount.String(),
	})

	s.log.Info().
		Str("chargeback_id", cb.ID.String()).
		Str("external_id", cb.ExternalID).
		Str("profile_id", cb.ProfileID.String()).
		Str("amount", cb.Amount.String()).
		Msg("chargeback created")

	return cb, nil
}

// UpdateMetadata writes mutable non-lifecycle fields on an open dispute.
func (s *ChargebackServiceImpl) UpdateMetadata(ctx context.Context, id uuid.UUID, req ports.UpdateChargebackRequest) (*domain.ChargebackRecord, error) {
	cb, err := s.getOpen(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ReasonDescription != nil {
		cb.ReasonDescription = *req.ReasonDescription
	}
	if req.RespondBy != nil {
		cb.RespondBy = req.RespondBy
	}
	if req.ResolutionNotes != nil {
		cb.ResolutionNotes = *req.ResolutionNotes
	}
	cb.UpdatedAt = time.Now().UTC()

	if err := s.cbRepo.UpdateMetadata(ctx, cb); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update chargeback: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AuditEntry{
		ID:         uuid.New(),
		Action:     domain.AuditActionChargebackUpdate,
		EntityType: "chargeback",
		EntityID:   cb.ID.String(),
		Actor:      req.Actor,
		CreatedAt:  cb.UpdatedAt,
	})

	return cb, nil
}

// SubmitRepresentment records dispute evidence and moves the record to
// REPRESENTMENT.
func (s *ChargebackServiceImpl) SubmitRepresentment(ctx context.Context, id uuid.UUID, evidence domain.Document, notes, actor string) (*domain.ChargebackRecord, error) {
	cb, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cb.CanRepresent() {
		return nil, apperror.ErrIllegalTransition(string(cb.Status), string(domain.ChargebackStatusRepresentment))
	}

	now := time.Now().UTC()
	expected := cb.Status
	cb.Status = domain.ChargebackStatusRepresentment
	cb.RepresentmentEvidence = evidence
	cb.RepresentmentNotes = notes
	cb.RepresentedAt = &now
	cb.UpdatedAt = now

	// Guarded write: fails when the status moved under us.
	if err := s.cbRepo.UpdateRepresentment(ctx, cb, expected); err != nil {
		return nil, apperror.ErrIllegalTransition(string(expected), string(domain.ChargebackStatusRepresentment))
	}

	s.auditSvc.Log(ctx, &domain.AuditEntry{
		ID:         uuid.New(),
		Action:     domain.AuditActionRepresentment,
		EntityType: "chargeback",
		EntityID:   cb.ID.String(),
		Actor:      actor,
		CreatedAt:  now,
	})

	s.log.Info().
		Str("chargeback_id", cb.ID.String()).
		Str("from", string(expected)).
		Msg("representment submitted")

	return cb, nil
}

// Resolve closes a dispute. A reserve-impacting LOST outcome commits the
// reserve debit and the status transition in one transaction: if either
// write fails, neither persists.
func (s *ChargebackServiceImpl) Resolve(ctx context.Context, id uuid.UUID, req ports.ResolveChargebackRequest) (*domain.ChargebackRecord, error) {
	if !req.Outcome.IsTerminal() {
		return nil, apperror.ErrInvalidOutcome()
	}
	if req.ReserveDebitAmount.IsNegative() {
		return nil, apperror.ErrInvalidAmount()
	}

	cb, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cb.Status.IsTerminal() {
		return nil, apperror.ErrChargebackResolved()
	}
	if !cb.Status.CanTransitionTo(req.Outcome) {
		return nil, apperror.ErrIllegalTransition(string(cb.Status), string(req.Outcome))
	}

	now := time.Now().UTC()
	expected := cb.Status
	cb.Status = req.Outcome
	cb.ResolvedAt = &now
	cb.ResolutionNotes = req.Notes
	cb.UpdatedAt = now

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	var debitEntry *domain.ReserveTransaction

	switch req.Outcome {
	case domain.ChargebackStatusLost, domain.ChargebackStatusAccepted:
		// The reserve is touched only for an explicit positive debit amount;
		// zero means the status update alone commits.
		if req.ImpactReserve && req.ReserveDebitAmount.IsPositive() {
			debitAmount := req.ReserveDebitAmount
			entry, remaining, err := s.debitor.DebitForChargebackTx(ctx, dbTx, cb.ProfileID, cb.ID, debitAmount, req.Actor)
			if err != nil {
				return nil, err
			}
			debitEntry = entry
			cb.ReserveImpacted = true
			cb.ReserveDebitAmount = debitAmount.Sub(remaining)
			cb.RemainingUnfunded = remaining
		}
	case domain.ChargebackStatusWon:
		cb.RecoveredAmount = req.RecoveredAmount
		if cb.RecoveredAmount.IsZero() {
			cb.RecoveredAmount = cb.Amount
		}
		cb.FeeRefunded = req.FeeRefunded
	}

	// Guarded write: fails when the status moved under us.
	if err := s.cbRepo.MarkResolved(ctx, dbTx, cb, expected); err != nil {
		return nil, apperror.ErrIllegalTransition(string(expected), string(req.Outcome))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if debitEntry != nil {
		s.auditSvc.Log(ctx, &domain.AuditEntry{
			ID:             uuid.New(),
			Action:         domain.AuditActionChargebackDebit,
			EntityType:     "reserve_transaction",
			EntityID:       debitEntry.ID.String(),
			Actor:          req.Actor,
			Classification: "financial",
			Metadata: domain.Document{
				"profile_id":         cb.ProfileID.String(),
				"chargeback_id":      cb.ID.String(),
				"debited_amount":     cb.ReserveDebitAmount.String(),
				"remaining_unfunded": cb.RemainingUnfunded.String(),
			},
			CreatedAt: now,
		})
	}

	s.auditSvc.Log(ctx, &domain.AuditEntry{
		ID:             uuid.New(),
		Action:         domain.AuditActionChargebackResolve,
		EntityType:     "chargeback",
		EntityID:       cb.ID.String(),
		Actor:          req.Actor,
		Classification: "financial",
		Metadata: domain.Document{
			"profile_id":         cb.ProfileID.String(),
			"outcome":            string(req.Outcome),
			"reserve_impacted":   cb.ReserveImpacted,
			"debited_amount":     cb.ReserveDebitAmount.String(),
			"remaining_unfunded": cb.RemainingUnfunded.String(),
		},
		CreatedAt: now,
	})
	s.publish(ctx, domain.EventChargebackResolved, "chargeback", cb.ID.String(), domain.Document{
		"profile_id": cb.ProfileID.String(),
		"outcome":    string(req.Outcome),
	})

	s.log.Info().
		Str("chargeback_id", cb.ID.String()).
		Str("outcome", string(req.Outcome)).
		Bool("reserve_impacted", cb.ReserveImpacted).
		Msg("chargeback resolved")

	return cb, nil
}

// GetByID returns one chargeback record.
func (s *ChargebackServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChargebackRecord, error) {
	return s.get(ctx, id)
}

// GetByExternalID returns one chargeback record by processor dispute id.
func (s *ChargebackServiceImpl) GetByExternalID(ctx context.Context, externalID string) (*domain.ChargebackRecord, error) {
	cb, err := s.cbRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get chargeback: %w", err))
	}
	if cb == nil {
		return nil, apperror.ErrNotFound("chargeback")
	}
	return cb, nil
}

// List returns a filtered, paginated page of chargebacks.
func (s *ChargebackServiceImpl) List(ctx context.Context, params ports.ChargebackListParams) ([]domain.ChargebackRecord, int64, error) {
	records, total, err := s.cbRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list chargebacks: %w", err))
	}
	return records, total, nil
}

// GetStats aggregates dispute outcomes for a merchant and attaches the live
// chargeback ratio.
func (s *ChargebackServiceImpl) GetStats(ctx context.Context, profileID uuid.UUID) (*ports.ChargebackStatsResult, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get profile: %w", err))
	}
	if profile == nil {
		return nil, apperror.ErrNotFound("merchant profile")
	}

	stats, err := s.cbRepo.Stats(ctx, profileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("chargeback stats: %w", err))
	}

	return &ports.ChargebackStatsResult{
		ChargebackStats: *stats,
		ChargebackRatio: profile.ChargebackRatio(),
	}, nil
}

// GetApproachingDeadline returns open disputes whose respond-by date falls
// within the next daysAhead days.
func (s *ChargebackServiceImpl) GetApproachingDeadline(ctx context.Context, daysAhead int) ([]domain.ChargebackRecord, error) {
	if daysAhead <= 0 {
		daysAhead = 7
	}
	now := time.Now().UTC()
	records, err := s.cbRepo.ListApproachingDeadline(ctx, now, now.AddDate(0, 0, daysAhead))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list approaching deadline: %w", err))
	}
	return records, nil
}

func (s *ChargebackServiceImpl) get(ctx context.Context, id uuid.UUID) (*domain.ChargebackRecord, error) {
	cb, err := s.cbRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get chargeback: %w", err))
	}
	if cb == nil {
		return nil, apperror.ErrNotFound("chargeback")
	}
	return cb, nil
}

func (s *ChargebackServiceImpl) getOpen(ctx context.Context, id uuid.UUID) (*domain.ChargebackRecord, error) {
	cb, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cb.Status.IsTerminal() {
		return nil, apperror.ErrChargebackResolved()
	}
	return cb, nil
}

func (s *ChargebackServiceImpl) publish(ctx context.Context, name, entityType, entityID string, payload domain.Document) {
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
