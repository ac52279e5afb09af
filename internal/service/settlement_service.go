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
	"github.com/rs/zerolog"
)

const settlementLockName = "settlement"

// SettlementServiceImpl implements ports.SettlementService. Each run scans
// due holds and settles them one by one; a failed hold is recorded in its
// outcome and never aborts the batch.
type SettlementServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	settler    ports.HoldSettler
	runLock    ports.RunLock
	auditSvc   ports.AuditService
	cfg        config.SettlementConfig
	log        zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	ledgerRepo ports.LedgerRepository,
	settler ports.HoldSettler,
	runLock ports.RunLock,
	auditSvc ports.AuditService,
	cfg config.SettlementConfig,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		ledgerRepo: ledgerRepo,
		settler:    settler,
		runLock:    runLock,
		auditSvc:   auditSvc,
		cfg:        cfg,
		log:        log,
	}
}

// ProcessDueReleases releases every hold whose scheduled date has passed.
// Runs are mutually exclusive across instances via the run lock.
func (s *SettlementServiceImpl) ProcessDueReleases(ctx context.Context) (*ports.SettlementBatchResult, error) {
	acquired, err := s.runLock.Acquire(ctx, settlementLockName, s.cfg.LockTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("acquire run lock: %w", err))
	}
	if !acquired {
		return nil, apperror.ErrSettlementRunning()
	}
	defer func() {
		if err := s.runLock.Release(context.Background(), settlementLockName); err != nil {
			s.log.Warn().Err(err).Msg("failed to release settlement lock")
		}
	}()

	started := time.Now().UTC()

	due, err := s.ledgerRepo.FindDueHolds(ctx, started, s.cfg.BatchSize)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find due holds: %w", err))
	}

	result := &ports.SettlementBatchResult{
		StartedAt: started,
		Outcomes:  make([]ports.HoldOutcome, 0, len(due)),
	}

	for i := range due {
		hold := due[i]
		outcome := ports.HoldOutcome{
			HoldID:    hold.ID,
			ProfileID: hold.ProfileID,
			Amount:    hold.Amount,
		}

		if _, err := s.settler.SettleHold(ctx, &hold); err != nil {
			outcome.Status = ports.HoldOutcomeError
			outcome.Error = err.Error()
			result.Failed++
			s.log.Error().Err(err).
				Str("hold_id", hold.ID.String()).
				Str("profile_id", hold.ProfileID.String()).
				Msg("failed to settle hold")
		} else {
			outcome.Status = ports.HoldOutcomeReleased
			result.Released++
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.FinishedAt = time.Now().UTC()

	if len(due) > 0 {
		s.auditSvc.Log(ctx, &domain.AuditEntry{
			ID:             uuid.New(),
			Action:         domain.AuditActionSettlementBatch,
			EntityType:     "settlement_batch",
			EntityID:       started.Format(time.RFC3339),
			Actor:          "settlement-runner",
			Classification: "financial",
			Metadata: domain.Document{
				"due":      len(due),
				"released": result.Released,
				"failed":   result.Failed,
			},
			CreatedAt: result.FinishedAt,
		})
	}

	s.log.Info().
		Int("due", len(due)).
		Int("released", result.Released).
		Int("failed", result.Failed).
		Dur("took", result.FinishedAt.Sub(started)).
		Msg("settlement batch finished")

	return result, nil
}

// RunTicker drives ProcessDueReleases on the configured interval until the
// context is cancelled. Intended to run in its own goroutine.
func (s *SettlementServiceImpl) RunTicker(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.cfg.Interval).Msg("settlement ticker started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("settlement ticker stopped")
			return
		case <-ticker.C:
			if _, err := s.ProcessDueReleases(ctx); err != nil {
				s.log.Error().Err(err).Msg("scheduled settlement run failed")
			}
		}
	}
}
