package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"merchant-reserve-engine/config"
	redisStorage "merchant-reserve-engine/internal/adapter/storage/redis"
	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServices wires the service layer directly onto in-memory storage so
// scenarios can drive it without the HTTP layer.
type testServices struct {
	reserveSvc    ports.ReserveService
	settlementSvc ports.SettlementService
	chargebackSvc ports.ChargebackService
	profileRepo   *inMemoryProfileRepo
	ledgerRepo    *inMemoryLedgerRepo
	runLock       *redisStorage.RunLock
	redis         *miniredis.Miniredis
}

// newTestServices accepts an optional ledger repo override so scenarios can
// inject failures.
func newTestServices(t *testing.T, ledger ports.LedgerRepository) *testServices {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	profileRepo := newInMemoryProfileRepo()
	ledgerRepo := newInMemoryLedgerRepo()
	if ledger == nil {
		ledger = ledgerRepo
	}
	chargebackRepo := newInMemoryChargebackRepo()
	auditRepo := newInMemoryAuditRepo()
	transactor := newInMemoryTransactor()

	runLock := redisStorage.NewRunLock(rdb)
	events := redisStorage.NewEventPublisher(rdb)

	log := zerolog.Nop()
	auditSvc := service.NewAuditService(auditRepo, log)
	reserveSvc := service.NewReserveService(profileRepo, ledger, transactor, auditSvc, events,
		config.ReserveConfig{DefaultPercentage: 0.10, DefaultHoldDays: 90, SummaryEntries: 10}, log)
	settlementSvc := service.NewSettlementService(ledger, reserveSvc, runLock, auditSvc,
		config.SettlementConfig{Interval: time.Minute, BatchSize: 100, LockTTL: time.Minute}, log)
	chargebackSvc := service.NewChargebackService(chargebackRepo, profileRepo, reserveSvc, transactor, auditSvc, events, log)

	return &testServices{
		reserveSvc:    reserveSvc,
		settlementSvc: settlementSvc,
		chargebackSvc: chargebackSvc,
		profileRepo:   profileRepo,
		ledgerRepo:    ledgerRepo,
		runLock:       runLock,
		redis:         mr,
	}
}

func seedProfile(t *testing.T, repo *inMemoryProfileRepo) *domain.MerchantRiskProfile {
	t.Helper()
	now := time.Now().UTC()
	p := &domain.MerchantRiskProfile{
		ID:           uuid.New(),
		MerchantName: "Corner Grocery",
		MCC:          "5411",
		RiskLevel:    domain.RiskLevelStandard,
		RiskScore:    50,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestIntegration_ConcurrentHoldsSerialize(t *testing.T) {
	s := newTestServices(t, nil)
	profile := seedProfile(t, s.profileRepo)
	ctx := context.Background()

	const workers = 25
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.reserveSvc.CreateHold(ctx, ports.CreateHoldRequest{
				ProfileID:           profile.ID,
				SourceTransactionID: fmt.Sprintf("txn_%04d", n),
				SourceAmount:        decimal.NewFromInt(1000),
				Actor:               "processor",
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// 25 holds of 100 each (10% of 1000), no lost updates.
	stored, err := s.profileRepo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	want := decimal.NewFromInt(2500)
	assert.True(t, stored.ReserveBalance.Equal(want), "balance %s", stored.ReserveBalance)
	assert.True(t, stored.ReserveHeldTotal.Equal(want))

	entries := s.ledgerRepo.all(profile.ID)
	assert.Len(t, entries, workers)
	assert.True(t, domain.ReplayBalance(entries).Equal(stored.ReserveBalance))
}

func TestIntegration_ResolveAbortsWhenDebitFails(t *testing.T) {
	failing := &failingLedgerRepo{
		inMemoryLedgerRepo: newInMemoryLedgerRepo(),
		failType:           domain.EntryTypeChargebackDebit,
	}
	s := newTestServices(t, failing)
	profile := seedProfile(t, s.profileRepo)
	ctx := context.Background()

	// Fund the reserve; HOLD inserts are not affected by the injection.
	_, err := s.reserveSvc.CreateHold(ctx, ports.CreateHoldRequest{
		ProfileID:           profile.ID,
		SourceTransactionID: "txn_0001",
		SourceAmount:        decimal.NewFromInt(10000),
		Actor:               "processor",
	})
	require.NoError(t, err)

	cb, err := s.chargebackSvc.Create(ctx, ports.CreateChargebackRequest{
		ExternalID: "CB-2024-0100",
		ProfileID:  profile.ID,
		Amount:     decimal.NewFromInt(600),
		ReasonCode: "10.4",
		Actor:      "processor",
	})
	require.NoError(t, err)

	_, err = s.chargebackSvc.Resolve(ctx, cb.ID, ports.ResolveChargebackRequest{
		Outcome:            domain.ChargebackStatusLost,
		ImpactReserve:      true,
		ReserveDebitAmount: decimal.NewFromInt(600),
		Actor:              "analyst",
	})
	require.Error(t, err)

	// The dispute stays open and the reserve is untouched.
	after, err := s.chargebackSvc.GetByID(ctx, cb.ID)
	require.NoError(t, err)
	assert.True(t, after.IsOpen())
	assert.False(t, after.ReserveImpacted)

	stored, err := s.profileRepo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.True(t, stored.ReserveBalance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, stored.ChargebackDebitedTotal.IsZero())
}

func TestIntegration_SettlementSkipsWhenLockHeld(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()

	acquired, err := s.runLock.Acquire(ctx, "settlement", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	result, err := s.settlementSvc.ProcessDueReleases(ctx)
	assert.Nil(t, result)
	require.Error(t, err)

	// Releasing the lock lets the next run proceed.
	require.NoError(t, s.runLock.Release(ctx, "settlement"))
	result, err = s.settlementSvc.ProcessDueReleases(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Released)
}

func TestIntegration_PartialDebitLeavesZeroBalance(t *testing.T) {
	s := newTestServices(t, nil)
	profile := seedProfile(t, s.profileRepo)
	ctx := context.Background()

	// Reserve holds 400; the dispute wants 1000.
	_, err := s.reserveSvc.CreateHold(ctx, ports.CreateHoldRequest{
		ProfileID:           profile.ID,
		SourceTransactionID: "txn_0001",
		SourceAmount:        decimal.NewFromInt(4000),
		Actor:               "processor",
	})
	require.NoError(t, err)

	cb, err := s.chargebackSvc.Create(ctx, ports.CreateChargebackRequest{
		ExternalID: "CB-2024-0200",
		ProfileID:  profile.ID,
		Amount:     decimal.NewFromInt(1000),
		ReasonCode: "13.1",
		Actor:      "processor",
	})
	require.NoError(t, err)

	resolved, err := s.chargebackSvc.Resolve(ctx, cb.ID, ports.ResolveChargebackRequest{
		Outcome:            domain.ChargebackStatusLost,
		ImpactReserve:      true,
		ReserveDebitAmount: decimal.NewFromInt(1000),
		Actor:              "analyst",
	})
	require.NoError(t, err)

	assert.True(t, resolved.ReserveImpacted)
	assert.True(t, resolved.ReserveDebitAmount.Equal(decimal.NewFromInt(400)))
	assert.True(t, resolved.RemainingUnfunded.Equal(decimal.NewFromInt(600)))

	stored, err := s.profileRepo.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.True(t, stored.ReserveBalance.IsZero())
	assert.True(t, domain.ReplayBalance(s.ledgerRepo.all(profile.ID)).IsZero())
}
