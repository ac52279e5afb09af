package service

import (
	"context"
	"testing"
	"time"

	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chargebackTestDeps struct {
	svc         *ChargebackServiceImpl
	cbRepo      *mocks.MockChargebackRepository
	profileRepo *mocks.MockProfileRepository
	debitor     *mocks.MockReserveDebitor
	transactor  *mocks.MockDBTransactor
	auditSvc    *mocks.MockAuditService
	events      *mocks.MockEventPublisher
	ctrl        *gomock.Controller
}

func setupChargebackService(t *testing.T) *chargebackTestDeps {
	ctrl := gomock.NewController(t)
	d := &chargebackTestDeps{
		cbRepo:      mocks.NewMockChargebackRepository(ctrl),
		profileRepo: mocks.NewMockProfileRepository(ctrl),
		debitor:     mocks.NewMockReserveDebitor(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		auditSvc:    mocks.NewMockAuditService(ctrl),
		events:      mocks.NewMockEventPublisher(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewChargebackService(
		d.cbRepo, d.profileRepo, d.debitor, d.transactor, d.auditSvc, d.events,
		zerolog.Nop(),
	)
	return d
}

func openChargeback(status domain.ChargebackStatus) *domain.ChargebackRecord {
	return &domain.ChargebackRecord{
		ID:         uuid.New(),
		ExternalID: "CB-2024-0001",
		ProfileID:  uuid.New(),
		Amount:     decimal.NewFromInt(5000),
		Fee:        decimal.NewFromInt(150),
		ReasonCode: "10.4",
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}
}

// ==================== Create Tests ====================

func TestChargebackService_Create_Success(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	profile := testProfile(decimal.Zero)

	req := ports.CreateChargebackRequest{
		ExternalID: "CB-2024-0001",
		ProfileID:  profile.ID,
		Amount:     decimal.NewFromInt(5000),
		Fee:        decimal.NewFromInt(150),
		ReasonCode: "10.4",
		Actor:      "processor-webhook",
	}

	d.cbRepo.EXPECT().GetByExternalID(ctx, "CB-2024-0001").Return(nil, nil)
	d.profileRepo.EXPECT().GetByID(ctx, profile.ID).Return(profile, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.cbRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.profileRepo.EXPECT().ApplyChargeback(ctx, tx, profile.ID, req.Amount).Return(nil)
	d.auditSvc.EXPECT().Log(gomock.Any(), gomock.Any())
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	cb, err := d.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.ChargebackStatusReceived, cb.Status)
	assert.Equal(t, "CB-2024-0001", cb.ExternalID)
	assert.True(t, cb.Amount.Equal(decimal.NewFromInt(5000)))
}

func TestChargebackService_Create_Duplicate(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	existing := openChargeback(domain.ChargebackStatusReceived)
	d.cbRepo.EXPECT().GetByExternalID(gomock.Any(), "CB-2024-0001").Return(existing, nil)

	cb, err := d.svc.Create(context.Background(), ports.CreateChargebackRequest{
		ExternalID: "CB-2024-0001",
		ProfileID:  uuid.New(),
		Amount:     decimal.NewFromInt(5000),
	})
	assert.Nil(t, cb)
	assertAppError(t, err, "CBK_001")
}

func TestChargebackService_Create_DuplicateRace(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	profile := testProfile(decimal.Zero)

	// The read check sees nothing, but a concurrent create wins the insert:
	// the unique violation still surfaces as a duplicate conflict.
	d.cbRepo.EXPECT().GetByExternalID(ctx, "CB-2024-0001").Return(nil, nil)
	d.profileRepo.EXPECT().GetByID(ctx, profile.ID).Return(profile, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.cbRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(ports.ErrDuplicateExternalID)

	cb, err := d.svc.Create(ctx, ports.CreateChargebackRequest{
		ExternalID: "CB-2024-0001",
		ProfileID:  profile.ID,
		Amount:     decimal.NewFromInt(5000),
		ReasonCode: "10.4",
	})
	assert.Nil(t, cb)
	assertAppError(t, err, "CBK_001")
}

func TestChargebackService_Create_MissingExternalID(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	cb, err := d.svc.Create(context.Background(), ports.CreateChargebackRequest{
		ProfileID: uuid.New(),
		Amount:    decimal.NewFromInt(5000),
	})
	assert.Nil(t, cb)
	assertAppError(t, err, "VAL_001")
}

func TestChargebackService_Create_InvalidAmount(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	cb, err := d.svc.Create(context.Background(), ports.CreateChargebackRequest{
		ExternalID: "CB-2024-0002",
		ProfileID:  uuid.New(),
		Amount:     decimal.NewFromInt(-5),
	})
	assert.Nil(t, cb)
	assertAppError(t, err, "VAL_002")
}

// ==================== SubmitRepresentment Tests ====================

func TestChargebackService_SubmitRepresentment_Success(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cb := openChargeback(domain.ChargebackStatusReceived)
	evidence := domain.Document{"receipt_url": "https://example.com/r/1"}

	d.cbRepo.EXPECT().GetByID(ctx, cb.ID).Return(cb, nil)
	d.cbRepo.EXPECT().UpdateRepresentment(ctx, cb, domain.ChargebackStatusReceived).Return(nil)
	d.auditSvc.EXPECT().Log(gomock.Any(), gomock.Any())

	updated, err := d.svc.SubmitRepresentment(ctx, cb.ID, evidence, "customer signed for delivery", "disputes@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.ChargebackStatusRepresentment, updated.Status)
	assert.Equal(t, evidence, updated.RepresentmentEvidence)
	require.NotNil(t, updated.RepresentedAt)
}

func TestChargebackService_SubmitRepresentment_IllegalFromTerminal(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	cb := openChargeback(domain.ChargebackStatusLost)
	d.cbRepo.EXPECT().GetByID(gomock.Any(), cb.ID).Return(cb, nil)

	updated, err := d.svc.SubmitRepresentment(context.Background(), cb.ID, nil, "", "disputes@example.com")
	assert.Nil(t, updated)
	assertAppError(t, err, "CBK_002")
}

func TestChargebackService_SubmitRepresentment_IllegalFromRepresentment(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	cb := openChargeback(domain.ChargebackStatusRepresentment)
	d.cbRepo.EXPECT().GetByID(gomock.Any(), cb.ID).Return(cb, nil)

	updated, err := d.svc.SubmitRepresentment(context.Background(), cb.ID, nil, "", "disputes@example.com")
	assert.Nil(t, updated)
	assertAppError(t, err, "CBK_002")
}

// ==================== Resolve Tests ====================

func TestChargebackService_Resolve_LostWithReserveDebit(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	cb := openChargeback(domain.ChargebackStatusRepresentment)

	d.cbRepo.EXPECT().GetByID(ctx, cb.ID).Return(cb, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	// Partial funding leaves a remainder.
	d.debitor.EXPECT().
		DebitForChargebackTx(ctx, tx, cb.ProfileID, cb.ID, cb.Amount, "disputes@example.com").
		Return(&domain.ReserveTransaction{}, decimal.NewFromInt(1200), nil)
	d.cbRepo.EXPECT().MarkResolved(ctx, tx, cb, domain.ChargebackStatusRepresentment).Return(nil)
	// One audit row for the debit entry, one for the resolution.
	d.auditSvc.EXPECT().Log(gomock.Any(), gomock.Any()).Times(2)
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	resolved, err := d.svc.Resolve(ctx, cb.ID, ports.ResolveChargebackRequest{
		Outcome:            domain.ChargebackStatusLost,
		ImpactReserve:      true,
		ReserveDebitAmount: cb.Amount,
		Actor:              "disputes@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ChargebackStatusLost, resolved.Status)
	assert.True(t, resolved.ReserveImpacted)
	assert.True(t, resolved.ReserveDebitAmount.Equal(decimal.NewFromInt(3800)))
	assert.True(t, resolved.RemainingUnfunded.Equal(decimal.NewFromInt(1200)))
	require.NotNil(t, resolved.ResolvedAt)
}

func TestChargebackService_Resolve_DebitFailureAbortsResolution(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	cb := openChargeback(domain.ChargebackStatusUnderReview)

	d.cbRepo.EXPECT().GetByID(ctx, cb.ID).Return(cb, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	// Debit fails: MarkResolved must never run, so the status flip cannot
	// outlive the failed debit.
	d.debitor.EXPECT().
		DebitForChargebackTx(ctx, tx, cb.ProfileID, cb.ID, cb.Amount, gomock.Any()).
		Return(nil, decimal.Zero, assert.AnError)

	resolved, err := d.svc.Resolve(ctx, cb.ID, ports.ResolveChargebackRequest{
		Outcome:            domain.ChargebackStatusLost,
		ImpactReserve:      true,
		ReserveDebitAmount: cb.Amount,
	})
	assert.Nil(t, resolved)
	require.Error(t, err)
}

func TestChargebackService_Resolve_CommitFailureWritesNoAudit(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	cb := openChargeback(domain.ChargebackStatusRepresentment)

	// The debit succeeds inside the transaction, then the guarded status
	// write fails: no audit row may describe the rolled-back debit.
	d.cbRepo.EXPECT().GetByID(ctx, cb.ID).Return(cb, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.debitor.EXPECT().
		DebitForChargebackTx(ctx, tx, cb.ProfileID, cb.ID, cb.Amount, gomock.Any()).
		Return(&domain.ReserveTransaction{ID: uuid.New()}, decimal.Zero, nil)
	d.cbRepo.EXPECT().MarkResolved(ctx, tx, cb, domain.ChargebackStatusRepresentment).Return(assert.AnError)

	resolved, err := d.svc.Resolve(ctx, cb.ID, ports.ResolveChargebackRequest{
		Outcome:            domain.ChargebackStatusLost,
		ImpactReserve:      true,
		ReserveDebitAmount: cb.Amount,
	})
	assert.Nil(t, resolved)
	require.Error(t, err)
}

func TestChargebackService_Resolve_ZeroDebitLeavesLedgerAlone(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	cb := openChargeback(domain.ChargebackStatusRepresentment)

	// No DebitForChargebackTx expectation: the ledger must not be touched
	// when the debit amount is zero, only the status commits.
	d.cbRepo.EXPECT().GetByID(ctx, cb.ID).Return(cb, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.cbRepo.EXPECT().MarkResolved(ctx, tx, cb, domain.ChargebackStatusRepresentment).Return(nil)
	d.auditSvc.EXPECT().Log(gomock.Any(), gomock.Any())
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	resolved, err := d.svc.Resolve(ctx, cb.ID, ports.ResolveChargebackRequest{
		Outcome:       domain.ChargebackStatusLost,
		ImpactReserve: true,
		Actor:         "disputes@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ChargebackStatusLost, resolved.Status)
	assert.False(t, resolved.ReserveImpacted)
	assert.True(t, resolved.ReserveDebitAmount.IsZero())
}

func TestChargebackService_Resolve_WonRecordsRecovery(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	cb := openChargeback(domain.ChargebackStatusRepresentment)

	d.cbRepo.EXPECT().GetByID(ctx, cb.ID).Return(cb, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.cbRepo.EXPECT().MarkResolved(ctx, tx, cb, domain.ChargebackStatusRepresentment).Return(nil)
	d.auditSvc.EXPECT().Log(gomock.Any(), gomock.Any())
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	resolved, err := d.svc.Resolve(ctx, cb.ID, ports.ResolveChargebackRequest{
		Outcome:     domain.ChargebackStatusWon,
		FeeRefunded: true,
		Actor:       "disputes@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ChargebackStatusWon, resolved.Status)
	assert.True(t, resolved.RecoveredAmount.Equal(cb.Amount), "recovery defaults to the dispute amount")
	assert.True(t, resolved.FeeRefunded)
	assert.False(t, resolved.ReserveImpacted)
}

func TestChargebackService_Resolve_InvalidOutcome(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	resolved, err := d.svc.Resolve(context.Background(), uuid.New(), ports.ResolveChargebackRequest{
		Outcome: domain.ChargebackStatusUnderReview,
	})
	assert.Nil(t, resolved)
	assertAppError(t, err, "CBK_004")
}

func TestChargebackService_Resolve_AlreadyResolved(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	cb := openChargeback(domain.ChargebackStatusWon)
	d.cbRepo.EXPECT().GetByID(gomock.Any(), cb.ID).Return(cb, nil)

	resolved, err := d.svc.Resolve(context.Background(), cb.ID, ports.ResolveChargebackRequest{
		Outcome: domain.ChargebackStatusLost,
	})
	assert.Nil(t, resolved)
	assertAppError(t, err, "CBK_003")
}

func TestChargebackService_Resolve_NegativeDebitRejected(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	resolved, err := d.svc.Resolve(context.Background(), uuid.New(), ports.ResolveChargebackRequest{
		Outcome:            domain.ChargebackStatusLost,
		ImpactReserve:      true,
		ReserveDebitAmount: decimal.NewFromInt(-100),
	})
	assert.Nil(t, resolved)
	assertAppError(t, err, "VAL_002")
}

// ==================== UpdateMetadata Tests ====================

func TestChargebackService_UpdateMetadata_Success(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cb := openChargeback(domain.ChargebackStatusReceived)
	desc := "cardholder claims non-receipt"
	respondBy := time.Now().UTC().AddDate(0, 0, 14)

	d.cbRepo.EXPECT().GetByID(ctx, cb.ID).Return(cb, nil)
	d.cbRepo.EXPECT().UpdateMetadata(ctx, cb).Return(nil)
	d.auditSvc.EXPECT().Log(gomock.Any(), gomock.Any())

	updated, err := d.svc.UpdateMetadata(ctx, cb.ID, ports.UpdateChargebackRequest{
		ReasonDescription: &desc,
		RespondBy:         &respondBy,
		Actor:             "disputes@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.ReasonDescription)
	require.NotNil(t, updated.RespondBy)
	assert.Equal(t, respondBy, *updated.RespondBy)
}

func TestChargebackService_UpdateMetadata_TerminalRejected(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	cb := openChargeback(domain.ChargebackStatusAccepted)
	d.cbRepo.EXPECT().GetByID(gomock.Any(), cb.ID).Return(cb, nil)

	updated, err := d.svc.UpdateMetadata(context.Background(), cb.ID, ports.UpdateChargebackRequest{})
	assert.Nil(t, updated)
	assertAppError(t, err, "CBK_003")
}

// ==================== Read Path Tests ====================

func TestChargebackService_GetStats(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	profile := testProfile(decimal.Zero)
	profile.TransactionCount = 1000
	profile.ChargebackCount = 12

	d.profileRepo.EXPECT().GetByID(ctx, profile.ID).Return(profile, nil)
	d.cbRepo.EXPECT().Stats(ctx, profile.ID).Return(&ports.ChargebackStats{
		Total: 12,
		Open:  2,
		Won:   4,
		Lost:  5,
	}, nil)

	stats, err := d.svc.GetStats(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Total)
	assert.InDelta(t, 0.012, stats.ChargebackRatio, 1e-9)
}

func TestChargebackService_GetApproachingDeadline_DefaultWindow(t *testing.T) {
	d := setupChargebackService(t)
	defer d.ctrl.Finish()

	d.cbRepo.EXPECT().
		ListApproachingDeadline(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, now, until time.Time) ([]domain.ChargebackRecord, error) {
			assert.WithinDuration(t, now.AddDate(0, 0, 7), until, time.Second)
			return []domain.ChargebackRecord{*openChargeback(domain.ChargebackStatusReceived)}, nil
		})

	records, err := d.svc.GetApproachingDeadline(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
