package postgres

import (
	"context"
	"testing"
	"time"

	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHold(profileID uuid.UUID) *domain.ReserveTransaction {
	sourceID := "txn-001"
	scheduled := time.Now().UTC().Add(90 * 24 * time.Hour).Truncate(time.Microsecond)
	return &domain.ReserveTransaction{
		ID:                  uuid.New(),
		ProfileID:           profileID,
		EntryType:           domain.EntryTypeHold,
		Amount:              decimal.NewFromInt(1000),
		BalanceAfter:        decimal.NewFromInt(1000),
		SourceTransactionID: &sourceID,
		ScheduledReleaseAt:  &scheduled,
		Description:         "Reserve hold 10% of txn-001",
		CreatedBy:           "user-1",
		CreatedAt:           time.Now().UTC().Truncate(time.Microsecond),
	}
}

func ledgerColumnNames() []string {
	return []string{
		"id", "profile_id", "entry_type", "amount", "balance_after",
		"source_transaction_id", "chargeback_id", "scheduled_release_at", "released_at",
		"description", "created_by", "created_at",
	}
}

func ledgerRow(e *domain.ReserveTransaction) *pgxmock.Rows {
	return pgxmock.NewRows(ledgerColumnNames()).AddRow(
		e.ID, e.ProfileID, e.EntryType, e.Amount.String(), e.BalanceAfter.String(),
		e.SourceTransactionID, e.ChargebackID, e.ScheduledReleaseAt, e.ReleasedAt,
		e.Description, e.CreatedBy, e.CreatedAt,
	)
}

func TestLedgerRepo_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	e := newTestHold(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO reserve_transaction").
		WithArgs(e.ID, e.ProfileID, e.EntryType, e.Amount.String(), e.BalanceAfter.String(),
			e.SourceTransactionID, e.ChargebackID, e.ScheduledReleaseAt, e.ReleasedAt,
			e.Description, e.CreatedBy, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Insert(context.Background(), tx, e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM reserve_transaction WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(ledgerColumnNames()))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLedgerRepo_FindDueHolds(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	profileID := uuid.New()
	first := newTestHold(profileID)
	second := newTestHold(profileID)
	asOf := time.Now().UTC()

	rows := ledgerRow(first).AddRow(
		second.ID, second.ProfileID, second.EntryType, second.Amount.String(), second.BalanceAfter.String(),
		second.SourceTransactionID, second.ChargebackID, second.ScheduledReleaseAt, second.ReleasedAt,
		second.Description, second.CreatedBy, second.CreatedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM reserve_transaction").
		WithArgs(asOf, 500).
		WillReturnRows(rows)

	got, err := repo.FindDueHolds(context.Background(), asOf, 500)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.True(t, got[0].Amount.Equal(first.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_StampReleased(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	holdID := uuid.New()
	releasedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE reserve_transaction SET released_at").
		WithArgs(releasedAt, holdID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.StampReleased(context.Background(), tx, holdID, releasedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_StampReleased_AlreadyReleased(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	holdID := uuid.New()
	releasedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE reserve_transaction SET released_at").
		WithArgs(releasedAt, holdID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.StampReleased(context.Background(), tx, holdID, releasedAt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already released")
}

func TestLedgerRepo_List_FiltersByType(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	profileID := uuid.New()
	e := newTestHold(profileID)
	entryType := domain.EntryTypeHold

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reserve_transaction").
		WithArgs(profileID, entryType).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT (.+) FROM reserve_transaction").
		WithArgs(profileID, entryType, 20, 0).
		WillReturnRows(ledgerRow(e))

	got, total, err := repo.List(context.Background(), ports.LedgerListParams{
		ProfileID: profileID,
		EntryType: &entryType,
		Page:      1,
		PageSize:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, e.ID, got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
