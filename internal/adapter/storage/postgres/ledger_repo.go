package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository over the append-only
// reserve_transaction table.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

const ledgerColumns = `id, profile_id, entry_type, amount::text, balance_after::text,
	source_transaction_id, chargeback_id, scheduled_release_at, released_at,
	description, created_by, created_at`

// Insert appends a ledger entry within the caller's transaction.
func (r *LedgerRepo) Insert(ctx context.Context, tx pgx.Tx, e *domain.ReserveTransaction) error {
	query := `INSERT INTO reserve_transaction (id, profile_id, entry_type, amount, balance_after,
		source_transaction_id, chargeback_id, scheduled_release_at, released_at,
		description, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.ProfileID, e.EntryType, e.Amount.String(), e.BalanceAfter.String(),
		e.SourceTransactionID, e.ChargebackID, e.ScheduledReleaseAt, e.ReleasedAt,
		e.Description, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByID fetches a single ledger entry.
func (r *LedgerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReserveTransaction, error) {
	query := `SELECT ` + ledgerColumns + ` FROM reserve_transaction WHERE id = $1`

	e, err := scanLedgerRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// List fetches ledger entries with filtering and pagination, newest first.
func (r *LedgerRepo) List(ctx context.Context, params ports.LedgerListParams) ([]domain.ReserveTransaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("profile_id = $%d", argIdx))
	args = append(args, params.ProfileID)
	argIdx++

	if params.EntryType != nil {
		conditions = append(conditions, fmt.Sprintf("entry_type = $%d", argIdx))
		args = append(args, *params.EntryType)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM reserve_transaction WHERE ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ledger entries: %w", err)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	query := fmt.Sprintf(`SELECT %s FROM reserve_transaction WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, ledgerColumns, where, argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	entries, err := collectLedgerRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// FindDueHolds returns unreleased HOLD entries scheduled at or before asOf,
// oldest schedule first.
func (r *LedgerRepo) FindDueHolds(ctx context.Context, asOf time.Time, limit int) ([]domain.ReserveTransaction, error) {
	query := `SELECT ` + ledgerColumns + ` FROM reserve_transaction
		WHERE entry_type = 'HOLD' AND released_at IS NULL AND scheduled_release_at <= $1
		ORDER BY scheduled_release_at ASC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("find due holds: %w", err)
	}
	defer rows.Close()

	return collectLedgerRows(rows)
}

// FindPendingHolds returns unreleased holds for one profile, next release
// first.
func (r *LedgerRepo) FindPendingHolds(ctx context.Context, profileID uuid.UUID) ([]domain.ReserveTransaction, error) {
	query := `SELECT ` + ledgerColumns + ` FROM reserve_transaction
		WHERE profile_id = $1 AND entry_type = 'HOLD' AND released_at IS NULL
		ORDER BY scheduled_release_at ASC`

	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("find pending holds: %w", err)
	}
	defer rows.Close()

	return collectLedgerRows(rows)
}

// StampReleased sets released_at on an unreleased HOLD. The released_at guard
// makes a double release fail instead of silently overwriting.
func (r *LedgerRepo) StampReleased(ctx context.Context, tx pgx.Tx, holdID uuid.UUID, releasedAt time.Time) error {
	query := `UPDATE reserve_transaction SET released_at = $1
		WHERE id = $2 AND entry_type = 'HOLD' AND released_at IS NULL`

	tag, err := tx.Exec(ctx, query, releasedAt, holdID)
	if err != nil {
		return fmt.Errorf("stamp hold released: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("hold %s not found or already released", holdID)
	}
	return nil
}

func scanLedgerRow(row pgx.Row) (*domain.ReserveTransaction, error) {
	e := &domain.ReserveTransaction{}
	var amount, balanceAfter string

	err := row.Scan(
		&e.ID, &e.ProfileID, &e.EntryType, &amount, &balanceAfter,
		&e.SourceTransactionID, &e.ChargebackID, &e.ScheduledReleaseAt, &e.ReleasedAt,
		&e.Description, &e.CreatedBy, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan ledger entry: %w", err)
	}

	if e.Amount, err = parseDecimal(amount); err != nil {
		return nil, err
	}
	if e.BalanceAfter, err = parseDecimal(balanceAfter); err != nil {
		return nil, err
	}
	return e, nil
}

func collectLedgerRows(rows pgx.Rows) ([]domain.ReserveTransaction, error) {
	var entries []domain.ReserveTransaction
	for rows.Next() {
		e, err := scanLedgerRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}
