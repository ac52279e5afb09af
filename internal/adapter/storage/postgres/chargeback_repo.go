package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the PostgreSQL error code for unique-key violations.
const uniqueViolationCode = "23505"

// ChargebackRepo implements ports.ChargebackRepository.
type ChargebackRepo struct {
	pool Pool
}

// NewChargebackRepo creates a new ChargebackRepo.
func NewChargebackRepo(pool Pool) *ChargebackRepo {
	return &ChargebackRepo{pool: pool}
}

const chargebackColumns = `id, external_id, profile_id, amount::text, fee::text,
	reason_code, reason_description, status, respond_by,
	representment_evidence, representment_notes, represented_at,
	recovered_amount::text, fee_refunded, reserve_impacted,
	reserve_debit_amount::text, remaining_unfunded::text,
	resolution_notes, resolved_at, created_at, updated_at`

// Create inserts a new chargeback record within the caller's transaction, so
// it commits together with the profile's chargeback totals.
func (r *ChargebackRepo) Create(ctx context.Context, tx pgx.Tx, cb *domain.ChargebackRecord) error {
	evidence, err := marshalDocument(cb.RepresentmentEvidence)
	if err != nil {
		return err
	}

	query := `INSERT INTO chargeback_record (id, external_id, profile_id, amount, fee,
		reason_code, reason_description, status, respond_by,
		representment_evidence, representment_notes, represented_at,
		recovered_amount, fee_refunded, reserve_impacted,
		reserve_debit_amount, remaining_unfunded,
		resolution_notes, resolved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	_, err = tx.Exec(ctx, query,
		cb.ID, cb.ExternalID, cb.ProfileID, cb.Amount.String(), cb.Fee.String(),
		cb.ReasonCode, cb.ReasonDescription, cb.Status, cb.RespondBy,
		evidence, cb.RepresentmentNotes, cb.RepresentedAt,
		cb.RecoveredAmount.String(), cb.FeeRefunded, cb.ReserveImpacted,
		cb.ReserveDebitAmount.String(), cb.RemainingUnfunded.String(),
		cb.ResolutionNotes, cb.ResolvedAt, cb.CreatedAt, cb.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ports.ErrDuplicateExternalID
		}
		return fmt.Errorf("insert chargeback: %w", err)
	}
	return nil
}

// GetByID fetches a chargeback by internal id.
func (r *ChargebackRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChargebackRecord, error) {
	query := `SELECT ` + chargebackColumns + ` FROM chargeback_record WHERE id = $1`
	return scanChargebackNullable(r.pool.QueryRow(ctx, query, id))
}

// GetByExternalID fetches a chargeback by the processor's dispute id.
func (r *ChargebackRepo) GetByExternalID(ctx context.Context, externalID string) (*domain.ChargebackRecord, error) {
	query := `SELECT ` + chargebackColumns + ` FROM chargeback_record WHERE external_id = $1`
	return scanChargebackNullable(r.pool.QueryRow(ctx, query, externalID))
}

// UpdateMetadata writes mutable non-lifecycle fields.
func (r *ChargebackRepo) UpdateMetadata(ctx context.Context, cb *domain.ChargebackRecord) error {
	query := `UPDATE chargeback_record
		SET reason_description = $1, respond_by = $2, resolution_notes = $3, updated_at = NOW()
		WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, cb.ReasonDescription, cb.RespondBy, cb.ResolutionNotes, cb.ID)
	if err != nil {
		return fmt.Errorf("update chargeback metadata: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chargeback not found: %s", cb.ID)
	}
	return nil
}

// UpdateRepresentment transitions the record to REPRESENTMENT guarded by the
// expected current status. A lost race affects zero rows and surfaces as an
// error.
func (r *ChargebackRepo) UpdateRepresentment(ctx context.Context, cb *domain.ChargebackRecord, expected domain.ChargebackStatus) error {
	evidence, err := marshalDocument(cb.RepresentmentEvidence)
	if err != nil {
		return err
	}

	query := `UPDATE chargeback_record
		SET status = $1, representment_evidence = $2, representment_notes = $3,
			represented_at = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6`

	tag, err := r.pool.Exec(ctx, query,
		cb.Status, evidence, cb.RepresentmentNotes, cb.RepresentedAt, cb.ID, expected,
	)
	if err != nil {
		return fmt.Errorf("update representment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chargeback %s not in status %s", cb.ID, expected)
	}
	return nil
}

// MarkResolved writes the terminal status and resolution fields within the
// caller's transaction, guarded by the expected current status.
func (r *ChargebackRepo) MarkResolved(ctx context.Context, tx pgx.Tx, cb *domain.ChargebackRecord, expected domain.ChargebackStatus) error {
	query := `UPDATE chargeback_record
		SET status = $1, recovered_amount = $2, fee_refunded = $3,
			reserve_impacted = $4, reserve_debit_amount = $5, remaining_unfunded = $6,
			resolution_notes = $7, resolved_at = $8, updated_at = NOW()
		WHERE id = $9 AND status = $10`

	tag, err := tx.Exec(ctx, query,
		cb.Status, cb.RecoveredAmount.String(), cb.FeeRefunded,
		cb.ReserveImpacted, cb.ReserveDebitAmount.String(), cb.RemainingUnfunded.String(),
		cb.ResolutionNotes, cb.ResolvedAt, cb.ID, expected,
	)
	if err != nil {
		return fmt.Errorf("mark chargeback resolved: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chargeback %s not in status %s", cb.ID, expected)
	}
	return nil
}

// List fetches chargebacks with filtering and pagination, newest first.
func (r *ChargebackRepo) List(ctx context.Context, params ports.ChargebackListParams) ([]domain.ChargebackRecord, int64, error) {
	conditions := []string{"1=1"}
	var args []any
	argIdx := 1

	if params.ProfileID != nil {
		conditions = append(conditions, fmt.Sprintf("profile_id = $%d", argIdx))
		args = append(args, *params.ProfileID)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.ReasonCode != nil {
		conditions = append(conditions, fmt.Sprintf("reason_code = $%d", argIdx))
		args = append(args, *params.ReasonCode)
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
	countQuery := `SELECT COUNT(*) FROM chargeback_record WHERE ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count chargebacks: %w", err)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	query := fmt.Sprintf(`SELECT %s FROM chargeback_record WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, chargebackColumns, where, argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list chargebacks: %w", err)
	}
	defer rows.Close()

	records, err := collectChargebackRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Stats aggregates dispute outcomes for one merchant.
func (r *ChargebackRepo) Stats(ctx context.Context, profileID uuid.UUID) (*ports.ChargebackStats, error) {
	query := `SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status NOT IN ('WON', 'LOST', 'ACCEPTED')),
		COUNT(*) FILTER (WHERE status = 'WON'),
		COUNT(*) FILTER (WHERE status = 'LOST'),
		COUNT(*) FILTER (WHERE status = 'ACCEPTED'),
		COALESCE(SUM(amount), 0)::text,
		COALESCE(SUM(fee), 0)::text,
		COALESCE(SUM(recovered_amount), 0)::text
		FROM chargeback_record WHERE profile_id = $1`

	var s ports.ChargebackStats
	var amount, fees, recovered string
	err := r.pool.QueryRow(ctx, query, profileID).Scan(
		&s.Total, &s.Open, &s.Won, &s.Lost, &s.Accepted,
		&amount, &fees, &recovered,
	)
	if err != nil {
		return nil, fmt.Errorf("chargeback stats: %w", err)
	}

	if s.TotalAmount, err = parseDecimal(amount); err != nil {
		return nil, err
	}
	if s.TotalFees, err = parseDecimal(fees); err != nil {
		return nil, err
	}
	if s.RecoveredAmount, err = parseDecimal(recovered); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListApproachingDeadline returns open disputes due between now and until,
// tightest deadline first.
func (r *ChargebackRepo) ListApproachingDeadline(ctx context.Context, now, until time.Time) ([]domain.ChargebackRecord, error) {
	query := `SELECT ` + chargebackColumns + ` FROM chargeback_record
		WHERE status NOT IN ('WON', 'LOST', 'ACCEPTED')
			AND respond_by IS NOT NULL AND respond_by >= $1 AND respond_by <= $2
		ORDER BY respond_by ASC`

	rows, err := r.pool.Query(ctx, query, now, until)
	if err != nil {
		return nil, fmt.Errorf("list approaching deadline: %w", err)
	}
	defer rows.Close()

	return collectChargebackRows(rows)
}

func marshalDocument(doc domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, nil
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}

func scanChargebackNullable(row pgx.Row) (*domain.ChargebackRecord, error) {
	cb, err := scanChargebackRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cb, nil
}

func scanChargebackRow(row pgx.Row) (*domain.ChargebackRecord, error) {
	cb := &domain.ChargebackRecord{}
	var amount, fee, recovered, debit, unfunded string
	var evidence []byte

	err := row.Scan(
		&cb.ID, &cb.ExternalID, &cb.ProfileID, &amount, &fee,
		&cb.ReasonCode, &cb.ReasonDescription, &cb.Status, &cb.RespondBy,
		&evidence, &cb.RepresentmentNotes, &cb.RepresentedAt,
		&recovered, &cb.FeeRefunded, &cb.ReserveImpacted,
		&debit, &unfunded,
		&cb.ResolutionNotes, &cb.ResolvedAt, &cb.CreatedAt, &cb.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan chargeback: %w", err)
	}

	if len(evidence) > 0 {
		if err := json.Unmarshal(evidence, &cb.RepresentmentEvidence); err != nil {
			return nil, fmt.Errorf("unmarshal evidence: %w", err)
		}
	}

	if cb.Amount, err = parseDecimal(amount); err != nil {
		return nil, err
	}
	if cb.Fee, err = parseDecimal(fee); err != nil {
		return nil, err
	}
	if cb.RecoveredAmount, err = parseDecimal(recovered); err != nil {
		return nil, err
	}
	if cb.ReserveDebitAmount, err = parseDecimal(debit); err != nil {
		return nil, err
	}
	if cb.RemainingUnfunded, err = parseDecimal(unfunded); err != nil {
		return nil, err
	}
	return cb, nil
}

func collectChargebackRows(rows pgx.Rows) ([]domain.ChargebackRecord, error) {
	var records []domain.ChargebackRecord
	for rows.Next() {
		cb, err := scanChargebackRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *cb)
	}
	return records, rows.Err()
}
