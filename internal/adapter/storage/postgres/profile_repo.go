package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"merchant-reserve-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProfileRepo implements ports.ProfileRepository.
type ProfileRepo struct {
	pool Pool
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(pool Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

const profileColumns = `id, merchant_name, mcc, business_start_date, risk_level, risk_score,
	reserve_balance::text, reserve_held_total::text, reserve_released_total::text,
	chargeback_debited_total::text, total_volume::text, transaction_count,
	chargeback_count, chargeback_amount::text, refund_amount::text,
	next_review_date, created_at, updated_at`

// Create inserts a new merchant risk profile.
func (r *ProfileRepo) Create(ctx context.Context, p *domain.MerchantRiskProfile) error {
	query := `INSERT INTO merchant_risk_profile (id, merchant_name, mcc, business_start_date,
		risk_level, risk_score, reserve_balance, reserve_held_total, reserve_released_total,
		chargeback_debited_total, total_volume, transaction_count, chargeback_count,
		chargeback_amount, refund_amount, next_review_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.MerchantName, p.MCC, p.BusinessStartDate,
		p.RiskLevel, p.RiskScore,
		p.ReserveBalance.String(), p.ReserveHeldTotal.String(), p.ReserveReleasedTotal.String(),
		p.ChargebackDebitedTotal.String(), p.TotalVolume.String(), p.TransactionCount,
		p.ChargebackCount, p.ChargebackAmount.String(), p.RefundAmount.String(),
		p.NextReviewDate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID fetches a profile without locking.
func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantRiskProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM merchant_risk_profile WHERE id = $1`
	return scanProfile(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a profile under a FOR UPDATE row lock, serializing
// concurrent reserve mutations against the same merchant. Must run inside a
// transaction.
func (r *ProfileRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.MerchantRiskProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM merchant_risk_profile WHERE id = $1 FOR UPDATE`
	return scanProfile(tx.QueryRow(ctx, query, id))
}

// UpdateReserveAggregates writes the reserve balance and cumulative totals
// back to the locked row.
func (r *ProfileRepo) UpdateReserveAggregates(ctx context.Context, tx pgx.Tx, p *domain.MerchantRiskProfile) error {
	query := `UPDATE merchant_risk_profile
		SET reserve_balance = $1, reserve_held_total = $2, reserve_released_total = $3,
			chargeback_debited_total = $4, updated_at = NOW()
		WHERE id = $5`

	tag, err := tx.Exec(ctx, query,
		p.ReserveBalance.String(), p.ReserveHeldTotal.String(),
		p.ReserveReleasedTotal.String(), p.ChargebackDebitedTotal.String(), p.ID,
	)
	if err != nil {
		return fmt.Errorf("update reserve aggregates: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", p.ID)
	}
	return nil
}

// ApplyChargeback bumps the profile's chargeback count and cumulative amount.
func (r *ProfileRepo) ApplyChargeback(ctx context.Context, tx pgx.Tx, id uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE merchant_risk_profile
		SET chargeback_count = chargeback_count + 1,
			chargeback_amount = chargeback_amount + $1::numeric,
			updated_at = NOW()
		WHERE id = $2`

	tag, err := tx.Exec(ctx, query, amount.String(), id)
	if err != nil {
		return fmt.Errorf("apply chargeback totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", id)
	}
	return nil
}

// UpdateRiskPosture applies a risk level, score and next review date.
func (r *ProfileRepo) UpdateRiskPosture(ctx context.Context, tx pgx.Tx, id uuid.UUID, level domain.RiskLevel, score int, nextReview time.Time) error {
	query := `UPDATE merchant_risk_profile
		SET risk_level = $1, risk_score = $2, next_review_date = $3, updated_at = NOW()
		WHERE id = $4`

	tag, err := tx.Exec(ctx, query, level, score, nextReview, id)
	if err != nil {
		return fmt.Errorf("update risk posture: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", id)
	}
	return nil
}

// UpdateNextReview stamps only the next review date.
func (r *ProfileRepo) UpdateNextReview(ctx context.Context, id uuid.UUID, nextReview time.Time) error {
	query := `UPDATE merchant_risk_profile SET next_review_date = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, nextReview, id)
	if err != nil {
		return fmt.Errorf("update next review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", id)
	}
	return nil
}

// ListDueForReview returns profiles whose next review date has passed,
// most overdue first.
func (r *ProfileRepo) ListDueForReview(ctx context.Context, asOf time.Time, limit int) ([]domain.MerchantRiskProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM merchant_risk_profile
		WHERE next_review_date IS NOT NULL AND next_review_date <= $1
		ORDER BY next_review_date ASC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("list due for review: %w", err)
	}
	defer rows.Close()

	var profiles []domain.MerchantRiskProfile
	for rows.Next() {
		p, err := scanProfileRow(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func scanProfile(row pgx.Row) (*domain.MerchantRiskProfile, error) {
	p, err := scanProfileRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProfileRow(row pgx.Row) (*domain.MerchantRiskProfile, error) {
	p := &domain.MerchantRiskProfile{}
	var balance, held, released, debited, volume, cbAmount, refunds string

	err := row.Scan(
		&p.ID, &p.MerchantName, &p.MCC, &p.BusinessStartDate,
		&p.RiskLevel, &p.RiskScore,
		&balance, &held, &released, &debited, &volume,
		&p.TransactionCount, &p.ChargebackCount, &cbAmount, &refunds,
		&p.NextReviewDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	for _, f := range []struct {
		src string
		dst *decimal.Decimal
	}{
		{balance, &p.ReserveBalance},
		{held, &p.ReserveHeldTotal},
		{released, &p.ReserveReleasedTotal},
		{debited, &p.ChargebackDebitedTotal},
		{volume, &p.TotalVolume},
		{cbAmount, &p.ChargebackAmount},
		{refunds, &p.RefundAmount},
	} {
		d, err := parseDecimal(f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = d
	}
	return p, nil
}
