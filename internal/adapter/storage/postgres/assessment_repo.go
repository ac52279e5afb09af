package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"merchant-reserve-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AssessmentRepo implements ports.AssessmentRepository.
type AssessmentRepo struct {
	pool Pool
}

// NewAssessmentRepo creates a new AssessmentRepo.
func NewAssessmentRepo(pool Pool) *AssessmentRepo {
	return &AssessmentRepo{pool: pool}
}

const assessmentColumns = `id, profile_id, assessment_type, ai_assisted,
	previous_level, new_level, previous_score, new_score,
	factors, confidence, explanation, recommended_actions,
	requires_approval, approved_at, approved_by, created_by, created_at`

// Create inserts an assessment record.
func (r *AssessmentRepo) Create(ctx context.Context, a *domain.RiskAssessment) error {
	factors, err := marshalDocument(a.Factors)
	if err != nil {
		return err
	}
	actions, err := json.Marshal(a.RecommendedActions)
	if err != nil {
		return fmt.Errorf("marshal recommended actions: %w", err)
	}

	query := `INSERT INTO risk_assessment (id, profile_id, assessment_type, ai_assisted,
		previous_level, new_level, previous_score, new_score,
		factors, confidence, explanation, recommended_actions,
		requires_approval, approved_at, approved_by, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = r.pool.Exec(ctx, query,
		a.ID, a.ProfileID, a.AssessmentType, a.AIAssisted,
		a.PreviousLevel, a.NewLevel, a.PreviousScore, a.NewScore,
		factors, a.Confidence, a.Explanation, actions,
		a.RequiresApproval, a.ApprovedAt, a.ApprovedBy, a.CreatedBy, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// GetByID fetches an assessment record.
func (r *AssessmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RiskAssessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM risk_assessment WHERE id = $1`

	a, err := scanAssessmentRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// StampApproval records the sign-off within the caller's transaction,
// guarded against double approval.
func (r *AssessmentRepo) StampApproval(ctx context.Context, tx pgx.Tx, id uuid.UUID, approvedAt time.Time, approvedBy string) error {
	query := `UPDATE risk_assessment SET approved_at = $1, approved_by = $2
		WHERE id = $3 AND approved_at IS NULL`

	tag, err := tx.Exec(ctx, query, approvedAt, approvedBy, id)
	if err != nil {
		return fmt.Errorf("stamp approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("assessment %s not found or already approved", id)
	}
	return nil
}

// ListByProfile returns a profile's assessments, newest first.
func (r *AssessmentRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]domain.RiskAssessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM risk_assessment
		WHERE profile_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var assessments []domain.RiskAssessment
	for rows.Next() {
		a, err := scanAssessmentRow(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, *a)
	}
	return assessments, rows.Err()
}

func scanAssessmentRow(row pgx.Row) (*domain.RiskAssessment, error) {
	a := &domain.RiskAssessment{}
	var factors, actions []byte

	err := row.Scan(
		&a.ID, &a.ProfileID, &a.AssessmentType, &a.AIAssisted,
		&a.PreviousLevel, &a.NewLevel, &a.PreviousScore, &a.NewScore,
		&factors, &a.Confidence, &a.Explanation, &actions,
		&a.RequiresApproval, &a.ApprovedAt, &a.ApprovedBy, &a.CreatedBy, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan assessment: %w", err)
	}

	if len(factors) > 0 {
		if err := json.Unmarshal(factors, &a.Factors); err != nil {
			return nil, fmt.Errorf("unmarshal factors: %w", err)
		}
	}
	if len(actions) > 0 {
		if err := json.Unmarshal(actions, &a.RecommendedActions); err != nil {
			return nil, fmt.Errorf("unmarshal recommended actions: %w", err)
		}
	}
	return a, nil
}
