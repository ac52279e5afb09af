package service

import (
	"context"
	"fmt"
	"time"

	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RiskServiceImpl implements ports.RiskService.
type RiskServiceImpl struct {
	profileRepo    ports.ProfileRepository
	assessmentRepo ports.AssessmentRepository
	transactor     ports.DBTransactor
	auditSvc       ports.AuditService
	events         ports.EventPublisher
	log            zerolog.Logger
}

// NewRiskService creates a new RiskServiceImpl.
func NewRiskService(
	profileRepo ports.ProfileRepository,
	assessmentRepo ports.AssessmentRepository,
	transactor ports.DBTransactor,
	auditSvc ports.AuditService,
	events ports.EventPublisher,
	log zerolog.Logger,
) *RiskServiceImpl {
	return &RiskServiceImpl{
		profileRepo:    profileRepo,
		assessmentRepo: assessmentRepo,
		transactor:     transactor,
		auditSvc:       auditSvc,
		events:         events,
		log:            log,
	}
}

// CreateProfile onboards a merchant with a neutral baseline posture and runs
// the initial onboarding assessment. The assessment record carries the
// computed posture; it applies immediately unless it requires approval.
func (s *RiskServiceImpl) CreateProfile(ctx context.Context, req ports.CreateProfileRequest) (*domain.MerchantRiskProfile, error) {
	if req.MerchantName == "" {
		return nil, apperror.Validation("merchant_name is required")
	}
	if len(req.MCC) != 4 {
		return nil, apperror.Validation("mcc must be a four-digit category code")
	}

	now := time.Now().UTC()
	profile := &domain.MerchantRiskProfile{
		ID:                uuid.New(),
		MerchantName:      req.MerchantName,
		MCC:               req.MCC,
		BusinessStartDate: req.BusinessStartDate,
		RiskLevel:         domain.RiskLevelStandard,
		RiskScore:         baselineScore,
		NextReviewDate:    ptrTime(nextReviewDate(domain.RiskLevelStandard, now)),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create profile: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AuditEntry{
		ID:             uuid.New(),
		Action:         domain.AuditActionProfileCreate,
		EntityType:     "merchant_risk_profile",
		EntityID:       profile.ID.String(),
		Actor:          req.Actor,
		Classification: "risk",
		Metadata: domain.Document{
			"merchant_name": profile.MerchantName,
			"mcc":           profile.MCC,
		},
		CreatedAt: now,
	})
	s.publish(ctx, domain.EventProfileCreated, "merchant_risk_profile", profile.ID.String(), domain.Document{
		"merchant_name": profile.MerchantName,
		"mcc":           profile.MCC,
	})

	if _, err := s.PerformAssessment(ctx, ports.AssessmentRequest{
		ProfileID:      profile.ID,
		AssessmentType: domain.AssessmentTypeOnboarding,
		Actor:          req.Actor,
	}); err != nil {
		// Profile exists either way; the assessment can be re-run.
		s.log.Warn().Err(err).Str("profile_id", profile.ID.String()).Msg("onboarding assessment failed")
		return profile, nil
	}

	refreshed, err := s.profileRepo.GetByID(ctx, profile.ID)
	if err != nil || refreshed == nil {
		return profile, nil
	}

	s.log.Info().
		Str("profile_id", profile.ID.String()).
		Str("merchant_name", profile.MerchantName).
		Str("risk_level", string(refreshed.RiskLevel)).
		Msg("merchant profile created")

	return refreshed, nil
}

func ptrTime(t time.Time) *time.Time { return &t }

// PerformAssessment runs one scoring pass over the profile and persists the
// assessment record. A run that changes the level, or lands at HIGH or above,
// requires explicit approval before the profile's posture changes; otherwise
// the new score and review date apply immediately.
func (s *RiskServiceImpl) PerformAssessment(ctx context.Context, req ports.AssessmentRequest) (*domain.RiskAssessment, error) {
	profile, err := s.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get profile: %w", err))
	}
	if profile == nil {
		return nil, apperror.ErrNotFound("merchant profile")
	}

	now := time.Now().UTC()
	result := scoreProfile(profile, now)

	explanation := result.Explanation
	if req.AIAssisted {
		explanation = "AI-assisted assessment: " + explanation
	}

	requiresApproval := result.Level != profile.RiskLevel ||
		result.Level.AtLeast(domain.RiskLevelHigh)

	assessment := &domain.RiskAssessment{
		ID:                 uuid.New(),
		ProfileID:          profile.ID,
		AssessmentType:     req.AssessmentType,
		AIAssisted:         req.AIAssisted,
		PreviousLevel:      profile.RiskLevel,
		NewLevel:           result.Level,
		PreviousScore:      profile.RiskScore,
		NewScore:           result.Score,
		Factors:            result.Factors,
		Confidence:         result.Confidence,
		Explanation:        explanation,
		RecommendedActions: result.RecommendedActions,
		RequiresApproval:   requiresApproval,
		CreatedBy:          req.Actor,
		CreatedAt:          now,
	}

	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create assessment: %w", err))
	}

	// Auto-apply when no sign-off is needed. A pending escalation keeps the
	// current posture but still schedules the next review from it, so a
	// stalled approval cannot drop the profile out of the review loop.
	if !requiresApproval {
		if err := s.applyPosture(ctx, assessment); err != nil {
			return nil, err
		}
	} else if err := s.profileRepo.UpdateNextReview(ctx, profile.ID, nextReviewDate(profile.RiskLevel, now)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update next review: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AuditEntry{
		ID:             uuid.New(),
		Action:         domain.AuditActionRiskAssessment,
		EntityType:     "risk_assessment",
		EntityID:       assessment.ID.String(),
		Actor:          req.Actor,
		Classification: "risk",
		Metadata: domain.Document{
			"profile_id":        profile.ID.String(),
			"previous_level":    string(assessment.PreviousLevel),
			"new_level":         string(assessment.NewLevel),
			"new_score":         assessment.NewScore,
			"requires_approval": requiresApproval,
		},
		CreatedAt: now,
	})
	s.publish(ctx, domain.EventAssessmentCompleted, "risk_assessment", assessment.ID.String(), domain.Document{
		"profile_id": profile.ID.String(),
		"new_level":  string(assessment.NewLevel),
		"new_score":  assessment.NewScore,
	})

	s.log.Info().
		Str("assessment_id", assessment.ID.String()).
		Str("profile_id", profile.ID.String()).
		Str("previous_level", string(assessment.PreviousLevel)).
		Str("new_level", string(assessment.NewLevel)).
		Int("new_score", assessment.NewScore).
		Bool("requires_approval", requiresApproval).
		Msg("risk assessment performed")

	return assessment, nil
}

// ApproveAssessment stamps the sign-off and applies the recommended posture
// to the profile in one transaction.
func (s *RiskServiceImpl) ApproveAssessment(ctx context.Context, assessmentID uuid.UUID, actor string) (*domain.RiskAssessment, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get assessment: %w", err))
	}
	if assessment == nil {
		return nil, apperror.ErrNotFound("risk assessment")
	}
	if !assessment.RequiresApproval {
		return nil, apperror.ErrApprovalNotRequired()
	}
	if assessment.IsApproved() {
		return nil, apperror.ErrAssessmentApproved()
	}

	now := time.Now().UTC()
	review := nextReviewDate(assessment.NewLevel, now)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Guarded stamp: fails when another approver got there first.
	if err := s.assessmentRepo.StampApproval(ctx, dbTx, assessment.ID, now, actor); err != nil {
		return nil, apperror.ErrAssessmentApproved()
	}
	if err := s.profileRepo.UpdateRiskPosture(ctx, dbTx, assessment.ProfileID, assessment.NewLevel, assessment.NewScore, review); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update risk posture: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	assessment.ApprovedAt = &now
	assessment.ApprovedBy = &actor

	s.auditSvc.Log(ctx, &domain.AuditEntry{
		ID:             uuid.New(),
		Action:         domain.AuditActionRiskApproval,
		EntityType:     "risk_assessment",
		EntityID:       assessment.ID.String(),
		Actor:          actor,
		Classification: "risk",
		Metadata: domain.Document{
			"profile_id": assessment.ProfileID.String(),
			"new_level":  string(assessment.NewLevel),
		},
		CreatedAt: now,
	})
	if assessment.LevelChanged() {
		s.publish(ctx, domain.EventRiskLevelChanged, "merchant_risk_profile", assessment.ProfileID.String(), domain.Document{
			"previous_level": string(assessment.PreviousLevel),
			"new_level":      string(assessment.NewLevel),
		})
	}

	s.log.Info().
		Str("assessment_id", assessment.ID.String()).
		Str("profile_id", assessment.ProfileID.String()).
		Str("approved_by", actor).
		Msg("risk assessment approved")

	return assessment, nil
}

// GetProfile returns one merchant risk profile.
func (s *RiskServiceImpl) GetProfile(ctx context.Context, profileID uuid.UUID) (*domain.MerchantRiskProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get profile: %w", err))
	}
	if profile == nil {
		return nil, apperror.ErrNotFound("merchant profile")
	}
	return profile, nil
}

// ListProfilesDueForReview returns profiles whose next review date has
// passed, soonest first.
func (s *RiskServiceImpl) ListProfilesDueForReview(ctx context.Context, limit int) ([]domain.MerchantRiskProfile, error) {
	if limit <= 0 {
		limit = 50
	}
	profiles, err := s.profileRepo.ListDueForReview(ctx, time.Now().UTC(), limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list due reviews: %w", err))
	}
	return profiles, nil
}

// applyPosture writes an auto-applied assessment's score and review date.
func (s *RiskServiceImpl) applyPosture(ctx context.Context, a *domain.RiskAssessment) error {
	now := time.Now().UTC()
	review := nextReviewDate(a.NewLevel, now)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.profileRepo.UpdateRiskPosture(ctx, dbTx, a.ProfileID, a.NewLevel, a.NewScore, review); err != nil {
		return apperror.InternalError(fmt.Errorf("update risk posture: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func (s *RiskServiceImpl) publish(ctx context.Context, name, entityType, entityID string, payload domain.Document) {
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
