package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentType records why a scoring run happened.
type AssessmentType string

const (
	AssessmentTypeOnboarding AssessmentType = "ONBOARDING"
	AssessmentTypePeriodic   AssessmentType = "PERIODIC"
	AssessmentTypeTriggered  AssessmentType = "TRIGGERED"
	AssessmentTypeManual     AssessmentType = "MANUAL"
)

// RiskAssessment is the immutable audit record of one scoring run. The only
// permitted mutation is stamping the approval fields.
type RiskAssessment struct {
	ID                 uuid.UUID      `json:"id"`
	ProfileID          uuid.UUID      `json:"profile_id"`
	AssessmentType     AssessmentType `json:"assessment_type"`
	AIAssisted         bool           `json:"ai_assisted"`
	PreviousLevel      RiskLevel      `json:"previous_level"`
	NewLevel           RiskLevel      `json:"new_level"`
	PreviousScore      int            `json:"previous_score"`
	NewScore           int            `json:"new_score"`
	Factors            Document       `json:"factors"` // input snapshot
	Confidence         float64        `json:"confidence"`
	Explanation        string         `json:"explanation"`
	RecommendedActions []string       `json:"recommended_actions"`
	RequiresApproval   bool           `json:"requires_approval"`
	ApprovedAt         *time.Time     `json:"approved_at,omitempty"`
	ApprovedBy         *string        `json:"approved_by,omitempty"`
	CreatedBy          string         `json:"created_by"`
	CreatedAt          time.Time      `json:"created_at"`
}

// IsApproved reports whether the assessment has been signed off.
func (a *RiskAssessment) IsApproved() bool {
	return a.ApprovedAt != nil
}

// LevelChanged reports whether the run recommended a different level than the
// profile carried going in.
func (a *RiskAssessment) LevelChanged() bool {
	return a.NewLevel != a.PreviousLevel
}
