package dto

import "time"

// Monetary amounts cross the wire as decimal strings ("1234.56", minor
// units); handlers parse them with shopspring/decimal so no float ever
// touches a balance.

// CreateProfileRequest is the request body for merchant onboarding.
type CreateProfileRequest struct {
	MerchantName      string     `json:"merchant_name" binding:"required,min=1,max=100"`
	MCC               string     `json:"mcc" binding:"required,len=4,numeric"`
	BusinessStartDate *time.Time `json:"business_start_date,omitempty"`
}

// CreateHoldRequest is the request body for withholding reserve from a
// processed transaction.
type CreateHoldRequest struct {
	SourceTransactionID string  `json:"source_transaction_id" binding:"required,max=100,safe_id"`
	SourceAmount        string  `json:"source_amount" binding:"required"`
	ReservePercentage   *string `json:"reserve_percentage,omitempty"`
	HoldDays            *int    `json:"hold_days,omitempty"`
}

// ReleaseRequest is the request body for a manual reserve release.
type ReleaseRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=255"`
}

// AdjustRequest is the request body for a signed reserve correction.
type AdjustRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required,max=255"`
}

// CreateChargebackRequest is the request body for registering an incoming
// dispute.
type CreateChargebackRequest struct {
	ExternalID        string     `json:"external_id" binding:"required,max=100,safe_id"`
	ProfileID         string     `json:"profile_id" binding:"required,uuid"`
	Amount            string     `json:"amount" binding:"required"`
	Fee               string     `json:"fee,omitempty"`
	ReasonCode        string     `json:"reason_code" binding:"required,max=20"`
	ReasonDescription string     `json:"reason_description" binding:"max=255"`
	RespondBy         *time.Time `json:"respond_by,omitempty"`
}

// UpdateChargebackRequest carries the mutable non-lifecycle fields of a
// dispute. Absent fields stay untouched.
type UpdateChargebackRequest struct {
	ReasonDescription *string    `json:"reason_description,omitempty" binding:"omitempty,max=255"`
	RespondBy         *time.Time `json:"respond_by,omitempty"`
	ResolutionNotes   *string    `json:"resolution_notes,omitempty" binding:"omitempty,max=1000"`
}

// RepresentmentRequest is the request body for submitting dispute evidence.
type RepresentmentRequest struct {
	Evidence map[string]any `json:"evidence" binding:"required"`
	Notes    string         `json:"notes" binding:"max=1000"`
}

// ResolveChargebackRequest is the request body for closing a dispute.
type ResolveChargebackRequest struct {
	Outcome            string `json:"outcome" binding:"required,oneof=WON LOST ACCEPTED"`
	ImpactReserve      bool   `json:"impact_reserve"`
	ReserveDebitAmount string `json:"reserve_debit_amount,omitempty"`
	RecoveredAmount    string `json:"recovered_amount,omitempty"`
	FeeRefunded        bool   `json:"fee_refunded"`
	Notes              string `json:"notes" binding:"max=1000"`
}

// AssessmentRequest is the request body for triggering a scoring run.
type AssessmentRequest struct {
	AssessmentType string `json:"assessment_type" binding:"required,oneof=ONBOARDING PERIODIC TRIGGERED MANUAL"`
	AIAssisted     bool   `json:"ai_assisted"`
}
