package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiskLevel is the ordinal risk tier assigned to a merchant.
type RiskLevel string

const (
	RiskLevelLow       RiskLevel = "LOW"
	RiskLevelStandard  RiskLevel = "STANDARD"
	RiskLevelElevated  RiskLevel = "ELEVATED"
	RiskLevelHigh      RiskLevel = "HIGH"
	RiskLevelVeryHigh  RiskLevel = "VERY_HIGH"
	RiskLevelSuspended RiskLevel = "SUSPENDED"
)

var riskLevelRank = map[RiskLevel]int{
	RiskLevelLow:       0,
	RiskLevelStandard:  1,
	RiskLevelElevated:  2,
	RiskLevelHigh:      3,
	RiskLevelVeryHigh:  4,
	RiskLevelSuspended: 5,
}

// Rank returns the ordinal position of the level (LOW=0 .. SUSPENDED=5),
// or -1 for an unknown level.
func (l RiskLevel) Rank() int {
	if r, ok := riskLevelRank[l]; ok {
		return r
	}
	return -1
}

// Valid reports whether l is a known risk level.
func (l RiskLevel) Valid() bool {
	return l.Rank() >= 0
}

// AtLeast reports whether l is at or above the given level in the ordering.
func (l RiskLevel) AtLeast(other RiskLevel) bool {
	return l.Rank() >= other.Rank()
}

// MerchantRiskProfile is the per-merchant risk and reserve aggregate.
// Reserve fields are mutated exclusively through ledger operations;
// ReserveBalance must always equal the signed sum of the merchant's
// reserve_transaction entries.
type MerchantRiskProfile struct {
	ID                     uuid.UUID       `json:"id"`
	MerchantName           string          `json:"merchant_name"`
	MCC                    string          `json:"mcc"`
	BusinessStartDate      *time.Time      `json:"business_start_date,omitempty"`
	RiskLevel              RiskLevel       `json:"risk_level"`
	RiskScore              int             `json:"risk_score"` // 0..100
	ReserveBalance         decimal.Decimal `json:"reserve_balance"`
	ReserveHeldTotal       decimal.Decimal `json:"reserve_held_total"`
	ReserveReleasedTotal   decimal.Decimal `json:"reserve_released_total"`
	ChargebackDebitedTotal decimal.Decimal `json:"chargeback_debited_total"`
	TotalVolume            decimal.Decimal `json:"total_volume"` // lifetime processed, minor units
	TransactionCount       int64           `json:"transaction_count"`
	ChargebackCount        int64           `json:"chargeback_count"`
	ChargebackAmount       decimal.Decimal `json:"chargeback_amount"`
	RefundAmount           decimal.Decimal `json:"refund_amount"`
	NextReviewDate         *time.Time      `json:"next_review_date,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// ChargebackRatio returns lifetime chargebacks over transaction count.
// Zero when the merchant has no processing history.
func (p *MerchantRiskProfile) ChargebackRatio() float64 {
	if p.TransactionCount == 0 {
		return 0
	}
	return float64(p.ChargebackCount) / float64(p.TransactionCount)
}

// RefundRatio returns refunded amount over total processed volume.
func (p *MerchantRiskProfile) RefundRatio() float64 {
	if p.TotalVolume.IsZero() {
		return 0
	}
	ratio, _ := p.RefundAmount.Div(p.TotalVolume).Float64()
	return ratio
}

// BusinessAgeYears returns the merchant's age in fractional years as of now,
// or 0 when the start date is unknown.
func (p *MerchantRiskProfile) BusinessAgeYears(now time.Time) float64 {
	if p.BusinessStartDate == nil || p.BusinessStartDate.After(now) {
		return 0
	}
	return now.Sub(*p.BusinessStartDate).Hours() / (24 * 365.25)
}

// MonthsActive returns whole months since the profile was created.
func (p *MerchantRiskProfile) MonthsActive(now time.Time) int {
	if p.CreatedAt.After(now) {
		return 0
	}
	return int(now.Sub(p.CreatedAt).Hours() / (24 * 30))
}

// AverageTicket returns total volume divided by transaction count.
func (p *MerchantRiskProfile) AverageTicket() decimal.Decimal {
	if p.TransactionCount == 0 {
		return decimal.Zero
	}
	return p.TotalVolume.DivRound(decimal.NewFromInt(p.TransactionCount), 2)
}

// IsSuspended reports whether the merchant is suspended. Suspension is a
// status, never a deletion.
func (p *MerchantRiskProfile) IsSuspended() bool {
	return p.RiskLevel == RiskLevelSuspended
}
