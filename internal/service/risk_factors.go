package service

import (
	"fmt"
	"strings"
	"time"

	"merchant-reserve-engine/internal/core/domain"
)

const baselineScore = 50

// highRiskMCCs are merchant category codes treated as structurally risky:
// travel, gambling, digital goods, nutraceuticals, dating, telemarketing.
var highRiskMCCs = map[string]bool{
	"4411": true, // cruise lines
	"4511": true, // airlines
	"4722": true, // travel agencies
	"5122": true, // drugs, proprietaries
	"5816": true, // digital goods: games
	"5912": true, // drug stores
	"5966": true, // outbound telemarketing
	"5967": true, // inbound telemarketing
	"5968": true, // continuity/subscription merchants
	"5993": true, // cigar stores
	"6051": true, // quasi-cash, crypto
	"7273": true, // dating services
	"7995": true, // gambling
}

// reviewIntervals maps a risk level to the days until the next scheduled
// review.
var reviewIntervals = map[domain.RiskLevel]int{
	domain.RiskLevelLow:       180,
	domain.RiskLevelStandard:  90,
	domain.RiskLevelElevated:  60,
	domain.RiskLevelHigh:      30,
	domain.RiskLevelVeryHigh:  14,
	domain.RiskLevelSuspended: 7,
}

// scoreResult is the outcome of one scoring run over a profile snapshot.
type scoreResult struct {
	Score              int
	Level              domain.RiskLevel
	Factors            domain.Document
	Explanation        string
	Confidence         float64
	RecommendedActions []string
}

// scoreProfile computes the weighted risk score for a profile as of now.
// The computation is deterministic: identical inputs always produce the
// identical score, level, and explanation.
func scoreProfile(p *domain.MerchantRiskProfile, now time.Time) scoreResult {
	score := baselineScore
	var lines []string
	factors := domain.Document{
		"mcc":               p.MCC,
		"transaction_count": p.TransactionCount,
		"chargeback_count":  p.ChargebackCount,
		"total_volume":      p.TotalVolume.String(),
		"refund_amount":     p.RefundAmount.String(),
		"average_ticket":    p.AverageTicket().String(),
	}

	// Industry category.
	if highRiskMCCs[p.MCC] {
		score += 25
		lines = append(lines, fmt.Sprintf("MCC %s is a high-risk category (+25)", p.MCC))
	} else {
		score -= 25
		lines = append(lines, fmt.Sprintf("MCC %s is not a high-risk category (-25)", p.MCC))
	}
	factors["mcc_high_risk"] = highRiskMCCs[p.MCC]

	// Business age.
	age := p.BusinessAgeYears(now)
	factors["business_age_years"] = age
	switch {
	case p.BusinessStartDate == nil:
		score += 15
		lines = append(lines, "business start date unknown, treated as new (+15)")
	case age < 1:
		score += 15
		lines = append(lines, fmt.Sprintf("business younger than one year (%.1fy) (+15)", age))
	case age >= 3:
		score -= 15
		lines = append(lines, fmt.Sprintf("established business (%.1fy) (-15)", age))
	default:
		lines = append(lines, fmt.Sprintf("business age %.1fy, neutral", age))
	}

	// Chargeback ratio, the dominant factor.
	cbRatio := p.ChargebackRatio()
	factors["chargeback_ratio"] = cbRatio
	switch {
	case cbRatio >= 0.020:
		score += 30
		lines = append(lines, fmt.Sprintf("chargeback ratio %.2f%% at or above 2.0%% (+30)", cbRatio*100))
	case cbRatio >= 0.015:
		score += 22
		lines = append(lines, fmt.Sprintf("chargeback ratio %.2f%% at or above 1.5%% (+22)", cbRatio*100))
	case cbRatio >= 0.010:
		score += 15
		lines = append(lines, fmt.Sprintf("chargeback ratio %.2f%% at or above 1.0%% (+15)", cbRatio*100))
	case cbRatio >= 0.008:
		score += 8
		lines = append(lines, fmt.Sprintf("chargeback ratio %.2f%% at or above 0.8%% (+8)", cbRatio*100))
	default:
		lines = append(lines, fmt.Sprintf("chargeback ratio %.2f%% below monitoring thresholds", cbRatio*100))
	}

	// Refund ratio.
	refundRatio := p.RefundRatio()
	factors["refund_ratio"] = refundRatio
	if refundRatio > 0.15 {
		score += 10
		lines = append(lines, fmt.Sprintf("refund ratio %.1f%% above 15%% (+10)", refundRatio*100))
	} else {
		lines = append(lines, fmt.Sprintf("refund ratio %.1f%% within bounds", refundRatio*100))
	}

	// Processing history depth.
	months := p.MonthsActive(now)
	factors["months_active"] = months
	switch {
	case months >= 12 && p.TransactionCount >= 1000:
		score -= 10
		lines = append(lines, fmt.Sprintf("mature processing history (%dm, %d txns) (-10)", months, p.TransactionCount))
	case months < 3 || p.TransactionCount < 100:
		score += 10
		lines = append(lines, fmt.Sprintf("thin processing history (%dm, %d txns) (+10)", months, p.TransactionCount))
	default:
		lines = append(lines, fmt.Sprintf("processing history %dm, %d txns, neutral", months, p.TransactionCount))
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	level := levelFromScore(score)

	return scoreResult{
		Score:              score,
		Level:              level,
		Factors:            factors,
		Explanation:        strings.Join(lines, "; "),
		Confidence:         confidenceFor(p, now),
		RecommendedActions: recommendedActions(level, cbRatio),
	}
}

// levelFromScore maps a clamped score to its risk tier.
func levelFromScore(score int) domain.RiskLevel {
	switch {
	case score >= 85:
		return domain.RiskLevelVeryHigh
	case score >= 70:
		return domain.RiskLevelHigh
	case score >= 55:
		return domain.RiskLevelElevated
	case score >= 40:
		return domain.RiskLevelStandard
	default:
		return domain.RiskLevelLow
	}
}

// confidenceFor estimates how much history backs the score. More processing
// history means more confidence; a brand-new profile bottoms out at 0.5.
func confidenceFor(p *domain.MerchantRiskProfile, now time.Time) float64 {
	confidence := 0.5
	if p.TransactionCount >= 100 {
		confidence += 0.15
	}
	if p.TransactionCount >= 1000 {
		confidence += 0.15
	}
	if p.MonthsActive(now) >= 6 {
		confidence += 0.1
	}
	if p.BusinessStartDate != nil {
		confidence += 0.1
	}
	return confidence
}

// recommendedActions derives the follow-up list for a computed tier.
func recommendedActions(level domain.RiskLevel, cbRatio float64) []string {
	var actions []string
	switch level {
	case domain.RiskLevelVeryHigh:
		actions = append(actions,
			"increase reserve percentage",
			"extend hold period",
			"schedule manual underwriting review",
		)
	case domain.RiskLevelHigh:
		actions = append(actions,
			"increase reserve percentage",
			"schedule manual underwriting review",
		)
	case domain.RiskLevelElevated:
		actions = append(actions, "monitor chargeback trend weekly")
	}
	if cbRatio >= 0.010 {
		actions = append(actions, "enroll merchant in chargeback prevention program")
	}
	if len(actions) == 0 {
		actions = append(actions, "no action required")
	}
	return actions
}

// nextReviewDate returns the next scheduled review for a level, as of now.
func nextReviewDate(level domain.RiskLevel, now time.Time) time.Time {
	days, ok := reviewIntervals[level]
	if !ok {
		days = 90
	}
	return now.AddDate(0, 0, days)
}
