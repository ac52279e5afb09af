package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargebackStatus is the lifecycle state of a disputed transaction.
type ChargebackStatus string

const (
	ChargebackStatusReceived      ChargebackStatus = "RECEIVED"
	ChargebackStatusUnderReview   ChargebackStatus = "UNDER_REVIEW"
	ChargebackStatusRepresentment ChargebackStatus = "REPRESENTMENT"
	ChargebackStatusWon           ChargebackStatus = "WON"
	ChargebackStatusLost          ChargebackStatus = "LOST"
	ChargebackStatusAccepted      ChargebackStatus = "ACCEPTED"
)

// chargebackTransitions encodes the legal state machine:
// RECEIVED -> (UNDER_REVIEW) -> REPRESENTMENT -> {WON | LOST | ACCEPTED}.
// Terminal states have no outgoing edges.
var chargebackTransitions = map[ChargebackStatus][]ChargebackStatus{
	ChargebackStatusReceived: {
		ChargebackStatusUnderReview,
		ChargebackStatusRepresentment,
		ChargebackStatusWon,
		ChargebackStatusLost,
		ChargebackStatusAccepted,
	},
	ChargebackStatusUnderReview: {
		ChargebackStatusRepresentment,
		ChargebackStatusWon,
		ChargebackStatusLost,
		ChargebackStatusAccepted,
	},
	ChargebackStatusRepresentment: {
		ChargebackStatusWon,
		ChargebackStatusLost,
		ChargebackStatusAccepted,
	},
}

// IsTerminal reports whether the status is final.
func (s ChargebackStatus) IsTerminal() bool {
	return s == ChargebackStatusWon || s == ChargebackStatusLost || s == ChargebackStatusAccepted
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s ChargebackStatus) CanTransitionTo(next ChargebackStatus) bool {
	for _, allowed := range chargebackTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Document is an opaque structured payload (evidence blobs, factor
// snapshots). The engine makes no schema assumptions beyond the keys it
// explicitly reads.
type Document map[string]any

// ChargebackRecord tracks one disputed transaction from receipt to
// resolution. At most one CHARGEBACK_DEBIT ledger entry references it.
type ChargebackRecord struct {
	ID                    uuid.UUID        `json:"id"`
	ExternalID            string           `json:"external_id"` // processor dispute id, unique
	ProfileID             uuid.UUID        `json:"profile_id"`
	Amount                decimal.Decimal  `json:"amount"`
	Fee                   decimal.Decimal  `json:"fee"`
	ReasonCode            string           `json:"reason_code"`
	ReasonDescription     string           `json:"reason_description,omitempty"`
	Status                ChargebackStatus `json:"status"`
	RespondBy             *time.Time       `json:"respond_by,omitempty"`
	RepresentmentEvidence Document         `json:"representment_evidence,omitempty"`
	RepresentmentNotes    string           `json:"representment_notes,omitempty"`
	RepresentedAt         *time.Time       `json:"represented_at,omitempty"`
	RecoveredAmount       decimal.Decimal  `json:"recovered_amount"`
	FeeRefunded           bool             `json:"fee_refunded"`
	ReserveImpacted       bool             `json:"reserve_impacted"`
	ReserveDebitAmount    decimal.Decimal  `json:"reserve_debit_amount"`
	RemainingUnfunded     decimal.Decimal  `json:"remaining_unfunded"`
	ResolutionNotes       string           `json:"resolution_notes,omitempty"`
	ResolvedAt            *time.Time       `json:"resolved_at,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// IsOpen reports whether the dispute still awaits a resolution.
func (c *ChargebackRecord) IsOpen() bool {
	return !c.Status.IsTerminal()
}

// CanRepresent reports whether evidence may still be submitted.
func (c *ChargebackRecord) CanRepresent() bool {
	return c.Status == ChargebackStatusReceived || c.Status == ChargebackStatusUnderReview
}
