package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType classifies a reserve ledger entry.
type EntryType string

const (
	EntryTypeHold            EntryType = "HOLD"
	EntryTypeRelease         EntryType = "RELEASE"
	EntryTypeAdjustment      EntryType = "ADJUSTMENT"
	EntryTypeChargebackDebit EntryType = "CHARGEBACK_DEBIT"
)

// Valid reports whether e is a known entry type.
func (e EntryType) Valid() bool {
	switch e {
	case EntryTypeHold, EntryTypeRelease, EntryTypeAdjustment, EntryTypeChargebackDebit:
		return true
	}
	return false
}

// ReserveTransaction is an immutable, append-only reserve ledger entry.
// Amount is signed: HOLD entries are positive, RELEASE and CHARGEBACK_DEBIT
// negative, ADJUSTMENT either. BalanceAfter snapshots the profile's reserve
// balance as of this entry, so the ledger replays to the current balance.
// The only permitted update is stamping ReleasedAt on a HOLD once settled.
type ReserveTransaction struct {
	ID                  uuid.UUID       `json:"id"`
	ProfileID           uuid.UUID       `json:"profile_id"`
	EntryType           EntryType       `json:"entry_type"`
	Amount              decimal.Decimal `json:"amount"`
	BalanceAfter        decimal.Decimal `json:"balance_after"`
	SourceTransactionID *string         `json:"source_transaction_id,omitempty"`
	ChargebackID        *uuid.UUID      `json:"chargeback_id,omitempty"`
	ScheduledReleaseAt  *time.Time      `json:"scheduled_release_at,omitempty"`
	ReleasedAt          *time.Time      `json:"released_at,omitempty"`
	Description         string          `json:"description"`
	CreatedBy           string          `json:"created_by"`
	CreatedAt           time.Time       `json:"created_at"`
}

// IsDue reports whether this entry is a HOLD whose scheduled release date has
// passed and which has not been released yet.
func (t *ReserveTransaction) IsDue(now time.Time) bool {
	return t.EntryType == EntryTypeHold &&
		t.ReleasedAt == nil &&
		t.ScheduledReleaseAt != nil &&
		!t.ScheduledReleaseAt.After(now)
}

// IsPendingHold reports whether this entry is a HOLD still awaiting release.
func (t *ReserveTransaction) IsPendingHold() bool {
	return t.EntryType == EntryTypeHold && t.ReleasedAt == nil
}

// ReplayBalance folds a sequence of ledger entries, in creation order, into
// the balance they produce. Used to verify the ledger invariant: the result
// must equal the profile's current ReserveBalance.
func ReplayBalance(entries []ReserveTransaction) decimal.Decimal {
	balance := decimal.Zero
	for i := range entries {
		balance = balance.Add(entries[i].Amount)
	}
	return balance
}
