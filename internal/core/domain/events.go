package domain

import "time"

// Event names published after committed mutations.
const (
	EventReserveHoldCreated  = "reserve.hold.created"
	EventReserveReleased     = "reserve.released"
	EventReserveAdjusted     = "reserve.adjusted"
	EventReserveDebited      = "reserve.chargeback_debited"
	EventProfileCreated      = "profile.created"
	EventChargebackCreated   = "chargeback.created"
	EventChargebackResolved  = "chargeback.resolved"
	EventRiskLevelChanged    = "risk.level_changed"
	EventAssessmentCompleted = "risk.assessment_completed"
)

// Event is an outbound notification emitted after a mutation commits.
// Publishing is best-effort: delivery failure never rolls back the mutation.
type Event struct {
	Name       string    `json:"name"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    Document  `json:"payload,omitempty"`
}
