package model

import "time"

// ModerationAction is an audit record for a single mutating call
type ModerationAction struct {
	ID         uint64 `db:"id"`
	CampaignID string `db:"campaign_id"`

	Action  ActionType    `db:"action"`
	Reason  string        `db:"reason"`
	Actor   string        `db:"actor"`
	Outcome ActionOutcome `db:"outcome"`
	Error   string        `db:"error"`

	CreatedAt time.Time `db:"created_at"`
}

// ActionType ...
type ActionType int

const (
	// ActionTypeApprove ...
	ActionTypeApprove ActionType = 1

	// ActionTypeReject ...
	ActionTypeReject ActionType = 2

	// ActionTypeDonate ...
	ActionTypeDonate ActionType = 3

	// ActionTypeCreate ...
	ActionTypeCreate ActionType = 4
)

// String ...
func (t ActionType) String() string {
	switch t {
	case ActionTypeApprove:
		return "approve"
	case ActionTypeReject:
		return "reject"
	case ActionTypeDonate:
		return "donate"
	case ActionTypeCreate:
		return "create"
	default:
		return "unknown"
	}
}

// ActionOutcome ...
type ActionOutcome int

const (
	// ActionOutcomeSucceeded ...
	ActionOutcomeSucceeded ActionOutcome = 1

	// ActionOutcomeFailed ...
	ActionOutcomeFailed ActionOutcome = 2
)

// String ...
func (o ActionOutcome) String() string {
	if o == ActionOutcomeSucceeded {
		return "succeeded"
	}
	return "failed"
}
