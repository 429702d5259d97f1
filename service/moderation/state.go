package moderation

import (
	"fmt"
	"time"

	"github.com/QuangTung97/crowdfund-admin/model"
)

// StateKind ...
type StateKind int

const (
	// StateIdle ready for the next action
	StateIdle StateKind = 1

	// StateRefreshing a full refresh is in flight
	StateRefreshing StateKind = 2

	// StateApproving an approve call is in flight
	StateApproving StateKind = 3

	// StateRejecting a reject call is in flight
	StateRejecting StateKind = 4

	// StateDonating a donate call is in flight
	StateDonating StateKind = 5

	// StateCreating a create call is in flight
	StateCreating StateKind = 6

	// StateError the last action failed, advisory only: every action can still be started
	StateError StateKind = 7
)

// String ...
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateRefreshing:
		return "refreshing"
	case StateApproving:
		return "approving"
	case StateRejecting:
		return "rejecting"
	case StateDonating:
		return "donating"
	case StateCreating:
		return "creating"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("StateKind(%d)", int(k))
	}
}

// MarshalText ...
func (k StateKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText ...
func (k *StateKind) UnmarshalText(data []byte) error {
	for kind := StateIdle; kind <= StateError; kind++ {
		if kind.String() == string(data) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("invalid state kind: %q", string(data))
}

// State of the controller
type State struct {
	Kind       StateKind `json:"kind"`
	CampaignID string    `json:"campaignId,omitempty"`
	Message    string    `json:"message,omitempty"`
}

// View is the data derived by the last successful refresh
type View struct {
	Count       int64            `json:"count"`
	Pending     []model.Campaign `json:"pending"`
	All         []model.Campaign `json:"all"`
	RefreshedAt time.Time        `json:"refreshedAt"`
}

// Snapshot ...
type Snapshot struct {
	State State `json:"state"`
	View  View  `json:"view"`
}
