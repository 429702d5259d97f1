package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Campaign mirrors one crowdfunding project stored on the contract
type Campaign struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Target and AmountCollected are decimal strings in the base currency unit
	Target          string `json:"target"`
	AmountCollected string `json:"amountCollected"`

	Deadline int64  `json:"deadline"` // unix seconds
	Image    string `json:"image"`

	Status          CampaignStatus `json:"status"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
}

// CampaignStatus ...
type CampaignStatus int

const (
	// CampaignStatusPending ...
	CampaignStatusPending CampaignStatus = 1

	// CampaignStatusApproved ...
	CampaignStatusApproved CampaignStatus = 2

	// CampaignStatusRejected ...
	CampaignStatusRejected CampaignStatus = 3
)

// wire codes used by the contract
const (
	wireStatusPending  int64 = 0
	wireStatusApproved int64 = 1
	wireStatusRejected int64 = 2
)

// CampaignStatusFromWire maps the contract status code to CampaignStatus
func CampaignStatusFromWire(code int64) (CampaignStatus, error) {
	switch code {
	case wireStatusPending:
		return CampaignStatusPending, nil
	case wireStatusApproved:
		return CampaignStatusApproved, nil
	case wireStatusRejected:
		return CampaignStatusRejected, nil
	default:
		return 0, fmt.Errorf("unknown campaign status code: %d", code)
	}
}

// Wire returns the contract status code
func (s CampaignStatus) Wire() int64 {
	switch s {
	case CampaignStatusApproved:
		return wireStatusApproved
	case CampaignStatusRejected:
		return wireStatusRejected
	default:
		return wireStatusPending
	}
}

// Valid ...
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusPending, CampaignStatusApproved, CampaignStatusRejected:
		return true
	default:
		return false
	}
}

// String ...
func (s CampaignStatus) String() string {
	switch s {
	case CampaignStatusPending:
		return "pending"
	case CampaignStatusApproved:
		return "approved"
	case CampaignStatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("CampaignStatus(%d)", int(s))
	}
}

// MarshalText ...
func (s CampaignStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid campaign status: %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText ...
func (s *CampaignStatus) UnmarshalText(data []byte) error {
	switch string(data) {
	case "pending":
		*s = CampaignStatusPending
	case "approved":
		*s = CampaignStatusApproved
	case "rejected":
		*s = CampaignStatusRejected
	default:
		return fmt.Errorf("invalid campaign status: %q", string(data))
	}
	return nil
}

const secondsPerDay = 24 * 60 * 60

// Expired reports whether the deadline is not after nowSeconds
func (c Campaign) Expired(nowSeconds int64) bool {
	return c.Deadline <= nowSeconds
}

// DaysLeft returns the number of whole days until the deadline, rounded, never negative
func (c Campaign) DaysLeft(nowSeconds int64) int64 {
	remaining := c.Deadline - nowSeconds
	if remaining <= 0 {
		return 0
	}
	return int64(math.Round(float64(remaining) / secondsPerDay))
}

// FundedPercent returns amountCollected / target in percent, rounded to an integer
func (c Campaign) FundedPercent() int64 {
	target, err := decimal.NewFromString(c.Target)
	if err != nil || !target.IsPositive() {
		return 0
	}
	collected, err := decimal.NewFromString(c.AmountCollected)
	if err != nil {
		return 0
	}
	return collected.Mul(decimal.NewFromInt(100)).Div(target).Round(0).IntPart()
}
