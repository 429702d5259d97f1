package contract

import (
	"context"
	"math/big"
)

//go:generate moq -out contract_mocks.go . Client

// Contract method names
const (
	MethodNumberOfCampaigns = "numberOfCampaigns"
	MethodCampaigns         = "campaigns"
	MethodGetDonators       = "getDonators"

	MethodApproveCampaign  = "approveCampaign"
	MethodRejectCampaign   = "rejectCampaign"
	MethodDonateToCampaign = "donateToCampaign"
	MethodCreateCampaign   = "createCampaign"
)

// RawValue is a value as returned by the contract, before parsing.
// Integers are *big.Int, json.Number, integer kinds or decimal strings.
// Tuples and arrays are []interface{}.
type RawValue = interface{}

// Tx for a transacting call
type Tx struct {
	Method string
	Args   []interface{}

	// Value sent with the call in the smallest currency unit, nil for none
	Value *big.Int
}

// Receipt of a settled transacting call
type Receipt struct {
	TxHash string
}

// Client for the remote campaign contract
type Client interface {
	Call(ctx context.Context, method string, args ...interface{}) (RawValue, error)
	Transact(ctx context.Context, tx Tx) (Receipt, error)
}
