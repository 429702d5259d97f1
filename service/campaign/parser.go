package campaign

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/QuangTung97/crowdfund-admin/model"
	"github.com/QuangTung97/crowdfund-admin/pkg/contract"
	"github.com/QuangTung97/crowdfund-admin/pkg/units"
)

// positions in the campaign tuple returned by the contract
const (
	fieldOwner = iota
	fieldTitle
	fieldDescription
	fieldTarget
	fieldDeadline
	fieldAmountCollected
	fieldImage
	fieldStatus
	fieldRejectionReason

	requiredFieldCount = fieldStatus + 1
)

// ErrMissingFields when the raw tuple is shorter than a campaign record
var ErrMissingFields = errors.New("campaign record is missing required fields")

// ErrMissingRejectionReason when a rejected campaign has no reason
var ErrMissingRejectionReason = errors.New("rejected campaign has no rejection reason")

// ErrNegativeAmount ...
var ErrNegativeAmount = errors.New("negative amount in campaign record")

// ParseError is returned for a single record that could not be parsed
type ParseError struct {
	Index int64
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse campaign %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("parse campaign %d: field %s: %v", e.Index, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseCampaign converts a raw contract tuple into a Campaign
func ParseCampaign(index int64, raw contract.RawValue, decimals int32) (model.Campaign, error) {
	fail := func(field string, err error) (model.Campaign, error) {
		return model.Campaign{}, &ParseError{Index: index, Field: field, Err: err}
	}

	tuple, err := contract.ToSlice(raw)
	if err != nil {
		return fail("", err)
	}
	if len(tuple) < requiredFieldCount {
		return fail("", ErrMissingFields)
	}

	owner, err := contract.ToString(tuple[fieldOwner])
	if err != nil {
		return fail("owner", err)
	}
	title, err := contract.ToString(tuple[fieldTitle])
	if err != nil {
		return fail("title", err)
	}
	description, err := contract.ToString(tuple[fieldDescription])
	if err != nil {
		return fail("description", err)
	}

	target, err := parseAmount(tuple[fieldTarget], decimals)
	if err != nil {
		return fail("target", err)
	}
	deadline, err := contract.ToInt64(tuple[fieldDeadline])
	if err != nil {
		return fail("deadline", err)
	}
	collected, err := parseAmount(tuple[fieldAmountCollected], decimals)
	if err != nil {
		return fail("amountCollected", err)
	}

	image, err := contract.ToString(tuple[fieldImage])
	if err != nil {
		return fail("image", err)
	}

	code, err := contract.ToInt64(tuple[fieldStatus])
	if err != nil {
		return fail("status", err)
	}
	status, err := model.CampaignStatusFromWire(code)
	if err != nil {
		return fail("status", err)
	}

	var reason string
	if status == model.CampaignStatusRejected {
		if len(tuple) > fieldRejectionReason && tuple[fieldRejectionReason] != nil {
			reason, err = contract.ToString(tuple[fieldRejectionReason])
			if err != nil {
				return fail("rejectionReason", err)
			}
		}
		if reason == "" {
			return fail("rejectionReason", ErrMissingRejectionReason)
		}
	}

	return model.Campaign{
		ID:              strconv.FormatInt(index, 10),
		Owner:           owner,
		Title:           title,
		Description:     description,
		Target:          target,
		AmountCollected: collected,
		Deadline:        deadline,
		Image:           image,
		Status:          status,
		RejectionReason: reason,
	}, nil
}

func parseAmount(v contract.RawValue, decimals int32) (string, error) {
	n, err := contract.ToBigInt(v)
	if err != nil {
		return "", err
	}
	if n.Sign() < 0 {
		return "", ErrNegativeAmount
	}
	return units.FormatUnits(n, decimals), nil
}

// ParseDonations converts the (donors, amounts) pair returned by getDonators
func ParseDonations(raw contract.RawValue, decimals int32) ([]model.Donation, error) {
	pair, err := contract.ToSlice(raw)
	if err != nil {
		return nil, fmt.Errorf("parse donations: %w", err)
	}
	if len(pair) == 0 {
		return nil, nil
	}
	if len(pair) != 2 {
		return nil, fmt.Errorf("parse donations: expected donors and amounts, got %d lists", len(pair))
	}

	donors, err := contract.ToSlice(pair[0])
	if err != nil {
		return nil, fmt.Errorf("parse donations: donors: %w", err)
	}
	amounts, err := contract.ToSlice(pair[1])
	if err != nil {
		return nil, fmt.Errorf("parse donations: amounts: %w", err)
	}
	if len(donors) != len(amounts) {
		return nil, fmt.Errorf("parse donations: %d donors but %d amounts", len(donors), len(amounts))
	}

	result := make([]model.Donation, 0, len(donors))
	for i := range donors {
		donor, err := contract.ToString(donors[i])
		if err != nil {
			return nil, fmt.Errorf("parse donations: donor %d: %w", i, err)
		}
		amount, err := parseAmount(amounts[i], decimals)
		if err != nil {
			return nil, fmt.Errorf("parse donations: amount %d: %w", i, err)
		}
		result = append(result, model.Donation{
			Donor:  donor,
			Amount: amount,
		})
	}
	return result, nil
}
