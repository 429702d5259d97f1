package campaign

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/QuangTung97/crowdfund-admin/model"
	"github.com/QuangTung97/crowdfund-admin/pkg/units"
	"github.com/stretchr/testify/assert"
)

func newBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid big int: " + s)
	}
	return n
}

func newRawCampaign(title string, status int64) []interface{} {
	return []interface{}{
		"0xowner",
		title,
		"description of " + title,
		newBigInt("2000000000000000000"),
		json.Number("1900000000"),
		"500000000000000000",
		"https://img.example.com/a.png",
		json.Number(big.NewInt(status).String()),
	}
}

func TestParseCampaign(t *testing.T) {
	c, err := ParseCampaign(7, newRawCampaign("Water Well", 1), units.DefaultDecimals)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.Campaign{
		ID:              "7",
		Owner:           "0xowner",
		Title:           "Water Well",
		Description:     "description of Water Well",
		Target:          "2.0",
		AmountCollected: "0.5",
		Deadline:        1900000000,
		Image:           "https://img.example.com/a.png",
		Status:          model.CampaignStatusApproved,
	}, c)
}

func TestParseCampaign__Amounts_Round_Trip_Exactly(t *testing.T) {
	raw := newRawCampaign("Exact", 0)
	raw[fieldTarget] = "1000000000000000000"
	raw[fieldAmountCollected] = newBigInt("123456789123456789123456789")

	c, err := ParseCampaign(0, raw, units.DefaultDecimals)
	assert.Equal(t, nil, err)
	assert.Equal(t, "1.0", c.Target)
	assert.Equal(t, "123456789.123456789123456789", c.AmountCollected)

	target, err := units.ParseUnits(c.Target, units.DefaultDecimals)
	assert.Equal(t, nil, err)
	assert.Equal(t, "1000000000000000000", target.String())

	collected, err := units.ParseUnits(c.AmountCollected, units.DefaultDecimals)
	assert.Equal(t, nil, err)
	assert.Equal(t, "123456789123456789123456789", collected.String())
}

func TestParseCampaign__Rejected_With_Reason(t *testing.T) {
	raw := append(newRawCampaign("Scam", 2), "duplicate campaign")

	c, err := ParseCampaign(3, raw, units.DefaultDecimals)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CampaignStatusRejected, c.Status)
	assert.Equal(t, "duplicate campaign", c.RejectionReason)
}

func TestParseCampaign__Reason_Dropped_For_Not_Rejected(t *testing.T) {
	raw := append(newRawCampaign("Pending One", 0), "stale reason")

	c, err := ParseCampaign(3, raw, units.DefaultDecimals)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CampaignStatusPending, c.Status)
	assert.Equal(t, "", c.RejectionReason)
}

func TestParseCampaign__Rejected_Without_Reason(t *testing.T) {
	_, err := ParseCampaign(3, newRawCampaign("Scam", 2), units.DefaultDecimals)
	assert.True(t, errors.Is(err, ErrMissingRejectionReason))
}

func TestParseCampaign__Missing_Fields(t *testing.T) {
	raw := newRawCampaign("Short", 0)[:5]

	_, err := ParseCampaign(4, raw, units.DefaultDecimals)
	assert.True(t, errors.Is(err, ErrMissingFields))

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, int64(4), parseErr.Index)
}

func TestParseCampaign__Invalid_Fields(t *testing.T) {
	table := []struct {
		name  string
		field int
		value interface{}
	}{
		{name: "unknown-status", field: fieldStatus, value: json.Number("5")},
		{name: "float-target", field: fieldTarget, value: 1.5},
		{name: "negative-amount", field: fieldAmountCollected, value: "-1"},
		{name: "missing-owner", field: fieldOwner, value: nil},
		{name: "bad-deadline", field: fieldDeadline, value: "tomorrow"},
	}
	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			raw := newRawCampaign("Broken", 0)
			raw[e.field] = e.value

			_, err := ParseCampaign(1, raw, units.DefaultDecimals)
			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestParseCampaign__Not_A_Tuple(t *testing.T) {
	_, err := ParseCampaign(1, "abc", units.DefaultDecimals)
	assert.Error(t, err)
}

func TestParseDonations(t *testing.T) {
	raw := []interface{}{
		[]interface{}{"0xa", "0xb"},
		[]interface{}{json.Number("1000000000000000000"), "250000000000000000"},
	}

	donations, err := ParseDonations(raw, units.DefaultDecimals)
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.Donation{
		{Donor: "0xa", Amount: "1.0"},
		{Donor: "0xb", Amount: "0.25"},
	}, donations)
}

func TestParseDonations__Empty(t *testing.T) {
	donations, err := ParseDonations([]interface{}{}, units.DefaultDecimals)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(donations))

	donations, err = ParseDonations([]interface{}{[]interface{}{}, []interface{}{}}, units.DefaultDecimals)
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.Donation{}, donations)
}

func TestParseDonations__Length_Mismatch(t *testing.T) {
	raw := []interface{}{
		[]interface{}{"0xa", "0xb"},
		[]interface{}{"1"},
	}
	_, err := ParseDonations(raw, units.DefaultDecimals)
	assert.Error(t, err)
}
