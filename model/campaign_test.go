package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignStatus_Wire(t *testing.T) {
	for _, s := range []CampaignStatus{
		CampaignStatusPending, CampaignStatusApproved, CampaignStatusRejected,
	} {
		back, err := CampaignStatusFromWire(s.Wire())
		assert.Equal(t, nil, err)
		assert.Equal(t, s, back)
	}

	assert.Equal(t, int64(0), CampaignStatusPending.Wire())
	assert.Equal(t, int64(1), CampaignStatusApproved.Wire())
	assert.Equal(t, int64(2), CampaignStatusRejected.Wire())
}

func TestCampaignStatusFromWire__Unknown_Code(t *testing.T) {
	s, err := CampaignStatusFromWire(3)
	assert.Equal(t, CampaignStatus(0), s)
	assert.Equal(t, "unknown campaign status code: 3", err.Error())
	assert.False(t, s.Valid())
}

func TestCampaign_JSON_Status(t *testing.T) {
	data, err := json.Marshal(Campaign{
		ID:     "1",
		Status: CampaignStatusRejected,
	})
	assert.Equal(t, nil, err)
	assert.Contains(t, string(data), `"status":"rejected"`)

	var c Campaign
	err = json.Unmarshal([]byte(`{"status":"approved"}`), &c)
	assert.Equal(t, nil, err)
	assert.Equal(t, CampaignStatusApproved, c.Status)

	err = json.Unmarshal([]byte(`{"status":"Approved"}`), &c)
	assert.Error(t, err)
}

func TestCampaign_Expired(t *testing.T) {
	c := Campaign{Deadline: 1000}
	assert.False(t, c.Expired(999))
	assert.True(t, c.Expired(1000))
	assert.True(t, c.Expired(1001))
}

func TestCampaign_DaysLeft(t *testing.T) {
	table := []struct {
		name     string
		deadline int64
		expected int64
	}{
		{name: "passed", deadline: -secondsPerDay, expected: 0},
		{name: "now", deadline: 0, expected: 0},
		{name: "less-than-half-day", deadline: secondsPerDay / 3, expected: 0},
		{name: "more-than-half-day", deadline: secondsPerDay * 2 / 3, expected: 1},
		{name: "ten-days", deadline: 10 * secondsPerDay, expected: 10},
	}

	for _, e := range table {
		tc := e
		t.Run(tc.name, func(t *testing.T) {
			c := Campaign{Deadline: tc.deadline}
			assert.Equal(t, tc.expected, c.DaysLeft(0))
		})
	}
}

func TestCampaign_FundedPercent(t *testing.T) {
	assert.Equal(t, int64(50), Campaign{Target: "2.0", AmountCollected: "1.0"}.FundedPercent())
	assert.Equal(t, int64(33), Campaign{Target: "3.0", AmountCollected: "1.0"}.FundedPercent())
	assert.Equal(t, int64(67), Campaign{Target: "3.0", AmountCollected: "2.0"}.FundedPercent())
	assert.Equal(t, int64(150), Campaign{Target: "1.0", AmountCollected: "1.5"}.FundedPercent())
	assert.Equal(t, int64(0), Campaign{Target: "0.0", AmountCollected: "1.0"}.FundedPercent())
	assert.Equal(t, int64(0), Campaign{Target: "", AmountCollected: "1.0"}.FundedPercent())
}
