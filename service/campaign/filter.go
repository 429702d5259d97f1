package campaign

import (
	"strings"

	"github.com/QuangTung97/crowdfund-admin/model"
)

// FilterBySearch keeps campaigns whose title contains term, case-insensitively.
// An empty term returns the input as is.
func FilterBySearch(campaigns []model.Campaign, term string) []model.Campaign {
	if term == "" {
		return campaigns
	}

	term = strings.ToLower(term)
	result := make([]model.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if strings.Contains(strings.ToLower(c.Title), term) {
			result = append(result, c)
		}
	}
	return result
}

// FilterNotExpired keeps campaigns whose deadline is after nowSeconds.
// Only for the public listing, moderation must see expired campaigns.
func FilterNotExpired(campaigns []model.Campaign, nowSeconds int64) []model.Campaign {
	result := make([]model.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if !c.Expired(nowSeconds) {
			result = append(result, c)
		}
	}
	return result
}

// FilterByStatus ...
func FilterByStatus(campaigns []model.Campaign, status model.CampaignStatus) []model.Campaign {
	result := make([]model.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Status == status {
			result = append(result, c)
		}
	}
	return result
}
