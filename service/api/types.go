package api

import (
	"time"

	"github.com/QuangTung97/crowdfund-admin/model"
	"github.com/QuangTung97/crowdfund-admin/service/moderation"
)

type campaignView struct {
	model.Campaign

	DaysLeft      int64 `json:"daysLeft"`
	FundedPercent int64 `json:"fundedPercent"`
}

type campaignListResponse struct {
	Campaigns []campaignView `json:"campaigns"`
}

type campaignDetailsResponse struct {
	Campaign  campaignView     `json:"campaign"`
	Donations []model.Donation `json:"donations"`
}

type donationListResponse struct {
	Donations []model.Donation `json:"donations"`
}

type dashboardResponse struct {
	State       moderation.State `json:"state"`
	Count       int64            `json:"count"`
	Pending     []campaignView   `json:"pending"`
	All         []campaignView   `json:"all"`
	RefreshedAt *time.Time       `json:"refreshedAt,omitempty"`
}

type actionView struct {
	ID         uint64    `json:"id"`
	CampaignID string    `json:"campaignId"`
	Action     string    `json:"action"`
	Reason     string    `json:"reason,omitempty"`
	Actor      string    `json:"actor"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type actionListResponse struct {
	Actions []actionView `json:"actions"`
}

type donateRequest struct {
	Amount string `json:"amount"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type createCampaignRequest struct {
	Owner       string `json:"owner"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Deadline    string `json:"deadline"`
	Image       string `json:"image"`
}

type errorResponse struct {
	Error string            `json:"error"`
	State *moderation.State `json:"state,omitempty"`
}

func (s *Server) toCampaignView(c model.Campaign) campaignView {
	return campaignView{
		Campaign:      c,
		DaysLeft:      c.DaysLeft(s.now().Unix()),
		FundedPercent: c.FundedPercent(),
	}
}

func (s *Server) toCampaignViews(campaigns []model.Campaign) []campaignView {
	result := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		result = append(result, s.toCampaignView(c))
	}
	return result
}

func (s *Server) toDashboard(snapshot moderation.Snapshot) dashboardResponse {
	resp := dashboardResponse{
		State:   snapshot.State,
		Count:   snapshot.View.Count,
		Pending: s.toCampaignViews(snapshot.View.Pending),
		All:     s.toCampaignViews(snapshot.View.All),
	}
	if !snapshot.View.RefreshedAt.IsZero() {
		refreshedAt := snapshot.View.RefreshedAt
		resp.RefreshedAt = &refreshedAt
	}
	return resp
}

func toActionView(a model.ModerationAction) actionView {
	return actionView{
		ID:         a.ID,
		CampaignID: a.CampaignID,
		Action:     a.Action.String(),
		Reason:     a.Reason,
		Actor:      a.Actor,
		Outcome:    a.Outcome.String(),
		Error:      a.Error,
		CreatedAt:  a.CreatedAt,
	}
}
