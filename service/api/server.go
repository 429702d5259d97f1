package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/QuangTung97/crowdfund-admin/model"
	"github.com/QuangTung97/crowdfund-admin/pkg/otellib"
	"github.com/QuangTung97/crowdfund-admin/service/campaign"
	"github.com/QuangTung97/crowdfund-admin/service/identity"
	"github.com/QuangTung97/crowdfund-admin/service/moderation"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

//go:generate moq -out api_mocks_test.go . ActionHistory

// ActionHistory lists the audit trail of a campaign
type ActionHistory interface {
	History(ctx context.Context, campaignID string, limit int) ([]model.ModerationAction, error)
}

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

// ControllerFactory creates a controller owned by a single request
type ControllerFactory func() *moderation.Controller

// Server exposes the campaign query service and the moderation controller as a JSON API.
// The shared controller only serves the admin routes, donations and creations
// run on a controller of their own so they never touch the admin state
type Server struct {
	query         campaign.IService
	controller    *moderation.Controller
	newController ControllerFactory
	identity      *identity.Provider
	history       ActionHistory
	logger        *zap.Logger

	now func() time.Time
}

// NewServer ...
func NewServer(
	query campaign.IService, controller *moderation.Controller, newController ControllerFactory,
	provider *identity.Provider, history ActionHistory, logger *zap.Logger,
) *Server {
	return &Server{
		query:         query,
		controller:    controller,
		newController: newController,
		identity:      provider,
		history:       history,
		logger:        logger,

		now: time.Now,
	}
}

type route struct {
	method  string
	pattern string
	access  accessLevel
	handler handlerFunc
}

type accessLevel int

const (
	accessPublic accessLevel = iota
	accessUser
	accessAdmin
)

type handlerFunc func(ctx context.Context, r *http.Request, params map[string]string) (interface{}, error)

func (s *Server) routes() []route {
	return []route{
		{http.MethodGet, "/api/v1/campaigns", accessPublic, s.browse},
		{http.MethodPost, "/api/v1/campaigns", accessUser, s.createCampaign},
		{http.MethodGet, "/api/v1/campaigns/{id}", accessPublic, s.campaignDetails},
		{http.MethodGet, "/api/v1/campaigns/{id}/donations", accessPublic, s.donations},
		{http.MethodPost, "/api/v1/campaigns/{id}/donations", accessUser, s.donate},

		{http.MethodGet, "/api/v1/admin/dashboard", accessAdmin, s.dashboard},
		{http.MethodPost, "/api/v1/admin/refresh", accessAdmin, s.refresh},
		{http.MethodPost, "/api/v1/admin/campaigns/{id}/approve", accessAdmin, s.approve},
		{http.MethodPost, "/api/v1/admin/campaigns/{id}/reject", accessAdmin, s.reject},
		{http.MethodGet, "/api/v1/admin/campaigns/{id}/actions", accessAdmin, s.actions},
	}
}

// Register adds every route to the mux
func (s *Server) Register(mux *runtime.ServeMux) error {
	for _, r := range s.routes() {
		if err := mux.HandlePath(r.method, r.pattern, s.wrap(r)); err != nil {
			return err
		}
	}
	return nil
}

// Handler returns the API with the identity middleware applied
func (s *Server) Handler() (http.Handler, error) {
	mux := runtime.NewServeMux()
	if err := s.Register(mux); err != nil {
		return nil, err
	}
	return s.identity.Middleware(mux), nil
}

func (s *Server) wrap(r route) runtime.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request, params map[string]string) {
		logger := s.logger.With(
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
		)
		ctx := otellib.ToContext(req.Context(), logger)

		if r.access != accessPublic {
			if _, err := s.identity.Authorize(ctx, r.access == accessAdmin); err != nil {
				s.writeError(ctx, w, err, nil)
				return
			}
		}

		resp, err := r.handler(ctx, req, params)
		if err != nil {
			s.writeError(ctx, w, err, s.errorState(r, err))
			return
		}
		writeJSON(ctx, w, http.StatusOK, resp)
	}
}

// errorState is the controller state reported along with err:
// the shared one for admin routes, the request's own one otherwise
func (s *Server) errorState(r route, err error) *moderation.State {
	if errors.Is(err, errBadRequest) {
		return nil
	}

	var se *stateError
	if errors.As(err, &se) {
		return &se.state
	}
	if r.access == accessAdmin {
		state := s.controller.State()
		return &state
	}
	return nil
}

func (s *Server) browse(
	ctx context.Context, r *http.Request, _ map[string]string,
) (interface{}, error) {
	term := r.URL.Query().Get("search")
	campaigns, err := s.query.Browse(ctx, term, s.now())
	if err != nil {
		return nil, err
	}
	return campaignListResponse{Campaigns: s.toCampaignViews(campaigns)}, nil
}

func (s *Server) campaignDetails(
	ctx context.Context, _ *http.Request, params map[string]string,
) (interface{}, error) {
	c, err := s.query.GetCampaign(ctx, params["id"])
	if err != nil {
		return nil, err
	}
	donations, err := s.query.GetDonations(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return campaignDetailsResponse{
		Campaign:  s.toCampaignView(c),
		Donations: nonNilDonations(donations),
	}, nil
}

func (s *Server) donations(
	ctx context.Context, _ *http.Request, params map[string]string,
) (interface{}, error) {
	donations, err := s.query.GetDonations(ctx, params["id"])
	if err != nil {
		return nil, err
	}
	return donationListResponse{Donations: nonNilDonations(donations)}, nil
}

func (s *Server) donate(
	ctx context.Context, r *http.Request, params map[string]string,
) (interface{}, error) {
	var req donateRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	ctrl := s.newController()
	if err := ctrl.Donate(ctx, params["id"], req.Amount); err != nil {
		return nil, withState(err, ctrl.State())
	}
	return ctrl.State(), nil
}

func (s *Server) createCampaign(
	ctx context.Context, r *http.Request, _ map[string]string,
) (interface{}, error) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	ctrl := s.newController()
	err = ctrl.Create(ctx, campaign.CreateInput{
		Owner:       req.Owner,
		Title:       req.Title,
		Description: req.Description,
		Target:      req.Target,
		Deadline:    deadline,
		Image:       req.Image,
	})
	if err != nil {
		return nil, withState(err, ctrl.State())
	}
	return ctrl.State(), nil
}

// dashboard refreshes on every view, a refresh already running is reused
func (s *Server) dashboard(
	ctx context.Context, _ *http.Request, _ map[string]string,
) (interface{}, error) {
	err := s.controller.Refresh(ctx)
	if err != nil && !errors.Is(err, moderation.ErrRefreshInFlight) {
		otellib.Extract(ctx).Warn("dashboard refresh", zap.Error(err))
	}
	return s.toDashboard(s.controller.Snapshot()), nil
}

func (s *Server) refresh(
	ctx context.Context, _ *http.Request, _ map[string]string,
) (interface{}, error) {
	if err := s.controller.Refresh(ctx); err != nil {
		return nil, err
	}
	return s.toDashboard(s.controller.Snapshot()), nil
}

func (s *Server) approve(
	ctx context.Context, _ *http.Request, params map[string]string,
) (interface{}, error) {
	if err := s.controller.Approve(ctx, params["id"]); err != nil {
		return nil, err
	}
	return s.toDashboard(s.controller.Snapshot()), nil
}

func (s *Server) reject(
	ctx context.Context, r *http.Request, params map[string]string,
) (interface{}, error) {
	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	if err := s.controller.Reject(ctx, params["id"], req.Reason); err != nil {
		return nil, err
	}
	return s.toDashboard(s.controller.Snapshot()), nil
}

func (s *Server) actions(
	ctx context.Context, r *http.Request, params map[string]string,
) (interface{}, error) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, badRequest("limit must be a positive integer")
		}
		if n > maxHistoryLimit {
			n = maxHistoryLimit
		}
		limit = n
	}

	actions, err := s.history.History(ctx, params["id"], limit)
	if err != nil {
		return nil, err
	}

	result := make([]actionView, 0, len(actions))
	for _, a := range actions {
		result = append(result, toActionView(a))
	}
	return actionListResponse{Actions: result}, nil
}

func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, badRequest("deadline is required")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, badRequest("deadline must be a date (YYYY-MM-DD) or RFC3339 time")
	}
	return t, nil
}

func nonNilDonations(donations []model.Donation) []model.Donation {
	if donations == nil {
		return []model.Donation{}
	}
	return donations
}
