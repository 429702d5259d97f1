package campaign

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/QuangTung97/crowdfund-admin/model"
	"github.com/QuangTung97/crowdfund-admin/pkg/contract"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -out campaign_mocks.go . IService Actions

// IService reads campaigns and donations from the contract
type IService interface {
	CampaignCount(ctx context.Context) (int64, error)

	GetAllCampaigns(ctx context.Context) ([]model.Campaign, error)
	GetPendingCampaigns(ctx context.Context) ([]model.Campaign, error)
	GetApprovedCampaigns(ctx context.Context) ([]model.Campaign, error)
	GetCampaign(ctx context.Context, id string) (model.Campaign, error)

	GetDonations(ctx context.Context, id string) ([]model.Donation, error)

	// Browse lists approved campaigns that are not expired and match the search term
	Browse(ctx context.Context, term string, now time.Time) ([]model.Campaign, error)
}

// ErrCampaignNotFound ...
var ErrCampaignNotFound = errors.New("campaign not found")

// Service ...
type Service struct {
	client contract.Client
	opts   serviceOptions
}

var _ IService = &Service{}

// NewService ...
func NewService(client contract.Client, options ...Option) *Service {
	return &Service{
		client: client,
		opts:   newServiceOptions(options...),
	}
}

// CampaignCount ...
func (s *Service) CampaignCount(ctx context.Context) (int64, error) {
	ctx = detach(ctx)
	raw, err := s.client.Call(ctx, contract.MethodNumberOfCampaigns)
	if err != nil {
		return 0, fmt.Errorf("fetch campaign count: %w", err)
	}
	count, err := contract.ToInt64(raw)
	if err != nil {
		return 0, fmt.Errorf("fetch campaign count: %w", err)
	}
	if count < 0 {
		return 0, fmt.Errorf("fetch campaign count: negative count %d", count)
	}
	return count, nil
}

// GetAllCampaigns fetches every campaign, in ascending index order
func (s *Service) GetAllCampaigns(ctx context.Context) ([]model.Campaign, error) {
	ctx = detach(ctx)
	count, err := s.CampaignCount(ctx)
	if err != nil {
		return nil, err
	}
	return s.fetchCampaigns(ctx, count)
}

// GetPendingCampaigns ...
func (s *Service) GetPendingCampaigns(ctx context.Context) ([]model.Campaign, error) {
	campaigns, err := s.GetAllCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(campaigns, model.CampaignStatusPending), nil
}

// GetApprovedCampaigns ...
func (s *Service) GetApprovedCampaigns(ctx context.Context) ([]model.Campaign, error) {
	campaigns, err := s.GetAllCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(campaigns, model.CampaignStatusApproved), nil
}

// GetCampaign ...
func (s *Service) GetCampaign(ctx context.Context, id string) (model.Campaign, error) {
	index, ok := parseCampaignIndex(id)
	if !ok {
		return model.Campaign{}, ErrCampaignNotFound
	}

	ctx = detach(ctx)
	count, err := s.CampaignCount(ctx)
	if err != nil {
		return model.Campaign{}, err
	}
	if index >= count {
		return model.Campaign{}, ErrCampaignNotFound
	}
	return s.fetchCampaign(ctx, index)
}

// GetDonations returns an empty list for unknown campaign ids
func (s *Service) GetDonations(ctx context.Context, id string) ([]model.Donation, error) {
	index, ok := parseCampaignIndex(id)
	if !ok {
		return []model.Donation{}, nil
	}

	ctx = detach(ctx)
	count, err := s.CampaignCount(ctx)
	if err != nil {
		return nil, err
	}
	if index >= count {
		return []model.Donation{}, nil
	}

	raw, err := s.client.Call(ctx, contract.MethodGetDonators, index)
	if err != nil {
		return nil, fmt.Errorf("fetch donations of campaign %d: %w", index, err)
	}
	donations, err := ParseDonations(raw, s.opts.decimals)
	if err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []model.Donation{}
	}
	return donations, nil
}

// Browse ...
func (s *Service) Browse(ctx context.Context, term string, now time.Time) ([]model.Campaign, error) {
	campaigns, err := s.GetApprovedCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	campaigns = FilterNotExpired(campaigns, now.Unix())
	return FilterBySearch(campaigns, term), nil
}

func (s *Service) fetchCampaign(ctx context.Context, index int64) (model.Campaign, error) {
	raw, err := s.client.Call(ctx, contract.MethodCampaigns, index)
	if err != nil {
		return model.Campaign{}, fmt.Errorf("fetch campaign %d: %w", index, err)
	}
	return ParseCampaign(index, raw, s.opts.decimals)
}

type fetchResult struct {
	campaign model.Campaign
	err      error
}

func (s *Service) fetchCampaigns(ctx context.Context, count int64) ([]model.Campaign, error) {
	results := make([]fetchResult, count)

	var g errgroup.Group
	g.SetLimit(s.opts.fetchConcurrency)
	for i := int64(0); i < count; i++ {
		index := i
		g.Go(func() error {
			c, err := s.fetchCampaign(ctx, index)
			results[index] = fetchResult{campaign: c, err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch campaigns: %w", err)
	}

	campaigns := make([]model.Campaign, 0, count)
	for index, r := range results {
		if r.err == nil {
			campaigns = append(campaigns, r.campaign)
			continue
		}

		// a cancelled call says nothing about the record itself
		if s.opts.batchPolicy == BatchPolicyStrict || isCancellation(r.err) {
			return nil, r.err
		}
		s.opts.logger.Warn("skip campaign record",
			zap.Int("index", index),
			zap.Error(r.err),
		)
	}
	return campaigns, nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled)
}

// parseCampaignIndex accepts only the canonical decimal form: no sign, no leading zeros
func parseCampaignIndex(id string) (int64, bool) {
	if id == "" || (len(id) > 1 && id[0] == '0') {
		return 0, false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	index, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return index, true
}
