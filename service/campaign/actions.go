package campaign

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/QuangTung97/crowdfund-admin/pkg/contract"
	"github.com/QuangTung97/crowdfund-admin/pkg/units"
	"go.uber.org/zap"
)

// Actions for mutating calls on the contract
type Actions interface {
	ApproveCampaign(ctx context.Context, id string) error
	RejectCampaign(ctx context.Context, id string, reason string) error
	Donate(ctx context.Context, id string, amount string) error
	CreateCampaign(ctx context.Context, input CreateInput) error
}

// CreateInput for creating a new campaign
type CreateInput struct {
	Owner       string
	Title       string
	Description string
	Target      string // in the base currency unit, e.g. "0.5"
	Deadline    time.Time
	Image       string
}

var (
	// ErrInvalidInput is wrapped by every validation error
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCampaignID ...
	ErrInvalidCampaignID = fmt.Errorf("%w: campaign id must be a non-negative integer", ErrInvalidInput)

	// ErrRejectionReasonRequired ...
	ErrRejectionReasonRequired = fmt.Errorf("%w: rejection reason required", ErrInvalidInput)
)

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ActionService ...
type ActionService struct {
	client contract.Client
	opts   serviceOptions

	now func() time.Time
}

var _ Actions = &ActionService{}

// NewActions ...
func NewActions(client contract.Client, options ...Option) *ActionService {
	return &ActionService{
		client: client,
		opts:   newServiceOptions(options...),
		now:    time.Now,
	}
}

// ApproveCampaign ...
func (s *ActionService) ApproveCampaign(ctx context.Context, id string) error {
	index, ok := parseCampaignIndex(id)
	if !ok {
		return ErrInvalidCampaignID
	}
	return s.transact(ctx, contract.Tx{
		Method: contract.MethodApproveCampaign,
		Args:   []interface{}{index},
	})
}

// RejectCampaign ...
func (s *ActionService) RejectCampaign(ctx context.Context, id string, reason string) error {
	index, ok := parseCampaignIndex(id)
	if !ok {
		return ErrInvalidCampaignID
	}
	if strings.TrimSpace(reason) == "" {
		return ErrRejectionReasonRequired
	}
	return s.transact(ctx, contract.Tx{
		Method: contract.MethodRejectCampaign,
		Args:   []interface{}{index, reason},
	})
}

// Donate sends amount (in the base currency unit) to the campaign
func (s *ActionService) Donate(ctx context.Context, id string, amount string) error {
	index, ok := parseCampaignIndex(id)
	if !ok {
		return ErrInvalidCampaignID
	}

	value, err := units.ParseUnits(amount, s.opts.decimals)
	if err != nil {
		return invalidInput("amount: %v", err)
	}
	if value.Sign() <= 0 {
		return invalidInput("amount must be positive")
	}

	return s.transact(ctx, contract.Tx{
		Method: contract.MethodDonateToCampaign,
		Args:   []interface{}{index},
		Value:  value,
	})
}

// CreateCampaign ...
func (s *ActionService) CreateCampaign(ctx context.Context, input CreateInput) error {
	target, err := s.validateCreateInput(input)
	if err != nil {
		return err
	}

	return s.transact(ctx, contract.Tx{
		Method: contract.MethodCreateCampaign,
		Args: []interface{}{
			input.Owner,
			input.Title,
			input.Description,
			target,
			input.Deadline.Unix(),
			input.Image,
		},
	})
}

func (s *ActionService) validateCreateInput(input CreateInput) (*big.Int, error) {
	if strings.TrimSpace(input.Owner) == "" {
		return nil, invalidInput("owner is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, invalidInput("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, invalidInput("description is required")
	}

	target, err := units.ParseUnits(input.Target, s.opts.decimals)
	if err != nil {
		return nil, invalidInput("target: %v", err)
	}
	if target.Sign() <= 0 {
		return nil, invalidInput("target must be positive")
	}

	if !input.Deadline.After(s.now()) {
		return nil, invalidInput("deadline must be in the future")
	}

	if !isImageURL(input.Image) {
		return nil, invalidInput("image must be an http(s) url")
	}
	return target, nil
}

func isImageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func (s *ActionService) transact(ctx context.Context, tx contract.Tx) error {
	receipt, err := s.client.Transact(detach(ctx), tx)
	if err != nil {
		return fmt.Errorf("%s: %w", tx.Method, err)
	}
	s.opts.logger.Info("contract action settled",
		zap.String("method", tx.Method),
		zap.String("tx_hash", receipt.TxHash),
	)
	return nil
}
