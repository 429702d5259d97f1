package moderation

import (
	"context"

	"github.com/QuangTung97/crowdfund-admin/model"
	"github.com/QuangTung97/crowdfund-admin/repository"
	"go.uber.org/zap"
)

//go:generate moq -out moderation_mocks_test.go . Recorder Session

// Recorder keeps the audit trail of mutating calls.
// Failing to record never fails the action.
type Recorder interface {
	Record(ctx context.Context, action model.ModerationAction)
}

type nopRecorder struct {
}

func (nopRecorder) Record(context.Context, model.ModerationAction) {}

// AuditLog records actions into the moderation log repository
type AuditLog struct {
	provider repository.Provider
	repo     repository.ModerationLog
	logger   *zap.Logger
}

var _ Recorder = &AuditLog{}

// NewAuditLog ...
func NewAuditLog(provider repository.Provider, repo repository.ModerationLog, logger *zap.Logger) *AuditLog {
	return &AuditLog{
		provider: provider,
		repo:     repo,
		logger:   logger,
	}
}

// Record ...
func (a *AuditLog) Record(ctx context.Context, action model.ModerationAction) {
	err := a.provider.Transact(ctx, func(ctx context.Context) error {
		return a.repo.InsertAction(ctx, action)
	})
	if err != nil {
		a.logger.Error("record moderation action",
			zap.String("campaign_id", action.CampaignID),
			zap.Stringer("action", action.Action),
			zap.Error(err),
		)
	}
}

// History returns the newest actions of a campaign first
func (a *AuditLog) History(ctx context.Context, campaignID string, limit int) ([]model.ModerationAction, error) {
	return a.repo.ListActionsByCampaign(a.provider.Readonly(ctx), campaignID, limit)
}
