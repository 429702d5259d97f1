package repository

import (
	"context"

	"github.com/QuangTung97/crowdfund-admin/model"
)

//go:generate moq -out repository_mocks.go . ModerationLog Provider

// ModerationLog stores the audit trail of mutating calls
type ModerationLog interface {
	InsertAction(ctx context.Context, action model.ModerationAction) error
	ListActionsByCampaign(ctx context.Context, campaignID string, limit int) ([]model.ModerationAction, error)
}

type moderationLogImpl struct {
}

// NewModerationLog ...
func NewModerationLog() ModerationLog {
	return &moderationLogImpl{}
}

// InsertAction must be called inside Transact
func (r *moderationLogImpl) InsertAction(ctx context.Context, action model.ModerationAction) error {
	query := `
INSERT INTO moderation_action (
	campaign_id, action, reason, actor, outcome, error
) VALUES (
	:campaign_id, :action, :reason, :actor, :outcome, :error
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, action)
	return err
}

// ListActionsByCampaign returns the newest actions first
func (r *moderationLogImpl) ListActionsByCampaign(
	ctx context.Context, campaignID string, limit int,
) ([]model.ModerationAction, error) {
	query := `
SELECT id, campaign_id, action, reason, actor, outcome, error, created_at
FROM moderation_action
WHERE campaign_id = ?
ORDER BY id DESC
LIMIT ?
`
	var result []model.ModerationAction
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID, limit)
	return result, err
}
