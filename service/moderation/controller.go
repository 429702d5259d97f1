package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/QuangTung97/crowdfund-admin/model"
	"github.com/QuangTung97/crowdfund-admin/service/campaign"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Session is the identity of the caller as seen by the controller
type Session interface {
	// Actor identifies the signed-in user, empty when nobody is signed in
	Actor(ctx context.Context) string
	CanModerate(ctx context.Context) bool
}

var (
	// ErrRefreshInFlight when a refresh is requested while another one is running
	ErrRefreshInFlight = errors.New("refresh already in flight")

	// ErrNotModerator ...
	ErrNotModerator = errors.New("session is not allowed to moderate")
)

const reasonRequiredMessage = "rejection reason required"

// Paths navigated to after a mutation settles
const (
	PathHome  = "/"
	PathAdmin = "/admin"
)

// Controller drives the moderation workflow. It never patches its view
// locally: every mutation is followed by a full refresh.
type Controller struct {
	query   campaign.IService
	actions campaign.Actions
	session Session
	opts    controllerOptions

	mut        sync.Mutex
	refreshing bool
	rerun      bool
	pendingErr error
	state      State
	view       View
}

// NewController ...
func NewController(
	query campaign.IService, actions campaign.Actions, session Session, options ...Option,
) *Controller {
	opts := defaultControllerOptions()
	for _, fn := range options {
		fn(&opts)
	}

	return &Controller{
		query:   query,
		actions: actions,
		session: session,
		opts:    opts,

		state: State{Kind: StateIdle},
	}
}

// Snapshot ...
func (c *Controller) Snapshot() Snapshot {
	c.mut.Lock()
	defer c.mut.Unlock()

	return Snapshot{
		State: c.state,
		View:  c.view,
	}
}

// State ...
func (c *Controller) State() State {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mut.Lock()
	c.state = s
	c.mut.Unlock()
}

func (c *Controller) setError(msg string) {
	c.setState(State{Kind: StateError, Message: msg})
}

// Refresh re-fetches the count, the pending and the full campaign lists.
// Returns ErrRefreshInFlight without doing anything if a refresh is running.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.refreshAfter(ctx, false, nil)
}

func (c *Controller) tryStartRefresh(afterMutation bool, actionErr error) bool {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.refreshing {
		if afterMutation {
			// the running refresh started before the mutation settled,
			// it fetches once more and reports actionErr
			c.rerun = true
			c.pendingErr = joinErrors(c.pendingErr, actionErr)
			c.state = State{Kind: StateRefreshing}
		}
		return false
	}

	c.refreshing = true
	c.rerun = false
	c.pendingErr = actionErr
	c.state = State{Kind: StateRefreshing}
	return true
}

// refreshAfter runs a refresh. After a mutation, actionErr is the mutation error and it is
// reported even if the refresh itself succeeds.
func (c *Controller) refreshAfter(ctx context.Context, afterMutation bool, actionErr error) error {
	if !c.tryStartRefresh(afterMutation, actionErr) {
		if afterMutation {
			c.opts.logger.Debug("refresh in flight, scheduled one more run")
		} else {
			c.opts.metrics.droppedRefreshes.Inc()
			c.opts.logger.Debug("refresh dropped, another refresh is in flight")
		}
		if actionErr != nil {
			return actionErr
		}
		return ErrRefreshInFlight
	}

	for {
		done, err := c.runRefresh(ctx)
		if done {
			return err
		}
	}
}

// runRefresh fetches once. It returns done = false when a mutation settled
// during the fetch, the result is then stale and the fetch must run again
func (c *Controller) runRefresh(ctx context.Context) (bool, error) {
	start := c.opts.now()
	view, err := c.fetchView(ctx)
	duration := c.opts.now().Sub(start)

	result := "success"
	if err != nil {
		result = "failure"
		err = fmt.Errorf("failed to refresh data: %w", err)
		c.opts.logger.Error("refresh campaigns", zap.Error(err))
	}
	c.opts.metrics.refreshDuration.WithLabelValues(result).Observe(duration.Seconds())

	c.mut.Lock()
	defer c.mut.Unlock()

	if err == nil {
		view.RefreshedAt = start
		c.view = view
	}

	if c.rerun {
		c.rerun = false
		return false, nil
	}
	c.refreshing = false

	finalErr := joinErrors(c.pendingErr, err)
	c.pendingErr = nil

	if finalErr != nil {
		c.state = State{Kind: StateError, Message: errorMessage(finalErr)}
		return true, finalErr
	}
	c.state = State{Kind: StateIdle}
	return true, nil
}

// fetchView runs the three reads concurrently, all of them settle before it returns
func (c *Controller) fetchView(ctx context.Context) (View, error) {
	var view View
	var g errgroup.Group

	g.Go(func() error {
		count, err := c.query.CampaignCount(ctx)
		view.Count = count
		return err
	})
	g.Go(func() error {
		pending, err := c.query.GetPendingCampaigns(ctx)
		view.Pending = pending
		return err
	})
	g.Go(func() error {
		all, err := c.query.GetAllCampaigns(ctx)
		view.All = all
		return err
	})

	if err := g.Wait(); err != nil {
		return View{}, err
	}
	return view, nil
}

type mutation struct {
	state   State
	action  model.ModerationAction
	failure string
	path    string
	call    func() error
}

// mutate runs the contract call, records it, then refreshes unconditionally.
// Invalid input is refused before reaching the contract: no record, no refresh
func (c *Controller) mutate(ctx context.Context, m mutation) error {
	c.setState(m.state)
	err := m.call()

	if errors.Is(err, campaign.ErrInvalidInput) {
		err = fmt.Errorf("%s: %w", m.failure, err)
		c.setError(err.Error())
		return err
	}

	c.settleAction(ctx, m.action, err)
	if err != nil {
		err = fmt.Errorf("%s: %w", m.failure, err)
	}
	return c.finishMutation(ctx, err, m.path)
}

// Approve approves a pending campaign then refreshes
func (c *Controller) Approve(ctx context.Context, id string) error {
	if !c.session.CanModerate(ctx) {
		c.setError(ErrNotModerator.Error())
		return ErrNotModerator
	}

	return c.mutate(ctx, mutation{
		state:   State{Kind: StateApproving, CampaignID: id},
		action:  model.ModerationAction{CampaignID: id, Action: model.ActionTypeApprove},
		failure: "approval failed",
		path:    PathAdmin,
		call: func() error {
			return c.actions.ApproveCampaign(ctx, id)
		},
	})
}

// Reject rejects a pending campaign with a non-blank reason then refreshes
func (c *Controller) Reject(ctx context.Context, id string, reason string) error {
	if strings.TrimSpace(reason) == "" {
		c.setError(reasonRequiredMessage)
		return campaign.ErrRejectionReasonRequired
	}
	if !c.session.CanModerate(ctx) {
		c.setError(ErrNotModerator.Error())
		return ErrNotModerator
	}

	return c.mutate(ctx, mutation{
		state: State{Kind: StateRejecting, CampaignID: id},
		action: model.ModerationAction{
			CampaignID: id,
			Action:     model.ActionTypeReject,
			Reason:     reason,
		},
		failure: "rejection failed",
		path:    PathAdmin,
		call: func() error {
			return c.actions.RejectCampaign(ctx, id, reason)
		},
	})
}

// Donate funds a campaign then refreshes
func (c *Controller) Donate(ctx context.Context, id string, amount string) error {
	return c.mutate(ctx, mutation{
		state:   State{Kind: StateDonating, CampaignID: id},
		action:  model.ModerationAction{CampaignID: id, Action: model.ActionTypeDonate},
		failure: "donation failed",
		call: func() error {
			return c.actions.Donate(ctx, id, amount)
		},
	})
}

// Create creates a new campaign then refreshes, the campaign starts as pending
func (c *Controller) Create(ctx context.Context, input campaign.CreateInput) error {
	return c.mutate(ctx, mutation{
		state:   State{Kind: StateCreating},
		action:  model.ModerationAction{Action: model.ActionTypeCreate},
		failure: "create campaign failed",
		path:    PathHome,
		call: func() error {
			return c.actions.CreateCampaign(ctx, input)
		},
	})
}

func (c *Controller) settleAction(ctx context.Context, action model.ModerationAction, err error) {
	action.Actor = c.session.Actor(ctx)
	action.Outcome = model.ActionOutcomeSucceeded
	if err != nil {
		action.Outcome = model.ActionOutcomeFailed
		action.Error = err.Error()
	}

	c.opts.metrics.actions.WithLabelValues(action.Action.String(), action.Outcome.String()).Inc()
	c.opts.recorder.Record(ctx, action)

	if err != nil {
		c.opts.logger.Warn("contract action failed",
			zap.Stringer("action", action.Action),
			zap.String("campaign_id", action.CampaignID),
			zap.Error(err),
		)
	}
}

// finishMutation runs the follow-up refresh unconditionally, even when the mutation failed
func (c *Controller) finishMutation(ctx context.Context, actionErr error, path string) error {
	err := c.refreshAfter(ctx, true, actionErr)
	if errors.Is(err, ErrRefreshInFlight) {
		err = nil
	}
	if path != "" {
		c.opts.navigator(path)
	}
	return err
}

// joinErrors keeps errors.Is working for both sides, nil inputs are skipped
func joinErrors(a error, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return errors.Join(a, b)
}

func errorMessage(err error) string {
	type multiError interface {
		Unwrap() []error
	}

	joined, ok := err.(multiError)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, 2)
	for _, e := range joined.Unwrap() {
		msgs = append(msgs, errorMessage(e))
	}
	return strings.Join(msgs, "; ")
}
