package moderation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/QuangTung97/crowdfund-admin/model"
	"github.com/QuangTung97/crowdfund-admin/service/campaign"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

type controllerTest struct {
	query    *campaign.IServiceMock
	actions  *campaign.ActionsMock
	session  *SessionMock
	recorder *RecorderMock
	ctrl     *Controller

	mut       sync.Mutex
	sequence  []string
	navigated []string

	all      []model.Campaign
	fetchErr error
	now      time.Time
}

func newControllerTest() *controllerTest {
	c := &controllerTest{
		query:    &campaign.IServiceMock{},
		actions:  &campaign.ActionsMock{},
		session:  &SessionMock{},
		recorder: &RecorderMock{},
		now:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		all: []model.Campaign{
			{ID: "0", Title: "pending 1", Status: model.CampaignStatusPending},
			{ID: "1", Title: "approved 1", Status: model.CampaignStatusApproved},
			{ID: "2", Title: "pending 2", Status: model.CampaignStatusPending},
			{ID: "3", Title: "rejected 1", Status: model.CampaignStatusRejected, RejectionReason: "spam"},
		},
	}

	c.ctrl = NewController(c.query, c.actions, c.session,
		WithRecorder(c.recorder),
		WithNavigator(func(path string) {
			c.mut.Lock()
			c.navigated = append(c.navigated, path)
			c.mut.Unlock()
		}),
		WithNowFunc(func() time.Time { return c.now }),
	)

	c.stubQuery()
	c.stubActions()

	c.session.ActorFunc = func(ctx context.Context) string {
		return "admin@example.com"
	}
	c.session.CanModerateFunc = func(ctx context.Context) bool {
		return true
	}
	c.recorder.RecordFunc = func(ctx context.Context, action model.ModerationAction) {}
	return c
}

func (c *controllerTest) record(step string) {
	c.mut.Lock()
	c.sequence = append(c.sequence, step)
	c.mut.Unlock()
}

func (c *controllerTest) getFetchErr() error {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.fetchErr
}

func (c *controllerTest) campaigns() []model.Campaign {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.all
}

func (c *controllerTest) setStatus(index int, status model.CampaignStatus) {
	c.mut.Lock()
	defer c.mut.Unlock()

	all := append([]model.Campaign(nil), c.all...)
	all[index].Status = status
	c.all = all
}

func (c *controllerTest) stubQuery() {
	c.query.CampaignCountFunc = func(ctx context.Context) (int64, error) {
		c.record("count")
		if err := c.getFetchErr(); err != nil {
			return 0, err
		}
		return int64(len(c.campaigns())), nil
	}
	c.query.GetPendingCampaignsFunc = func(ctx context.Context) ([]model.Campaign, error) {
		c.record("pending")
		if err := c.getFetchErr(); err != nil {
			return nil, err
		}
		return campaign.FilterByStatus(c.campaigns(), model.CampaignStatusPending), nil
	}
	c.query.GetAllCampaignsFunc = func(ctx context.Context) ([]model.Campaign, error) {
		c.record("all")
		if err := c.getFetchErr(); err != nil {
			return nil, err
		}
		return c.campaigns(), nil
	}
}

func (c *controllerTest) stubActions() {
	c.actions.ApproveCampaignFunc = func(ctx context.Context, id string) error {
		c.record("approve")
		return nil
	}
	c.actions.RejectCampaignFunc = func(ctx context.Context, id string, reason string) error {
		c.record("reject")
		return nil
	}
	c.actions.DonateFunc = func(ctx context.Context, id string, amount string) error {
		c.record("donate")
		return nil
	}
	c.actions.CreateCampaignFunc = func(ctx context.Context, input campaign.CreateInput) error {
		c.record("create")
		return nil
	}
}

func (c *controllerTest) fetchCalls() int {
	return len(c.query.CampaignCountCalls()) +
		len(c.query.GetPendingCampaignsCalls()) +
		len(c.query.GetAllCampaignsCalls())
}

func (c *controllerTest) indexOf(step string) int {
	c.mut.Lock()
	defer c.mut.Unlock()
	for i, s := range c.sequence {
		if s == step {
			return i
		}
	}
	return -1
}

func TestController_Initial_State(t *testing.T) {
	c := newControllerTest()
	assert.Equal(t, Snapshot{State: State{Kind: StateIdle}}, c.ctrl.Snapshot())
}

func TestController_Refresh(t *testing.T) {
	c := newControllerTest()

	err := c.ctrl.Refresh(newContext())
	assert.Equal(t, nil, err)

	assert.Equal(t, Snapshot{
		State: State{Kind: StateIdle},
		View: View{
			Count:       4,
			Pending:     []model.Campaign{c.all[0], c.all[2]},
			All:         c.all,
			RefreshedAt: c.now,
		},
	}, c.ctrl.Snapshot())

	assert.Equal(t, 1, len(c.query.CampaignCountCalls()))
	assert.Equal(t, 1, len(c.query.GetPendingCampaignsCalls()))
	assert.Equal(t, 1, len(c.query.GetAllCampaignsCalls()))
}

func TestController_Refresh__Failure_Then_Retry(t *testing.T) {
	c := newControllerTest()
	c.fetchErr = errors.New("rpc down")

	err := c.ctrl.Refresh(newContext())
	assert.True(t, errors.Is(err, c.fetchErr))
	assert.Equal(t, State{
		Kind:    StateError,
		Message: "failed to refresh data: rpc down",
	}, c.ctrl.State())
	assert.Equal(t, View{}, c.ctrl.Snapshot().View)

	// all three reads settled before reporting
	assert.Equal(t, 3, c.fetchCalls())

	c.fetchErr = nil
	err = c.ctrl.Refresh(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, State{Kind: StateIdle}, c.ctrl.State())
	assert.Equal(t, int64(4), c.ctrl.Snapshot().View.Count)
}

func TestController_Refresh__Failure_Keeps_Previous_View(t *testing.T) {
	c := newControllerTest()

	err := c.ctrl.Refresh(newContext())
	assert.Equal(t, nil, err)

	c.fetchErr = errors.New("rpc down")
	err = c.ctrl.Refresh(newContext())
	assert.Error(t, err)

	snapshot := c.ctrl.Snapshot()
	assert.Equal(t, StateError, snapshot.State.Kind)
	assert.Equal(t, int64(4), snapshot.View.Count)
	assert.Equal(t, c.all, snapshot.View.All)
}

func TestController_Refresh__Second_Call_While_In_Flight_Is_Dropped(t *testing.T) {
	c := newControllerTest()

	started := make(chan struct{})
	release := make(chan struct{})
	c.query.CampaignCountFunc = func(ctx context.Context) (int64, error) {
		close(started)
		<-release
		return 4, nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		firstErr = c.ctrl.Refresh(newContext())
	}()

	<-started
	assert.Equal(t, State{Kind: StateRefreshing}, c.ctrl.State())

	err := c.ctrl.Refresh(newContext())
	assert.Equal(t, ErrRefreshInFlight, err)
	assert.Equal(t, State{Kind: StateRefreshing}, c.ctrl.State())

	close(release)
	wg.Wait()

	assert.Equal(t, nil, firstErr)
	assert.Equal(t, State{Kind: StateIdle}, c.ctrl.State())
	assert.Equal(t, 1, len(c.query.CampaignCountCalls()))
	assert.Equal(t, 1, len(c.query.GetPendingCampaignsCalls()))
	assert.Equal(t, 1, len(c.query.GetAllCampaignsCalls()))
}

func TestController_Approve(t *testing.T) {
	c := newControllerTest()

	err := c.ctrl.Approve(newContext(), "2")
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, len(c.actions.ApproveCampaignCalls()))
	assert.Equal(t, "2", c.actions.ApproveCampaignCalls()[0].Id)

	assert.Equal(t, State{Kind: StateIdle}, c.ctrl.State())
	assert.Equal(t, 3, c.fetchCalls())
	assert.Equal(t, []string{PathAdmin}, c.navigated)

	assert.Equal(t, 1, len(c.recorder.RecordCalls()))
	assert.Equal(t, model.ModerationAction{
		CampaignID: "2",
		Action:     model.ActionTypeApprove,
		Actor:      "admin@example.com",
		Outcome:    model.ActionOutcomeSucceeded,
	}, c.recorder.RecordCalls()[0].Action)
}

func TestController_Approve__Refresh_Starts_After_Call_Settles(t *testing.T) {
	c := newControllerTest()

	err := c.ctrl.Approve(newContext(), "0")
	assert.Equal(t, nil, err)

	approveIndex := c.indexOf("approve")
	assert.Equal(t, 0, approveIndex)
	assert.True(t, c.indexOf("count") > approveIndex)
	assert.True(t, c.indexOf("pending") > approveIndex)
	assert.True(t, c.indexOf("all") > approveIndex)
}

func TestController_Approve__In_Flight_State(t *testing.T) {
	c := newControllerTest()

	var inFlight State
	c.actions.ApproveCampaignFunc = func(ctx context.Context, id string) error {
		inFlight = c.ctrl.State()
		return nil
	}

	err := c.ctrl.Approve(newContext(), "2")
	assert.Equal(t, nil, err)
	assert.Equal(t, State{Kind: StateApproving, CampaignID: "2"}, inFlight)
}

func TestController_Approve__Contract_Failure_Still_Refreshes(t *testing.T) {
	c := newControllerTest()
	revert := errors.New("execution reverted")
	c.actions.ApproveCampaignFunc = func(ctx context.Context, id string) error {
		return revert
	}

	err := c.ctrl.Approve(newContext(), "2")
	assert.True(t, errors.Is(err, revert))

	assert.Equal(t, State{
		Kind:    StateError,
		Message: "approval failed: execution reverted",
	}, c.ctrl.State())

	assert.Equal(t, 3, c.fetchCalls())
	assert.Equal(t, int64(4), c.ctrl.Snapshot().View.Count)

	assert.Equal(t, 1, len(c.recorder.RecordCalls()))
	action := c.recorder.RecordCalls()[0].Action
	assert.Equal(t, model.ActionOutcomeFailed, action.Outcome)
	assert.Equal(t, "execution reverted", action.Error)
}

func TestController_Approve__Refresh_Failure_Is_Error(t *testing.T) {
	c := newControllerTest()
	c.actions.ApproveCampaignFunc = func(ctx context.Context, id string) error {
		c.mut.Lock()
		c.fetchErr = errors.New("node unavailable")
		c.mut.Unlock()
		return nil
	}

	err := c.ctrl.Approve(newContext(), "2")
	assert.Error(t, err)
	assert.Equal(t, State{
		Kind:    StateError,
		Message: "failed to refresh data: node unavailable",
	}, c.ctrl.State())
}

func TestController_Approve__Both_Fail(t *testing.T) {
	c := newControllerTest()
	revert := errors.New("execution reverted")
	c.fetchErr = errors.New("node unavailable")
	c.actions.ApproveCampaignFunc = func(ctx context.Context, id string) error {
		return revert
	}

	err := c.ctrl.Approve(newContext(), "2")
	assert.True(t, errors.Is(err, revert))
	assert.True(t, errors.Is(err, c.fetchErr))
	assert.Equal(t, State{
		Kind:    StateError,
		Message: "approval failed: execution reverted; failed to refresh data: node unavailable",
	}, c.ctrl.State())
}

func TestController_Approve__Not_Moderator(t *testing.T) {
	c := newControllerTest()
	c.session.CanModerateFunc = func(ctx context.Context) bool {
		return false
	}

	err := c.ctrl.Approve(newContext(), "2")
	assert.Equal(t, ErrNotModerator, err)
	assert.Equal(t, StateError, c.ctrl.State().Kind)
	assert.Equal(t, 0, len(c.actions.ApproveCampaignCalls()))
	assert.Equal(t, 0, c.fetchCalls())
}

func TestController_Reject(t *testing.T) {
	c := newControllerTest()

	err := c.ctrl.Reject(newContext(), "0", "misleading")
	assert.Equal(t, nil, err)

	calls := c.actions.RejectCampaignCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, "0", calls[0].Id)
	assert.Equal(t, "misleading", calls[0].Reason)

	assert.Equal(t, State{Kind: StateIdle}, c.ctrl.State())
	assert.Equal(t, 3, c.fetchCalls())
	assert.True(t, c.indexOf("all") > c.indexOf("reject"))
	assert.Equal(t, []string{PathAdmin}, c.navigated)

	assert.Equal(t, "misleading", c.recorder.RecordCalls()[0].Action.Reason)
}

func TestController_Reject__Blank_Reason_Refused_Locally(t *testing.T) {
	c := newControllerTest()

	for _, reason := range []string{"", "   "} {
		err := c.ctrl.Reject(newContext(), "0", reason)
		assert.Equal(t, campaign.ErrRejectionReasonRequired, err)
		assert.Equal(t, State{
			Kind:    StateError,
			Message: "rejection reason required",
		}, c.ctrl.State())
	}

	assert.Equal(t, 0, len(c.actions.RejectCampaignCalls()))
	assert.Equal(t, 0, c.fetchCalls())
	assert.Equal(t, 0, len(c.recorder.RecordCalls()))
	assert.Equal(t, 0, len(c.navigated))
}

func TestController_Reject__Contract_Failure(t *testing.T) {
	c := newControllerTest()
	c.actions.RejectCampaignFunc = func(ctx context.Context, id string, reason string) error {
		return errors.New("not pending")
	}

	err := c.ctrl.Reject(newContext(), "1", "duplicate")
	assert.Error(t, err)
	assert.Equal(t, State{
		Kind:    StateError,
		Message: "rejection failed: not pending",
	}, c.ctrl.State())
	assert.Equal(t, 3, c.fetchCalls())
}

func TestController_Donate(t *testing.T) {
	c := newControllerTest()

	err := c.ctrl.Donate(newContext(), "1", "0.5")
	assert.Equal(t, nil, err)

	calls := c.actions.DonateCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, "0.5", calls[0].Amount)

	assert.Equal(t, State{Kind: StateIdle}, c.ctrl.State())
	assert.Equal(t, 3, c.fetchCalls())
	assert.Equal(t, 0, len(c.navigated))
}

func TestController_Donate__Does_Not_Require_Moderator(t *testing.T) {
	c := newControllerTest()
	c.session.CanModerateFunc = func(ctx context.Context) bool {
		return false
	}

	err := c.ctrl.Donate(newContext(), "1", "0.5")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(c.actions.DonateCalls()))
}

func TestController_Create(t *testing.T) {
	c := newControllerTest()

	input := campaign.CreateInput{Title: "New One"}
	err := c.ctrl.Create(newContext(), input)
	assert.Equal(t, nil, err)

	assert.Equal(t, input, c.actions.CreateCampaignCalls()[0].Input)
	assert.Equal(t, []string{PathHome}, c.navigated)
	assert.Equal(t, model.ActionTypeCreate, c.recorder.RecordCalls()[0].Action.Action)
}

func TestController_Mutation_While_Refresh_In_Flight(t *testing.T) {
	c := newControllerTest()

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	c.query.GetAllCampaignsFunc = func(ctx context.Context) ([]model.Campaign, error) {
		once.Do(func() { close(started) })
		<-release
		return c.all, nil
	}

	revert := errors.New("execution reverted")
	c.actions.ApproveCampaignFunc = func(ctx context.Context, id string) error {
		return revert
	}

	var wg sync.WaitGroup
	wg.Add(1)
	var refreshErr error
	go func() {
		defer wg.Done()
		refreshErr = c.ctrl.Refresh(newContext())
	}()
	<-started

	err := c.ctrl.Approve(newContext(), "2")
	assert.True(t, errors.Is(err, revert))
	assert.Equal(t, State{Kind: StateRefreshing}, c.ctrl.State())

	close(release)
	wg.Wait()

	assert.True(t, errors.Is(refreshErr, revert))
	assert.Equal(t, State{
		Kind:    StateError,
		Message: "approval failed: execution reverted",
	}, c.ctrl.State())

	// the running refresh fetched once more after the mutation settled
	assert.Equal(t, 2, len(c.query.GetAllCampaignsCalls()))
}

func TestController_Approve__While_Refresh_In_Flight_Refetches(t *testing.T) {
	c := newControllerTest()

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	c.query.GetPendingCampaignsFunc = func(ctx context.Context) ([]model.Campaign, error) {
		pending := campaign.FilterByStatus(c.campaigns(), model.CampaignStatusPending)
		once.Do(func() {
			close(started)
			<-release
		})
		return pending, nil
	}
	c.actions.ApproveCampaignFunc = func(ctx context.Context, id string) error {
		c.setStatus(2, model.CampaignStatusApproved)
		return nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	var refreshErr error
	go func() {
		defer wg.Done()
		refreshErr = c.ctrl.Refresh(newContext())
	}()
	<-started

	err := c.ctrl.Approve(newContext(), "2")
	assert.Equal(t, nil, err)
	assert.Equal(t, State{Kind: StateRefreshing}, c.ctrl.State())

	close(release)
	wg.Wait()

	assert.Equal(t, nil, refreshErr)

	snapshot := c.ctrl.Snapshot()
	assert.Equal(t, State{Kind: StateIdle}, snapshot.State)
	assert.Equal(t, 1, len(snapshot.View.Pending))
	assert.Equal(t, "0", snapshot.View.Pending[0].ID)
	assert.Equal(t, model.CampaignStatusApproved, snapshot.View.All[2].Status)

	assert.Equal(t, 2, len(c.query.GetPendingCampaignsCalls()))
	assert.Equal(t, 2, len(c.query.GetAllCampaignsCalls()))
}

func TestController_Refresh__Repeated_While_In_Flight_No_Rerun(t *testing.T) {
	c := newControllerTest()

	started := make(chan struct{})
	release := make(chan struct{})
	c.query.CampaignCountFunc = func(ctx context.Context) (int64, error) {
		close(started)
		<-release
		return 4, nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.ctrl.Refresh(newContext())
	}()
	<-started

	for i := 0; i < 3; i++ {
		assert.Equal(t, ErrRefreshInFlight, c.ctrl.Refresh(newContext()))
	}

	close(release)
	wg.Wait()

	assert.Equal(t, 1, len(c.query.CampaignCountCalls()))
	assert.Equal(t, 1, len(c.query.GetAllCampaignsCalls()))
}

func TestController_Invalid_Input_Refused_Locally(t *testing.T) {
	invalid := func(msg string) error {
		return fmt.Errorf("%w: %s", campaign.ErrInvalidInput, msg)
	}

	table := []struct {
		name    string
		stub    func(c *controllerTest)
		run     func(c *controllerTest) error
		message string
	}{
		{
			name: "donate-bad-amount",
			stub: func(c *controllerTest) {
				c.actions.DonateFunc = func(ctx context.Context, id string, amount string) error {
					return invalid("amount must be positive")
				}
			},
			run: func(c *controllerTest) error {
				return c.ctrl.Donate(newContext(), "1", "-1")
			},
			message: "donation failed: invalid input: amount must be positive",
		},
		{
			name: "approve-bad-id",
			stub: func(c *controllerTest) {
				c.actions.ApproveCampaignFunc = func(ctx context.Context, id string) error {
					return campaign.ErrInvalidCampaignID
				}
			},
			run: func(c *controllerTest) error {
				return c.ctrl.Approve(newContext(), "x")
			},
			message: "approval failed: " + campaign.ErrInvalidCampaignID.Error(),
		},
		{
			name: "create-bad-input",
			stub: func(c *controllerTest) {
				c.actions.CreateCampaignFunc = func(ctx context.Context, input campaign.CreateInput) error {
					return invalid("title is required")
				}
			},
			run: func(c *controllerTest) error {
				return c.ctrl.Create(newContext(), campaign.CreateInput{})
			},
			message: "create campaign failed: invalid input: title is required",
		},
	}

	for _, e := range table {
		tc := e
		t.Run(tc.name, func(t *testing.T) {
			c := newControllerTest()
			tc.stub(c)

			err := tc.run(c)
			assert.True(t, errors.Is(err, campaign.ErrInvalidInput))
			assert.Equal(t, State{Kind: StateError, Message: tc.message}, c.ctrl.State())

			assert.Equal(t, 0, c.fetchCalls())
			assert.Equal(t, 0, len(c.recorder.RecordCalls()))
			assert.Equal(t, 0, len(c.navigated))
		})
	}
}
