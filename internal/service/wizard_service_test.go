package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-gin-event-wizard/config"
	"go-gin-event-wizard/internal/gateway/mocks"
	"go-gin-event-wizard/internal/metrics"
	"go-gin-event-wizard/internal/model"
	"go-gin-event-wizard/internal/notify"
	apperrors "go-gin-event-wizard/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func startAtLastStep(t *testing.T, svc WizardService) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	state, err := svc.Start(ctx)
	require.NoError(t, err)
	_, err = svc.GoTo(ctx, state.SessionID, model.LastStep)
	require.NoError(t, err)
	return state.SessionID
}

func TestWizardService_Start(t *testing.T) {
	env := newTestEnv(t)

	state, err := env.svc.Start(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, state.SessionID)
	assert.Equal(t, model.StepGeneralInfo, state.Step)
	assert.Equal(t, 16, state.Progress)
	assert.Len(t, state.Steps, model.TotalSteps)
	assert.False(t, state.CanPublish)
	require.Len(t, state.Draft.TicketTypes, 1)
	assert.Equal(t, model.DefaultTierName, state.Draft.TicketTypes[0].Name)
	assert.Equal(t, testStart, state.CreatedAt)
}

func TestWizardService_SessionNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := env.svc.Get(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	_, err = env.svc.Next(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	_, err = env.svc.Publish(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	assert.ErrorIs(t, env.svc.Discard(ctx, id), apperrors.ErrSessionNotFound)
}

func TestWizardService_UpdateField(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state, _ := env.svc.Start(ctx)
	id := state.SessionID

	t.Run("Success", func(t *testing.T) {
		env.clock.Advance(time.Minute)
		got, err := env.svc.UpdateField(ctx, id, model.FieldTitle, "Live Music Festival")
		require.NoError(t, err)
		assert.Equal(t, "Live Music Festival", got.Draft.Title)
		assert.Equal(t, testStart.Add(time.Minute), got.UpdatedAt)
	})

	t.Run("Unknown field leaves draft unchanged", func(t *testing.T) {
		_, err := env.svc.UpdateField(ctx, id, "venue_name", "x")
		assert.ErrorIs(t, err, apperrors.ErrUnknownField)

		got, err := env.svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Live Music Festival", got.Draft.Title)
	})

	t.Run("Wrong value type", func(t *testing.T) {
		_, err := env.svc.UpdateField(ctx, id, model.FieldAmenities, 42)
		assert.ErrorIs(t, err, apperrors.ErrInvalidValue)
	})
}

func TestWizardService_TicketTiers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state, _ := env.svc.Start(ctx)
	id := state.SessionID

	state, err := env.svc.AddTicketTier(ctx, id)
	require.NoError(t, err)
	require.Len(t, state.Draft.TicketTypes, 2)

	state, err = env.svc.UpdateTicketTier(ctx, id, 1, model.TierFieldName, "VIP")
	require.NoError(t, err)
	assert.Equal(t, "VIP", state.Draft.TicketTypes[1].Name)

	// 越界的 index 不做事，也不回錯誤
	state, err = env.svc.UpdateTicketTier(ctx, id, 5, model.TierFieldName, "nope")
	require.NoError(t, err)
	require.Len(t, state.Draft.TicketTypes, 2)
	assert.Equal(t, "VIP", state.Draft.TicketTypes[1].Name)

	_, err = env.svc.UpdateTicketTier(ctx, id, 1, model.TierField("color"), "red")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	state, err = env.svc.RemoveTicketTier(ctx, id, 7)
	require.NoError(t, err)
	require.Len(t, state.Draft.TicketTypes, 2)

	state, err = env.svc.RemoveTicketTier(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, state.Draft.TicketTypes, 1)
	assert.Equal(t, "VIP", state.Draft.TicketTypes[0].Name)

	// 至少保留一個票種，移除最後一個時原狀態返回
	before := testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("remove_tier", metrics.ResultRejected))
	state, err = env.svc.RemoveTicketTier(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, state.Draft.TicketTypes, 1)
	assert.Equal(t, "VIP", state.Draft.TicketTypes[0].Name)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("remove_tier", metrics.ResultRejected)))
}

func TestWizardService_ToggleAmenity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state, _ := env.svc.Start(ctx)

	state, err := env.svc.ToggleAmenity(ctx, state.SessionID, "Parking")
	require.NoError(t, err)
	assert.Equal(t, []string{"Parking"}, state.Draft.Amenities)

	state, err = env.svc.ToggleAmenity(ctx, state.SessionID, "Parking")
	require.NoError(t, err)
	assert.Empty(t, state.Draft.Amenities)
}

func TestWizardService_Navigation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state, _ := env.svc.Start(ctx)
	id := state.SessionID

	state, _ = env.svc.Previous(ctx, id)
	assert.Equal(t, model.StepGeneralInfo, state.Step)

	for i := 0; i < 10; i++ {
		state, _ = env.svc.Next(ctx, id)
	}
	assert.Equal(t, model.StepFinalSettings, state.Step)
	assert.Equal(t, 100, state.Progress)
	assert.True(t, state.CanPublish)

	state, _ = env.svc.GoTo(ctx, id, model.Step(0))
	assert.Equal(t, model.StepGeneralInfo, state.Step)
	state, _ = env.svc.GoTo(ctx, id, model.StepDateTime)
	assert.Equal(t, model.StepDateTime, state.Step)
	assert.Equal(t, model.StepStatusCompleted, state.Steps[1].Status)
	assert.Equal(t, model.StepStatusCurrent, state.Steps[2].Status)
	assert.Equal(t, model.StepStatusUpcoming, state.Steps[3].Status)
}

func TestWizardService_PreviewAndValidate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state, _ := env.svc.Start(ctx)
	id := state.SessionID

	preview, err := env.svc.Preview(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Untitled event", preview.Title)

	report, err := env.svc.Validate(ctx, id)
	require.NoError(t, err)
	assert.False(t, report.Valid)
	assert.Nil(t, report.Validated)
	assert.NotEmpty(t, report.Errors)
}

func TestWizardService_SaveDraft(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()
		state, _ := env.svc.Start(ctx)
		env.svc.UpdateField(ctx, state.SessionID, model.FieldTitle, "Jazz Night Special")
		env.svc.Next(ctx, state.SessionID)

		_, err := env.svc.SaveDraft(ctx, state.SessionID)
		require.NoError(t, err)

		saved, err := env.drafts.Load(ctx, state.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "Jazz Night Special", saved.Draft.Title)
		assert.Equal(t, model.StepLocation, saved.Step)

		notes, err := env.svc.Notifications(ctx, state.SessionID)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "Draft saved!", notes[0].Title)
	})

	t.Run("Gateway failure still reports success", func(t *testing.T) {
		gw := mocks.NewMockSubmissionGateway(t)
		sink := &recordingSink{}
		svc := newServiceWithGateway(gw, sink)
		ctx := context.Background()
		state, _ := svc.Start(ctx)

		gw.EXPECT().SaveDraft(mock.Anything, state.SessionID, model.StepGeneralInfo, mock.Anything).
			Return(errors.New("redis down")).Once()

		_, err := svc.SaveDraft(ctx, state.SessionID)
		require.NoError(t, err)
		assert.Equal(t, 1, sink.count(notify.KindToast))
	})
}

func TestWizardService_Publish(t *testing.T) {
	t.Run("Only on the final step", func(t *testing.T) {
		gw := mocks.NewMockSubmissionGateway(t)
		svc := newServiceWithGateway(gw, &recordingSink{})
		ctx := context.Background()
		state, _ := svc.Start(ctx)

		_, err := svc.Publish(ctx, state.SessionID)
		assert.ErrorIs(t, err, apperrors.ErrPublishNotAvailable)
		gw.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Success then redirect", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()
		id := startAtLastStep(t, env.svc)
		env.svc.UpdateField(ctx, id, model.FieldTitle, "Summer Concert Series")

		receipt, err := env.svc.Publish(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, DashboardPath, receipt.RedirectTo)
		assert.Equal(t, receipt.SubmittedAt.Add(env.wizards.PublishRedirectDelay), receipt.RedirectAt)

		msgs, err := env.queue.Subscribe(ctx)
		require.NoError(t, err)
		d := <-msgs
		assert.Equal(t, receipt.RequestID, d.Data.RequestID)
		assert.Equal(t, "Summer Concert Series", d.Data.Draft.Title)

		state, _ := env.svc.Get(ctx, id)
		assert.True(t, state.PublishPending)

		_, err = env.svc.Publish(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrPublishPending)

		require.Eventually(t, func() bool {
			return env.sink.count(notify.KindNavigation) == 1
		}, time.Second, 5*time.Millisecond)

		notes, _ := env.svc.Notifications(ctx, id)
		require.Len(t, notes, 2)
		assert.Equal(t, "Event published! 🎉", notes[0].Title)
		assert.Equal(t, notify.KindNavigation, notes[1].Kind)
		assert.Equal(t, DashboardPath, notes[1].Target)

		state, _ = env.svc.Get(ctx, id)
		assert.True(t, state.Published)
		assert.False(t, state.PublishPending)

		_, err = env.svc.Publish(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyPublished)

		// 發佈後草稿鎖定，不能再修改
		_, err = env.svc.UpdateField(ctx, id, model.FieldTitle, "Changed afterwards")
		assert.ErrorIs(t, err, apperrors.ErrAlreadyPublished)
		_, err = env.svc.AddTicketTier(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyPublished)
		_, err = env.svc.Previous(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyPublished)
		state, _ = env.svc.Get(ctx, id)
		assert.Equal(t, "Summer Concert Series", state.Draft.Title)
	})

	t.Run("Discard cancels pending redirect", func(t *testing.T) {
		env := newTestEnv(t, func(c *config.WizardConfig) { c.PublishRedirectDelay = 50 * time.Millisecond })
		ctx := context.Background()
		id := startAtLastStep(t, env.svc)

		_, err := env.svc.Publish(ctx, id)
		require.NoError(t, err)
		require.NoError(t, env.svc.Discard(ctx, id))

		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, 0, env.sink.count(notify.KindNavigation))
		_, err = env.svc.Get(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})

	t.Run("Gateway failure", func(t *testing.T) {
		gw := mocks.NewMockSubmissionGateway(t)
		sink := &recordingSink{}
		svc := newServiceWithGateway(gw, sink)
		ctx := context.Background()
		id := startAtLastStep(t, svc)

		gw.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(req *model.PublishRequest) bool {
			return req.SessionID == id
		})).Return(errors.New("queue full")).Once()

		_, err := svc.Publish(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrInternalServerError)

		state, _ := svc.Get(ctx, id)
		assert.False(t, state.PublishPending)
		notes, _ := svc.Notifications(ctx, id)
		require.Len(t, notes, 1)
		assert.Equal(t, "Publish failed", notes[0].Title)
	})

	t.Run("Strict mode rejects invalid drafts", func(t *testing.T) {
		env := newTestEnv(t, func(c *config.WizardConfig) { c.RequireValidPublish = true })
		ctx := context.Background()
		id := startAtLastStep(t, env.svc)

		_, err := env.svc.Publish(ctx, id)
		require.ErrorIs(t, err, apperrors.ErrValidation)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.NotEmpty(t, verr.Errors)
	})
}

func TestWizardService_Resume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state, _ := env.svc.Start(ctx)
	id := state.SessionID
	env.svc.UpdateField(ctx, id, model.FieldTitle, "Jazz Night Special")
	env.svc.GoTo(ctx, id, model.StepTicketing)
	_, err := env.svc.SaveDraft(ctx, id)
	require.NoError(t, err)
	require.NoError(t, env.svc.Discard(ctx, id))

	resumed, err := env.svc.Resume(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, resumed.SessionID)
	assert.Equal(t, model.StepTicketing, resumed.Step)
	assert.Equal(t, "Jazz Night Special", resumed.Draft.Title)

	_, err = env.svc.Resume(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)
}

func TestWizardService_ExpireIdle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	idle, _ := env.svc.Start(ctx)
	active, _ := env.svc.Start(ctx)

	env.clock.Advance(env.wizards.SessionTTL / 2)
	env.svc.Next(ctx, active.SessionID)
	env.clock.Advance(env.wizards.SessionTTL/2 + time.Second)

	assert.Equal(t, 1, env.svc.ExpireIdle(ctx))

	_, err := env.svc.Get(ctx, idle.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	_, err = env.svc.Get(ctx, active.SessionID)
	assert.NoError(t, err)
}

// 同一 session 的並發操作逐一套用，不會遺失更新
func TestWizardService_ConcurrentEditsOnOneSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state, _ := env.svc.Start(ctx)

	const editors = 50
	var wg sync.WaitGroup
	for i := 0; i < editors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.svc.AddTicketTier(ctx, state.SessionID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := env.svc.Get(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Len(t, state.Draft.TicketTypes, editors+1)
}
