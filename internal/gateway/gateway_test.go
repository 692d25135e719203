package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-gin-event-wizard/internal/cache"
	"go-gin-event-wizard/internal/clock"
	"go-gin-event-wizard/internal/model"
	"go-gin-event-wizard/internal/queue"
	apperrors "go-gin-event-wizard/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func TestGateway_SaveAndLoadDraft(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(cache.NewMemoryDraftStore(), queue.NewMemoryPublishQueue(1, nil), clock.NewFixed(testNow))
	sessionID := uuid.New()

	draft := model.NewEventDraft()
	draft.Title = "Jazz Night Special"
	require.NoError(t, gw.SaveDraft(ctx, sessionID, model.StepTicketing, draft))

	// 保存的是快照，之後修改不影響
	draft.Title = "changed"

	saved, err := gw.LoadDraft(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night Special", saved.Draft.Title)
	assert.Equal(t, model.StepTicketing, saved.Step)
	assert.Equal(t, testNow, saved.SavedAt)

	_, err = gw.LoadDraft(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)
}

func TestGateway_Publish(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	q := queue.NewMemoryPublishQueue(1, nil)
	gw := NewGateway(cache.NewMemoryDraftStore(), q, clock.NewFixed(testNow))
	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	req := &model.PublishRequest{RequestID: uuid.New(), SessionID: uuid.New(), Draft: model.NewEventDraft(), SubmittedAt: testNow}
	require.NoError(t, gw.Publish(ctx, req))

	d := <-msgs
	assert.Equal(t, req.RequestID, d.Data.RequestID)
}

type failingStore struct{ cache.DraftStore }

func (failingStore) Save(context.Context, cache.SavedDraft) error { return errors.New("redis down") }

func TestGateway_SaveDraftWrapsError(t *testing.T) {
	gw := NewGateway(failingStore{}, queue.NewMemoryPublishQueue(1, nil), clock.NewFixed(testNow))
	err := gw.SaveDraft(context.Background(), uuid.New(), model.StepGeneralInfo, model.NewEventDraft())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save draft")
}
