package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-gin-event-wizard/internal/model"
	apperrors "go-gin-event-wizard/pkg/app_errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var savedAt = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func testSavedDraft(t *testing.T) (SavedDraft, string) {
	t.Helper()
	d := model.NewEventDraft()
	d.Title = "Jazz Night Special"
	d.Category = "Music"
	draftJSON, err := json.Marshal(d)
	require.NoError(t, err)
	return SavedDraft{
		SessionID: uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"),
		Step:      model.StepTicketing,
		Draft:     d,
		SavedAt:   savedAt,
	}, string(draftJSON)
}

func TestRedisDraftStore_Save(t *testing.T) {
	ctx := context.Background()
	saved, draftJSON := testSavedDraft(t)
	key := "draft:" + saved.SessionID.String()

	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedisDraftStore(db, time.Hour)

		mock.ExpectHSet(key, "draft", draftJSON, "step", 4, "saved_at", savedAt.Format(time.RFC3339Nano)).SetVal(3)
		mock.ExpectExpire(key, time.Hour).SetVal(true)

		require.NoError(t, store.Save(ctx, saved))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed - hset error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedisDraftStore(db, time.Hour)

		mock.ExpectHSet(key, "draft", draftJSON, "step", 4, "saved_at", savedAt.Format(time.RFC3339Nano)).SetErr(errors.New("redis down"))

		err := store.Save(ctx, saved)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis down")
	})
}

func TestRedisDraftStore_Load(t *testing.T) {
	ctx := context.Background()
	saved, draftJSON := testSavedDraft(t)
	key := "draft:" + saved.SessionID.String()

	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedisDraftStore(db, time.Hour)

		mock.ExpectHGetAll(key).SetVal(map[string]string{
			"draft":    draftJSON,
			"step":     "4",
			"saved_at": savedAt.Format(time.RFC3339Nano),
		})

		got, err := store.Load(ctx, saved.SessionID)
		require.NoError(t, err)
		assert.Equal(t, model.StepTicketing, got.Step)
		assert.Equal(t, "Jazz Night Special", got.Draft.Title)
		assert.True(t, savedAt.Equal(got.SavedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed - not found", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedisDraftStore(db, time.Hour)

		mock.ExpectHGetAll(key).SetVal(map[string]string{})

		_, err := store.Load(ctx, saved.SessionID)
		assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)
	})

	t.Run("Failed - corrupted step", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedisDraftStore(db, time.Hour)

		mock.ExpectHGetAll(key).SetVal(map[string]string{
			"draft":    draftJSON,
			"step":     "four",
			"saved_at": savedAt.Format(time.RFC3339Nano),
		})

		_, err := store.Load(ctx, saved.SessionID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid step")
	})
}

func TestRedisDraftStore_Delete(t *testing.T) {
	ctx := context.Background()
	saved, _ := testSavedDraft(t)
	db, mock := redismock.NewClientMock()
	store := NewRedisDraftStore(db, 0)

	mock.ExpectDel("draft:" + saved.SessionID.String()).SetVal(1)

	require.NoError(t, store.Delete(ctx, saved.SessionID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryDraftStore(t *testing.T) {
	ctx := context.Background()
	saved, _ := testSavedDraft(t)
	store := NewMemoryDraftStore()

	_, err := store.Load(ctx, saved.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)

	require.NoError(t, store.Save(ctx, saved))
	saved.Draft.Title = "mutated after save"

	got, err := store.Load(ctx, saved.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night Special", got.Draft.Title)
	assert.Equal(t, model.StepTicketing, got.Step)

	require.NoError(t, store.Delete(ctx, saved.SessionID))
	_, err = store.Load(ctx, saved.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)
}
