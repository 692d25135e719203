package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go-gin-event-wizard/internal/model"
	apperrors "go-gin-event-wizard/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SavedDraft 「儲存草稿」時保存的快照
type SavedDraft struct {
	SessionID uuid.UUID         `json:"session_id"`
	Step      model.Step        `json:"step"`
	Draft     *model.EventDraft `json:"draft"`
	SavedAt   time.Time         `json:"saved_at"`
}

type DraftStore interface {
	// 保存：覆寫同一 session 的草稿
	Save(ctx context.Context, saved SavedDraft) error
	// 讀取：不存在時回傳 ErrDraftNotFound
	Load(ctx context.Context, sessionID uuid.UUID) (SavedDraft, error)
	// 刪除：不存在時不報錯
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

type RedisDraftStoreImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) DraftStore {
	return &RedisDraftStoreImpl{
		client: client,
		ttl:    ttl,
	}
}

// 草稿 key
func (s *RedisDraftStoreImpl) getDraftKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("draft:%s", sessionID)
}

func (s *RedisDraftStoreImpl) Save(ctx context.Context, saved SavedDraft) error {
	draftJSON, err := json.Marshal(saved.Draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	key := s.getDraftKey(saved.SessionID)
	err = s.client.HSet(ctx, key,
		"draft", string(draftJSON),
		"step", int(saved.Step),
		"saved_at", saved.SavedAt.UTC().Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return fmt.Errorf("hset draft: %w", err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			return fmt.Errorf("expire draft: %w", err)
		}
	}
	return nil
}

func (s *RedisDraftStoreImpl) Load(ctx context.Context, sessionID uuid.UUID) (SavedDraft, error) {
	result, err := s.client.HGetAll(ctx, s.getDraftKey(sessionID)).Result()
	if err != nil {
		return SavedDraft{}, err
	}

	// 檢查 key 是否存在
	if len(result) == 0 {
		return SavedDraft{}, apperrors.ErrDraftNotFound
	}

	var draft model.EventDraft
	if err := json.Unmarshal([]byte(result["draft"]), &draft); err != nil {
		return SavedDraft{}, fmt.Errorf("invalid draft: %v", err)
	}

	step, err := strconv.Atoi(result["step"])
	if err != nil {
		return SavedDraft{}, fmt.Errorf("invalid step: %v", err)
	}

	savedAt, err := time.Parse(time.RFC3339Nano, result["saved_at"])
	if err != nil {
		return SavedDraft{}, fmt.Errorf("invalid saved_at: %v", err)
	}

	return SavedDraft{
		SessionID: sessionID,
		Step:      model.Step(step),
		Draft:     &draft,
		SavedAt:   savedAt,
	}, nil
}

func (s *RedisDraftStoreImpl) Delete(ctx context.Context, sessionID uuid.UUID) error {
	return s.client.Del(ctx, s.getDraftKey(sessionID)).Err()
}

// MemoryDraftStoreImpl 單機用的草稿保存
type MemoryDraftStoreImpl struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]SavedDraft
}

func NewMemoryDraftStore() DraftStore {
	return &MemoryDraftStoreImpl{drafts: make(map[uuid.UUID]SavedDraft)}
}

func (s *MemoryDraftStoreImpl) Save(_ context.Context, saved SavedDraft) error {
	saved.Draft = saved.Draft.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[saved.SessionID] = saved
	return nil
}

func (s *MemoryDraftStoreImpl) Load(_ context.Context, sessionID uuid.UUID) (SavedDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	saved, ok := s.drafts[sessionID]
	if !ok {
		return SavedDraft{}, apperrors.ErrDraftNotFound
	}
	saved.Draft = saved.Draft.Clone()
	return saved, nil
}

func (s *MemoryDraftStoreImpl) Delete(_ context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}
