// Package gateway 是 wizard 對外的提交出口：儲存草稿與發佈。
package gateway

import (
	"context"
	"fmt"

	"go-gin-event-wizard/internal/cache"
	"go-gin-event-wizard/internal/clock"
	"go-gin-event-wizard/internal/model"
	"go-gin-event-wizard/internal/queue"

	"github.com/google/uuid"
)

type SubmissionGateway interface {
	// 儲存草稿：覆寫同一 session 先前的草稿
	SaveDraft(ctx context.Context, sessionID uuid.UUID, step model.Step, draft *model.EventDraft) error
	// 讀回草稿，不存在時回傳 ErrDraftNotFound
	LoadDraft(ctx context.Context, sessionID uuid.UUID) (cache.SavedDraft, error)
	// 發佈：送進發佈隊列，由 worker 寫入 listing
	Publish(ctx context.Context, req *model.PublishRequest) error
}

type GatewayImpl struct {
	drafts cache.DraftStore
	queue  queue.PublishQueue
	clock  clock.Clock
}

func NewGateway(drafts cache.DraftStore, publishQueue queue.PublishQueue, clk clock.Clock) SubmissionGateway {
	return &GatewayImpl{
		drafts: drafts,
		queue:  publishQueue,
		clock:  clk,
	}
}

func (g *GatewayImpl) SaveDraft(ctx context.Context, sessionID uuid.UUID, step model.Step, draft *model.EventDraft) error {
	err := g.drafts.Save(ctx, cache.SavedDraft{
		SessionID: sessionID,
		Step:      step,
		Draft:     draft.Clone(),
		SavedAt:   g.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (g *GatewayImpl) LoadDraft(ctx context.Context, sessionID uuid.UUID) (cache.SavedDraft, error) {
	return g.drafts.Load(ctx, sessionID)
}

func (g *GatewayImpl) Publish(ctx context.Context, req *model.PublishRequest) error {
	if err := g.queue.PublishEvent(ctx, req); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
