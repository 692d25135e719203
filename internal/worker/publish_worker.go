package worker

import (
	"context"
	"errors"

	"go-gin-event-wizard/internal/queue"
	"go-gin-event-wizard/internal/service"
	apperrors "go-gin-event-wizard/pkg/app_errors"
	"go-gin-event-wizard/pkg/logger"

	"go.uber.org/zap"
)

type PublishWorker interface {
	// 訂閱發佈隊列
	Start(ctx context.Context) error
}

type PublishWorkerImpl struct {
	service service.ListingService
	queue   queue.PublishQueue
	log     *zap.Logger
}

func NewPublishWorker(service service.ListingService, queue queue.PublishQueue) PublishWorker {
	return &PublishWorkerImpl{
		service: service,
		queue:   queue,
		log:     logger.WithComponent("publish-worker"),
	}
}

func (w *PublishWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			// 把發佈請求寫成 host 列表上的 listing
			listing, err := w.service.Ingest(ctx, msg.Data)
			switch {
			case err == nil:
				msg.Ack()
				w.log.Debug("publish request ingested", zap.String("event_id", listing.EventID.String()))
			case errors.Is(err, apperrors.ErrInvalidInput):
				// 內容壞掉，重試也不會成功
				w.log.Warn("drop malformed publish request", zap.Error(err))
				msg.Nack(false)
			default:
				// 儲存暫時失敗，重試
				w.log.Error("ingest publish request failed", zap.Error(err))
				msg.Nack(true)
			}
		}
	}()
	return nil
}
