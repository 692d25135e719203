package queue

import (
	"context"
	"time"

	"go-gin-event-wizard/internal/model"
	"go-gin-event-wizard/pkg/logger"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

type Delivery struct {
	Data *model.PublishRequest
	Ack  func()
	Nack func(requeue bool)
}

type PublishQueue interface {
	// 發送發佈請求到隊列
	PublishEvent(ctx context.Context, req *model.PublishRequest) error
	// 訂閱發佈隊列
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// envelope 隊列內的消息，帶著自己的重試次數與退避狀態
type envelope struct {
	req     *model.PublishRequest
	retries int
	backoff retry.Backoff
}

type MemoryPublishQueueImpl struct {
	// 使用 Go channel 模擬 MQ 隊列
	ch     chan *envelope
	policy RetryPolicy
	log    *zap.Logger
}

// NewMemoryPublishQueue policy 可為 nil，則使用預設重試次數與間隔
func NewMemoryPublishQueue(bufferSize int, policy *RetryPolicy) PublishQueue {
	p := defaultRetryPolicy()
	if policy != nil {
		p = policy.withDefaults()
	}
	return &MemoryPublishQueueImpl{
		ch:     make(chan *envelope, bufferSize),
		policy: p,
		log:    logger.WithComponent("mq"),
	}
}

func (q *MemoryPublishQueueImpl) PublishEvent(ctx context.Context, req *model.PublishRequest) error {
	select {
	case q.ch <- &envelope{req: req}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryPublishQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case env, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: env.req,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.retryLater(env)
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// retryLater 等退避時間到了再放回隊列；超過重試上限就丟棄
func (q *MemoryPublishQueueImpl) retryLater(env *envelope) {
	if env.backoff == nil {
		env.backoff = q.policy.Backoff()
	}
	delay, stop := env.backoff.Next()
	if stop || q.policy.Exhausted(env.retries) {
		q.log.Warn("discard poison message",
			zap.String("request_id", env.req.RequestID.String()),
			zap.Int("retries", env.retries),
			zap.Int("max_retries", q.policy.MaxRetryCount),
		)
		return
	}
	env.retries++

	time.AfterFunc(delay, func() {
		// 非阻塞重回隊列，滿了就丟棄
		select {
		case q.ch <- env:
		default:
			q.log.Warn("queue full, drop retried message", zap.String("request_id", env.req.RequestID.String()))
		}
	})
}
