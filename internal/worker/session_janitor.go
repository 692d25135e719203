package worker

import (
	"context"
	"time"

	"go-gin-event-wizard/pkg/logger"

	"go.uber.org/zap"
)

type sessionExpirer interface {
	ExpireIdle(ctx context.Context) int
}

// SessionJanitor 定期清掉閒置的 wizard session
type SessionJanitor struct {
	sessions sessionExpirer
	interval time.Duration
	log      *zap.Logger
}

func NewSessionJanitor(sessions sessionExpirer, interval time.Duration) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		log:      logger.WithComponent("janitor"),
	}
}

// Start 阻塞直到 ctx 結束
func (j *SessionJanitor) Start(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.log.Info("session janitor started", zap.Duration("interval", j.interval))

	for {
		select {
		case <-ctx.Done():
			j.log.Info("session janitor stopped")
			return
		case <-ticker.C:
			if n := j.sessions.ExpireIdle(ctx); n > 0 {
				j.log.Debug("idle sessions expired", zap.Int("count", n))
			}
		}
	}
}
