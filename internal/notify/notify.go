// Package notify 是 wizard 對外的通知出口：toast 訊息與導頁指令。
package notify

import (
	"context"
	"sync"
	"time"

	"go-gin-event-wizard/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Kind string

const (
	KindToast      Kind = "toast"
	KindNavigation Kind = "navigation"
)

// Notification 一則短暫通知；導頁指令帶 Target
type Notification struct {
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Target      string    `json:"target,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Sink 接收通知；實作不可阻塞呼叫端
type Sink interface {
	Notify(ctx context.Context, sessionID uuid.UUID, n Notification)
}

// Outbox 每個 session 一個有上限的信箱，由 client 輪詢取走
type Outbox struct {
	mu    sync.Mutex
	size  int
	boxes map[uuid.UUID][]Notification
}

func NewOutbox(size int) *Outbox {
	if size <= 0 {
		size = 32
	}
	return &Outbox{size: size, boxes: make(map[uuid.UUID][]Notification)}
}

func (o *Outbox) Notify(_ context.Context, sessionID uuid.UUID, n Notification) {
	o.mu.Lock()
	defer o.mu.Unlock()
	box := append(o.boxes[sessionID], n)
	// 超過上限時丟掉最舊的
	if len(box) > o.size {
		box = box[len(box)-o.size:]
	}
	o.boxes[sessionID] = box
}

// Drain 取走並清空 session 的通知
func (o *Outbox) Drain(sessionID uuid.UUID) []Notification {
	o.mu.Lock()
	defer o.mu.Unlock()
	box := o.boxes[sessionID]
	delete(o.boxes, sessionID)
	if box == nil {
		return []Notification{}
	}
	return box
}

// Forget 丟棄 session 的所有通知
func (o *Outbox) Forget(sessionID uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.boxes, sessionID)
}

// LogSink 把通知寫入 log
type LogSink struct {
	log *zap.Logger
}

func NewLogSink() *LogSink {
	return &LogSink{log: logger.WithComponent("notify")}
}

func (s *LogSink) Notify(_ context.Context, sessionID uuid.UUID, n Notification) {
	s.log.Info("notification",
		zap.String("session_id", sessionID.String()),
		zap.String("kind", string(n.Kind)),
		zap.String("title", n.Title),
		zap.String("target", n.Target),
	)
}

type multi []Sink

// Multi 把通知轉送到多個 sink
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Notify(ctx context.Context, sessionID uuid.UUID, n Notification) {
	for _, s := range m {
		s.Notify(ctx, sessionID, n)
	}
}
