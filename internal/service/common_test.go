package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-gin-event-wizard/config"
	"go-gin-event-wizard/internal/cache"
	"go-gin-event-wizard/internal/gateway"
	"go-gin-event-wizard/internal/notify"
	"go-gin-event-wizard/internal/queue"

	"github.com/google/uuid"
)

var testStart = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

// manualClock 測試用時鐘，可手動前進
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock { return &manualClock{now: testStart} }

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recordingSink 記錄所有送出的通知，不會被 Drain 清掉
type recordingSink struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (r *recordingSink) Notify(_ context.Context, _ uuid.UUID, n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recordingSink) count(kind notify.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, x := range r.got {
		if x.Kind == kind {
			n++
		}
	}
	return n
}

type testEnv struct {
	svc     WizardService
	clock   *manualClock
	sink    *recordingSink
	queue   queue.PublishQueue
	drafts  cache.DraftStore
	wizards config.WizardConfig
}

func newTestEnv(t *testing.T, mutate ...func(*config.WizardConfig)) *testEnv {
	t.Helper()
	cfg := config.LoadTestConfig().Wizard
	for _, m := range mutate {
		m(&cfg)
	}
	env := &testEnv{
		clock:   newManualClock(),
		sink:    &recordingSink{},
		queue:   queue.NewMemoryPublishQueue(8, nil),
		drafts:  cache.NewMemoryDraftStore(),
		wizards: cfg,
	}
	gw := gateway.NewGateway(env.drafts, env.queue, env.clock)
	env.svc = NewWizardService(cfg, gw, notify.NewOutbox(cfg.OutboxSize), env.clock, env.sink)
	return env
}

func newServiceWithGateway(gw gateway.SubmissionGateway, sink *recordingSink) WizardService {
	cfg := config.LoadTestConfig().Wizard
	return NewWizardService(cfg, gw, notify.NewOutbox(cfg.OutboxSize), newManualClock(), sink)
}
