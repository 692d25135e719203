package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-gin-event-wizard/config"
	"go-gin-event-wizard/internal/clock"
	"go-gin-event-wizard/internal/deferred"
	"go-gin-event-wizard/internal/gateway"
	"go-gin-event-wizard/internal/metrics"
	"go-gin-event-wizard/internal/model"
	"go-gin-event-wizard/internal/notify"
	"go-gin-event-wizard/internal/validation"
	"go-gin-event-wizard/internal/wizard"
	apperrors "go-gin-event-wizard/pkg/app_errors"
	"go-gin-event-wizard/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DashboardPath 發佈成功後導向的 host 頁面
const DashboardPath = "/host/dashboard"

type WizardService interface {
	// 開新的 wizard session
	Start(ctx context.Context) (*WizardState, error)
	// 由已儲存的草稿重開 session；session 仍存在時直接回傳
	Resume(ctx context.Context, id uuid.UUID) (*WizardState, error)
	Get(ctx context.Context, id uuid.UUID) (*WizardState, error)
	// 丟棄 session，並取消尚未觸發的導頁
	Discard(ctx context.Context, id uuid.UUID) error

	UpdateField(ctx context.Context, id uuid.UUID, field model.Field, value any) (*WizardState, error)
	AddTicketTier(ctx context.Context, id uuid.UUID) (*WizardState, error)
	UpdateTicketTier(ctx context.Context, id uuid.UUID, index int, field model.TierField, value string) (*WizardState, error)
	RemoveTicketTier(ctx context.Context, id uuid.UUID, index int) (*WizardState, error)
	ToggleAmenity(ctx context.Context, id uuid.UUID, name string) (*WizardState, error)

	Next(ctx context.Context, id uuid.UUID) (*WizardState, error)
	Previous(ctx context.Context, id uuid.UUID) (*WizardState, error)
	GoTo(ctx context.Context, id uuid.UUID, step model.Step) (*WizardState, error)

	Preview(ctx context.Context, id uuid.UUID) (*wizard.Preview, error)
	Validate(ctx context.Context, id uuid.UUID) (*ValidationReport, error)

	// 儲存草稿：一定通知成功，失敗只記 log
	SaveDraft(ctx context.Context, id uuid.UUID) (*WizardState, error)
	// 發佈：只在最後一步可用
	Publish(ctx context.Context, id uuid.UUID) (*PublishReceipt, error)
	// 取走 session 累積的通知
	Notifications(ctx context.Context, id uuid.UUID) ([]notify.Notification, error)

	// 清掉閒置超過 SessionTTL 的 session，回傳清掉的數量
	ExpireIdle(ctx context.Context) int
}

// WizardState session 對外的狀態
type WizardState struct {
	SessionID      uuid.UUID         `json:"session_id"`
	Step           model.Step        `json:"step"`
	StepTitle      string            `json:"step_title"`
	Progress       int               `json:"progress"`
	Steps          []model.StepView  `json:"steps"`
	CanPublish     bool              `json:"can_publish"`
	PublishPending bool              `json:"publish_pending"`
	Published      bool              `json:"published"`
	RedirectTo     string            `json:"redirect_to,omitempty"`
	Draft          *model.EventDraft `json:"draft"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type ValidationReport struct {
	Valid     bool                       `json:"valid"`
	Errors    []validation.FieldError    `json:"errors"`
	Validated *validation.ValidatedDraft `json:"validated,omitempty"`
}

type PublishReceipt struct {
	RequestID   uuid.UUID `json:"request_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	RedirectTo  string    `json:"redirect_to"`
	RedirectAt  time.Time `json:"redirect_at"`
}

// ValidationError 嚴格模式下發佈前驗證失敗
type ValidationError struct {
	Errors []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d field error(s)", apperrors.ErrValidation, len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return apperrors.ErrValidation }

// errUnchanged 操作被拒絕但不算錯誤，狀態維持原樣
var errUnchanged = errors.New("unchanged")

type session struct {
	mu        sync.Mutex
	id        uuid.UUID
	log       *zap.Logger
	wizard    *wizard.Wizard
	redirect  *deferred.Task
	published bool
	closed    bool
	createdAt time.Time
	updatedAt time.Time
	lastSeen  time.Time
}

type WizardServiceImpl struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session

	cfg     config.WizardConfig
	gateway gateway.SubmissionGateway
	outbox  *notify.Outbox
	sink    notify.Sink
	clock   clock.Clock
	log     *zap.Logger
}

func NewWizardService(
	cfg config.WizardConfig,
	gw gateway.SubmissionGateway,
	outbox *notify.Outbox,
	clk clock.Clock,
	sinks ...notify.Sink,
) WizardService {
	return &WizardServiceImpl{
		sessions: make(map[uuid.UUID]*session),
		cfg:      cfg,
		gateway:  gw,
		outbox:   outbox,
		sink:     notify.Multi(append([]notify.Sink{outbox}, sinks...)...),
		clock:    clk,
		log:      logger.WithComponent("wizard"),
	}
}

func (s *WizardServiceImpl) Start(_ context.Context) (*WizardState, error) {
	sess := s.open(uuid.New(), wizard.New())
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.log.Info("wizard session started")
	metrics.TrackOperation("start", metrics.ResultOK)
	return s.stateOf(sess), nil
}

func (s *WizardServiceImpl) Resume(ctx context.Context, id uuid.UUID) (*WizardState, error) {
	if state, err := s.Get(ctx, id); err == nil {
		return state, nil
	}
	saved, err := s.gateway.LoadDraft(ctx, id)
	if err != nil {
		metrics.TrackOperation("resume", metrics.Result(false, nil))
		return nil, err
	}

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = s.newSession(id, wizard.Restore(saved.Draft, saved.Step))
		s.sessions[id] = sess
		metrics.SessionOpened()
	}
	s.mu.Unlock()

	sess.log.Info("wizard session resumed", zap.Int("step", int(saved.Step)))
	metrics.TrackOperation("resume", metrics.ResultOK)
	return s.Get(ctx, id)
}

func (s *WizardServiceImpl) Get(_ context.Context, id uuid.UUID) (*WizardState, error) {
	var state *WizardState
	err := s.withSession(id, func(sess *session) error {
		state = s.stateOf(sess)
		return nil
	})
	return state, err
}

func (s *WizardServiceImpl) Discard(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return apperrors.ErrSessionNotFound
	}
	s.close(sess)
	sess.log.Info("wizard session discarded")
	metrics.TrackOperation("discard", metrics.ResultOK)
	return nil
}

func (s *WizardServiceImpl) UpdateField(_ context.Context, id uuid.UUID, field model.Field, value any) (*WizardState, error) {
	return s.mutate(id, "update_field", func(sess *session) error {
		return sess.wizard.Update(field, value)
	})
}

func (s *WizardServiceImpl) AddTicketTier(_ context.Context, id uuid.UUID) (*WizardState, error) {
	return s.mutate(id, "add_tier", func(sess *session) error {
		sess.wizard.AddTicketTier()
		return nil
	})
}

// UpdateTicketTier 未知欄位回 ErrInvalidInput；index 越界則不做事
func (s *WizardServiceImpl) UpdateTicketTier(_ context.Context, id uuid.UUID, index int, field model.TierField, value string) (*WizardState, error) {
	if !field.IsValid() {
		return nil, fmt.Errorf("%w: tier field %q", apperrors.ErrInvalidInput, field)
	}
	return s.mutate(id, "update_tier", func(sess *session) error {
		if !sess.wizard.UpdateTicketTier(index, field, value) {
			return errUnchanged
		}
		return nil
	})
}

// RemoveTicketTier 移除最後一個票種或越界的 index 時靜默拒絕，回傳原狀態
func (s *WizardServiceImpl) RemoveTicketTier(_ context.Context, id uuid.UUID, index int) (*WizardState, error) {
	return s.mutate(id, "remove_tier", func(sess *session) error {
		if !sess.wizard.RemoveTicketTier(index) {
			return errUnchanged
		}
		return nil
	})
}

func (s *WizardServiceImpl) ToggleAmenity(_ context.Context, id uuid.UUID, name string) (*WizardState, error) {
	return s.mutate(id, "toggle_amenity", func(sess *session) error {
		sess.wizard.ToggleAmenity(name)
		return nil
	})
}

func (s *WizardServiceImpl) Next(_ context.Context, id uuid.UUID) (*WizardState, error) {
	return s.mutate(id, "next", func(sess *session) error {
		sess.wizard.Next()
		return nil
	})
}

func (s *WizardServiceImpl) Previous(_ context.Context, id uuid.UUID) (*WizardState, error) {
	return s.mutate(id, "previous", func(sess *session) error {
		sess.wizard.Previous()
		return nil
	})
}

func (s *WizardServiceImpl) GoTo(_ context.Context, id uuid.UUID, step model.Step) (*WizardState, error) {
	return s.mutate(id, "goto", func(sess *session) error {
		sess.wizard.GoTo(step)
		return nil
	})
}

func (s *WizardServiceImpl) Preview(_ context.Context, id uuid.UUID) (*wizard.Preview, error) {
	var preview wizard.Preview
	err := s.withSession(id, func(sess *session) error {
		preview = wizard.BuildPreview(sess.wizard.Draft())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &preview, nil
}

func (s *WizardServiceImpl) Validate(_ context.Context, id uuid.UUID) (*ValidationReport, error) {
	var report *ValidationReport
	err := s.withSession(id, func(sess *session) error {
		report = validate(sess.wizard.Draft())
		return nil
	})
	return report, err
}

func (s *WizardServiceImpl) SaveDraft(ctx context.Context, id uuid.UUID) (*WizardState, error) {
	var state *WizardState
	err := s.withSession(id, func(sess *session) error {
		err := s.gateway.SaveDraft(ctx, sess.id, sess.wizard.CurrentStep(), sess.wizard.Snapshot())
		if err != nil {
			// 儲存草稿不回報失敗給使用者
			sess.log.Error("save draft failed", zap.Error(err))
		}
		metrics.TrackSubmission("save_draft", metrics.Result(true, err))

		s.notify(ctx, sess.id, notify.Notification{
			Kind:        notify.KindToast,
			Title:       "Draft saved!",
			Description: "Your event has been saved as a draft.",
		})
		state = s.stateOf(sess)
		return nil
	})
	return state, err
}

func (s *WizardServiceImpl) Publish(ctx context.Context, id uuid.UUID) (*PublishReceipt, error) {
	var receipt *PublishReceipt
	err := s.withSession(id, func(sess *session) error {
		switch {
		case !sess.wizard.CanPublish():
			return apperrors.ErrPublishNotAvailable
		case sess.published:
			return apperrors.ErrAlreadyPublished
		case sess.redirect != nil:
			return apperrors.ErrPublishPending
		}

		draft := sess.wizard.Snapshot()
		if s.cfg.RequireValidPublish {
			if report := validate(draft); !report.Valid {
				metrics.TrackSubmission("publish", metrics.ResultRejected)
				return &ValidationError{Errors: report.Errors}
			}
		}

		req := &model.PublishRequest{
			RequestID:   uuid.New(),
			SessionID:   sess.id,
			Draft:       draft,
			SubmittedAt: s.clock.Now(),
		}
		if err := s.gateway.Publish(ctx, req); err != nil {
			sess.log.Error("publish failed", zap.Error(err))
			metrics.TrackSubmission("publish", metrics.ResultError)
			s.notify(ctx, sess.id, notify.Notification{
				Kind:        notify.KindToast,
				Title:       "Publish failed",
				Description: "Your event could not be published. Please try again.",
			})
			return apperrors.ErrInternalServerError
		}
		metrics.TrackSubmission("publish", metrics.ResultOK)

		s.notify(ctx, sess.id, notify.Notification{
			Kind:        notify.KindToast,
			Title:       "Event published! 🎉",
			Description: "Your event is now visible to the public.",
		})
		sess.redirect = deferred.Schedule(s.cfg.PublishRedirectDelay, func() {
			s.redirect(sess)
		})

		sess.log.Info("event publish submitted", zap.String("request_id", req.RequestID.String()))
		receipt = &PublishReceipt{
			RequestID:   req.RequestID,
			SubmittedAt: req.SubmittedAt,
			RedirectTo:  DashboardPath,
			RedirectAt:  req.SubmittedAt.Add(s.cfg.PublishRedirectDelay),
		}
		return nil
	})
	return receipt, err
}

func (s *WizardServiceImpl) Notifications(_ context.Context, id uuid.UUID) ([]notify.Notification, error) {
	var out []notify.Notification
	err := s.withSession(id, func(sess *session) error {
		out = s.outbox.Drain(sess.id)
		return nil
	})
	return out, err
}

func (s *WizardServiceImpl) ExpireIdle(ctx context.Context) int {
	cutoff := s.clock.Now().Add(-s.cfg.SessionTTL)

	s.mu.RLock()
	candidates := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		candidates = append(candidates, sess)
	}
	s.mu.RUnlock()

	expired := 0
	for _, sess := range candidates {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if !idle {
			continue
		}
		if err := s.Discard(ctx, sess.id); err == nil {
			expired++
		}
	}
	if expired > 0 {
		s.log.Info("expired idle wizard sessions", zap.Int("count", expired))
	}
	return expired
}

// redirect 由延遲任務觸發：標記已發佈並送出導頁通知
func (s *WizardServiceImpl) redirect(sess *session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return
	}
	sess.published = true
	sess.log.Info("redirecting to dashboard")
	s.notify(context.Background(), sess.id, notify.Notification{
		Kind:   notify.KindNavigation,
		Title:  "Redirecting to dashboard",
		Target: DashboardPath,
	})
}

func (s *WizardServiceImpl) newSession(id uuid.UUID, w *wizard.Wizard) *session {
	now := s.clock.Now()
	return &session{
		id:        id,
		log:       logger.WithSession("wizard", id.String()),
		wizard:    w,
		createdAt: now,
		updatedAt: now,
		lastSeen:  now,
	}
}

func (s *WizardServiceImpl) open(id uuid.UUID, w *wizard.Wizard) *session {
	sess := s.newSession(id, w)
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	metrics.SessionOpened()
	return sess
}

func (s *WizardServiceImpl) close(sess *session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return
	}
	sess.closed = true
	if sess.redirect != nil {
		sess.redirect.Cancel()
	}
	s.outbox.Forget(sess.id)
	metrics.SessionClosed()
}

// withSession 在 session 鎖內執行 fn；同一 session 的操作逐一完成
func (s *WizardServiceImpl) withSession(id uuid.UUID, fn func(sess *session) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return apperrors.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return apperrors.ErrSessionNotFound
	}
	sess.lastSeen = s.clock.Now()
	return fn(sess)
}

// mutate 修改草稿或步驟後回傳新狀態；已發佈的 session 不能再修改
func (s *WizardServiceImpl) mutate(id uuid.UUID, operation string, fn func(sess *session) error) (*WizardState, error) {
	var state *WizardState
	err := s.withSession(id, func(sess *session) error {
		if sess.published {
			metrics.TrackOperation(operation, metrics.ResultRejected)
			return apperrors.ErrAlreadyPublished
		}
		err := fn(sess)
		switch {
		case errors.Is(err, errUnchanged):
			sess.log.Debug("wizard operation ignored", zap.String("operation", operation))
			metrics.TrackOperation(operation, metrics.ResultRejected)
			state = s.stateOf(sess)
			return nil
		case err != nil:
			sess.log.Debug("wizard operation rejected", zap.String("operation", operation), zap.Error(err))
			metrics.TrackOperation(operation, metrics.ResultRejected)
			return err
		}
		sess.updatedAt = s.clock.Now()
		state = s.stateOf(sess)
		metrics.TrackOperation(operation, metrics.ResultOK)
		return nil
	})
	return state, err
}

func (s *WizardServiceImpl) notify(ctx context.Context, id uuid.UUID, n notify.Notification) {
	n.CreatedAt = s.clock.Now()
	s.sink.Notify(ctx, id, n)
}

// stateOf 呼叫端須持有 sess.mu
func (s *WizardServiceImpl) stateOf(sess *session) *WizardState {
	w := sess.wizard
	state := &WizardState{
		SessionID:      sess.id,
		Step:           w.CurrentStep(),
		StepTitle:      w.CurrentStep().Title(),
		Progress:       w.Progress(),
		Steps:          w.Steps(),
		CanPublish:     w.CanPublish(),
		PublishPending: sess.redirect != nil && !sess.published,
		Published:      sess.published,
		Draft:          w.Snapshot(),
		CreatedAt:      sess.createdAt,
		UpdatedAt:      sess.updatedAt,
	}
	if state.PublishPending || sess.published {
		state.RedirectTo = DashboardPath
	}
	return state
}

func validate(d *model.EventDraft) *ValidationReport {
	validated, errs := validation.Validate(d)
	if errs == nil {
		errs = []validation.FieldError{}
	}
	return &ValidationReport{
		Valid:     len(errs) == 0,
		Errors:    errs,
		Validated: validated,
	}
}
