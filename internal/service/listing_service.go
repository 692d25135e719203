package service

import (
	"context"
	"strings"
	"time"

	"go-gin-event-wizard/internal/clock"
	"go-gin-event-wizard/internal/metrics"
	"go-gin-event-wizard/internal/model"
	"go-gin-event-wizard/internal/repository"
	"go-gin-event-wizard/internal/validation"
	apperrors "go-gin-event-wizard/pkg/app_errors"
	"go-gin-event-wizard/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ListingService interface {
	// host 列表，新發佈的在前
	List(ctx context.Context) ([]*model.Listing, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Listing, error)
	// 把發佈請求寫成 listing；同一 RequestID 重送時回傳既有紀錄
	Ingest(ctx context.Context, req *model.PublishRequest) (*model.Listing, error)
}

type ListingServiceImpl struct {
	repository repository.ListingRepository
	clock      clock.Clock
	log        *zap.Logger
}

func NewListingService(repository repository.ListingRepository, clk clock.Clock) ListingService {
	return &ListingServiceImpl{
		repository: repository,
		clock:      clk,
		log:        logger.WithComponent("listing"),
	}
}

func (s *ListingServiceImpl) List(ctx context.Context) ([]*model.Listing, error) {
	return s.repository.List(ctx)
}

func (s *ListingServiceImpl) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Listing, error) {
	return s.repository.FindByEventID(ctx, eventID)
}

func (s *ListingServiceImpl) Ingest(ctx context.Context, req *model.PublishRequest) (*model.Listing, error) {
	if req == nil || req.Draft == nil {
		return nil, apperrors.ErrInvalidInput
	}
	start := time.Now()

	listing := BuildListing(req, s.clock.Now())
	created, err := s.repository.Create(ctx, listing)
	if err != nil {
		metrics.TrackIngest(metrics.ResultError, time.Since(start))
		return nil, err
	}
	metrics.TrackIngest(metrics.ResultOK, time.Since(start))

	s.log.Info("listing ingested",
		zap.String("event_id", created.EventID.String()),
		zap.String("request_id", created.RequestID.String()),
		zap.String("title", created.Title),
	)
	return created, nil
}

// BuildListing 由發佈請求組出 listing，EventID 在此產生
func BuildListing(req *model.PublishRequest, now time.Time) *model.Listing {
	d := req.Draft
	publishedAt := req.SubmittedAt
	if publishedAt.IsZero() {
		publishedAt = now
	}
	return &model.Listing{
		EventID:     uuid.New(),
		RequestID:   req.RequestID,
		SessionID:   req.SessionID,
		Title:       orDefault(d.Title, "Untitled event"),
		Category:    d.Category,
		EventType:   d.EventType,
		Venue:       venueOf(d),
		EventDate:   d.Date,
		Visibility:  d.Visibility,
		TierCount:   len(d.TicketTypes),
		LowestPrice: lowestPrice(d.TicketTypes),
		Status:      model.ListingStatusPublished,
		Draft:       d.Clone(),
		PublishedAt: publishedAt,
	}
}

func venueOf(d *model.EventDraft) string {
	if d.EventType == model.EventTypeOnline {
		return "Online"
	}
	return strings.TrimSpace(d.Location)
}

// lowestPrice 取可解析票價中的最低者；都無法解析時回傳空字串
func lowestPrice(tiers []model.TicketTier) string {
	var (
		lowest decimal.Decimal
		found  bool
	)
	for _, t := range tiers {
		p, err := validation.ParsePrice(t.Price)
		if err != nil || p.IsNegative() {
			continue
		}
		if !found || p.LessThan(lowest) {
			lowest, found = p, true
		}
	}
	if !found {
		return ""
	}
	return lowest.StringFixed(2)
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
