package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go-gin-event-wizard/internal/model"
	apperrors "go-gin-event-wizard/pkg/app_errors"

	"github.com/google/uuid"
)

// MemoryListingRepositoryImpl 不接資料庫時使用的 listing 儲存
type MemoryListingRepositoryImpl struct {
	mu       sync.RWMutex
	nextID   int
	listings []*model.Listing
	now      func() time.Time
}

func NewMemoryListingRepository() ListingRepository {
	return &MemoryListingRepositoryImpl{
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryListingRepositoryImpl) Create(_ context.Context, listing *model.Listing) (*model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.listings {
		if l.RequestID == listing.RequestID {
			return copyListing(l), nil
		}
	}

	stored := copyListing(listing)
	stored.ID = r.nextID
	stored.CreatedAt = r.now()
	r.nextID++
	r.listings = append(r.listings, stored)
	return copyListing(stored), nil
}

func (r *MemoryListingRepositoryImpl) List(_ context.Context) ([]*model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		out = append(out, copyListing(l))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out, nil
}

func (r *MemoryListingRepositoryImpl) FindByEventID(_ context.Context, eventID uuid.UUID) (*model.Listing, error) {
	return r.find(func(l *model.Listing) bool { return l.EventID == eventID })
}

func (r *MemoryListingRepositoryImpl) FindByRequestID(_ context.Context, requestID uuid.UUID) (*model.Listing, error) {
	return r.find(func(l *model.Listing) bool { return l.RequestID == requestID })
}

func (r *MemoryListingRepositoryImpl) find(match func(*model.Listing) bool) (*model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.listings {
		if match(l) {
			return copyListing(l), nil
		}
	}
	return nil, apperrors.ErrListingNotFound
}

func copyListing(l *model.Listing) *model.Listing {
	c := *l
	c.Draft = l.Draft.Clone()
	return &c
}
