package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-gin-event-wizard/internal/model"
	apperrors "go-gin-event-wizard/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) (*model.Listing, error)
	List(ctx context.Context) ([]*model.Listing, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Listing, error)
	FindByRequestID(ctx context.Context, requestID uuid.UUID) (*model.Listing, error)
}

type PgListingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPgListingRepository(pool *pgxpool.Pool) ListingRepository {
	return &PgListingRepositoryImpl{
		pool: pool,
	}
}

const listingColumns = `id, event_id, request_id, session_id, title, category, event_type, venue,
		event_date, visibility, tier_count, lowest_price, status, draft, published_at, created_at`

func scanListing(row pgx.Row) (*model.Listing, error) {
	var (
		listing   model.Listing
		draftJSON []byte
	)
	err := row.Scan(
		&listing.ID,
		&listing.EventID,
		&listing.RequestID,
		&listing.SessionID,
		&listing.Title,
		&listing.Category,
		&listing.EventType,
		&listing.Venue,
		&listing.EventDate,
		&listing.Visibility,
		&listing.TierCount,
		&listing.LowestPrice,
		&listing.Status,
		&draftJSON,
		&listing.PublishedAt,
		&listing.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(draftJSON) > 0 {
		var draft model.EventDraft
		if err := json.Unmarshal(draftJSON, &draft); err != nil {
			return nil, fmt.Errorf("unmarshal listing draft: %w", err)
		}
		listing.Draft = &draft
	}
	return &listing, nil
}

func (r *PgListingRepositoryImpl) Create(ctx context.Context, listing *model.Listing) (*model.Listing, error) {
	draftJSON, err := json.Marshal(listing.Draft)
	if err != nil {
		return nil, fmt.Errorf("marshal listing draft: %w", err)
	}

	// request_id 唯一：重送的發佈請求回傳既有紀錄
	query := `
		INSERT INTO listings (
			event_id, request_id, session_id, title, category, event_type, venue,
			event_date, visibility, tier_count, lowest_price, status, draft, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (request_id) DO NOTHING
		RETURNING ` + listingColumns

	created, err := scanListing(r.pool.QueryRow(ctx, query,
		listing.EventID, listing.RequestID, listing.SessionID, listing.Title, listing.Category,
		listing.EventType, listing.Venue, listing.EventDate, listing.Visibility, listing.TierCount,
		listing.LowestPrice, listing.Status, draftJSON, listing.PublishedAt,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return r.FindByRequestID(ctx, listing.RequestID)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *PgListingRepositoryImpl) List(ctx context.Context) ([]*model.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		ORDER BY published_at DESC, id DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]*model.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *PgListingRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE event_id = $1
	`
	listing, err := scanListing(r.pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (r *PgListingRepositoryImpl) FindByRequestID(ctx context.Context, requestID uuid.UUID) (*model.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE request_id = $1
	`
	listing, err := scanListing(r.pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}
