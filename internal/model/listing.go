package model

import (
	"time"

	"github.com/google/uuid"
)

type ListingStatus string

const (
	ListingStatusPublished ListingStatus = "published"
	ListingStatusPending   ListingStatus = "pending"
)

// Listing 已發佈活動在 host 列表上的紀錄
type Listing struct {
	ID          int           `json:"id" db:"id"`
	EventID     uuid.UUID     `json:"event_id" db:"event_id"`
	RequestID   uuid.UUID     `json:"request_id" db:"request_id"`
	SessionID   uuid.UUID     `json:"session_id" db:"session_id"`
	Title       string        `json:"title" db:"title"`
	Category    string        `json:"category" db:"category"`
	EventType   EventType     `json:"event_type" db:"event_type"`
	Venue       string        `json:"venue" db:"venue"`
	EventDate   *time.Time    `json:"event_date,omitempty" db:"event_date"`
	Visibility  Visibility    `json:"visibility" db:"visibility"`
	TierCount   int           `json:"tier_count" db:"tier_count"`
	LowestPrice string        `json:"lowest_price" db:"lowest_price"`
	Status      ListingStatus `json:"status" db:"status"`
	Draft       *EventDraft   `json:"draft,omitempty" db:"draft"`
	PublishedAt time.Time     `json:"published_at" db:"published_at"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}

// PublishRequest 經由 publish queue 傳給 listing 的發佈請求
type PublishRequest struct {
	RequestID   uuid.UUID   `json:"request_id"`
	SessionID   uuid.UUID   `json:"session_id"`
	Draft       *EventDraft `json:"draft"`
	SubmittedAt time.Time   `json:"submitted_at"`
}
