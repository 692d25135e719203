package wizard

import (
	"fmt"
	"slices"

	"go-gin-event-wizard/internal/model"
)

// Preview 草稿在公開頁上的呈現方式，缺少的欄位以佔位文字顯示
type Preview struct {
	Title       string        `json:"title"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	DateLabel   string        `json:"date_label"`
	TimeLabel   string        `json:"time_label"`
	VenueLabel  string        `json:"venue_label"`
	VenueDetail string        `json:"venue_detail"`
	Capacity    string        `json:"capacity"`
	Visibility  string        `json:"visibility"`
	MainPrice   string        `json:"main_price"`
	Tiers       []PreviewTier `json:"tiers"`
	Amenities   []string      `json:"amenities"`
}

type PreviewTier struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// BuildPreview 由草稿產生預覽
func BuildPreview(d *model.EventDraft) Preview {
	p := Preview{
		Title:       orDefault(d.Title, "Untitled event"),
		Category:    orDefault(d.Category, "Category"),
		Description: orDefault(d.Description, "Add an engaging description for your event..."),
		DateLabel:   "Date to be defined",
		TimeLabel:   fmt.Sprintf("%s - %s", d.StartTime, d.EndTime),
		Capacity:    "Capacity to be defined",
		MainPrice:   "Price to be defined",
		Visibility:  visibilityLabel(d.Visibility),
		Tiers:       make([]PreviewTier, 0, len(d.TicketTypes)),
		Amenities:   make([]string, 0, len(d.Amenities)),
	}

	if d.Date != nil {
		p.DateLabel = d.Date.Format("Monday, January 2, 2006")
	}

	if d.EventType == model.EventTypeOnline {
		p.VenueLabel = "Online event"
		p.VenueDetail = "Link provided after purchase"
	} else {
		p.VenueLabel = orDefault(d.Location, "Location to be defined")
		p.VenueDetail = orDefault(d.Address, "Address to be defined")
	}

	if d.MaxCapacity != "" {
		p.Capacity = d.MaxCapacity + " seats"
	}

	if len(d.TicketTypes) > 0 && d.TicketTypes[0].Price != "" {
		p.MainPrice = "€" + d.TicketTypes[0].Price
	}

	for _, t := range d.TicketTypes {
		p.Tiers = append(p.Tiers, PreviewTier{
			Name:        orDefault(t.Name, "Ticket"),
			Price:       "€" + orDefault(t.Price, "0"),
			Description: orDefault(t.Description, "Ticket description"),
		})
	}

	// 依固定清單順序顯示
	for _, a := range model.Amenities {
		if d.HasAmenity(a) {
			p.Amenities = append(p.Amenities, a)
		}
	}
	for _, a := range d.Amenities {
		if !slices.Contains(model.Amenities, a) {
			p.Amenities = append(p.Amenities, a)
		}
	}

	return p
}

func visibilityLabel(v model.Visibility) string {
	switch v {
	case model.VisibilityPublic:
		return "Public"
	case model.VisibilityPrivate:
		return "Private"
	default:
		return "Invite only"
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
