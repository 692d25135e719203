// Package validation 把原始草稿轉成型別化的 ValidatedDraft，不修改原草稿。
package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go-gin-event-wizard/internal/model"

	"github.com/shopspring/decimal"
)

// FieldError represents a single field's validation error.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"message"`
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }

// ValidatedTier 票種的型別化版本
type ValidatedTier struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Quantity    *int            `json:"quantity,omitempty"`
}

// ValidatedDraft 通過驗證後的草稿；數值欄位已解析
type ValidatedDraft struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Category       string               `json:"category"`
	Subcategory    string               `json:"subcategory"`
	EventType      model.EventType      `json:"event_type"`
	Venue          string               `json:"venue"`
	Address        string               `json:"address,omitempty"`
	OnlineLink     string               `json:"online_link,omitempty"`
	Date           time.Time            `json:"date"`
	Start          *time.Time           `json:"start,omitempty"`
	End            *time.Time           `json:"end,omitempty"`
	Capacity       *int                 `json:"capacity,omitempty"`
	Tiers          []ValidatedTier      `json:"tiers"`
	Images         []string             `json:"images"`
	Amenities      []string             `json:"amenities"`
	AgeRestriction model.AgeRestriction `json:"age_restriction"`
	RefundPolicy   model.RefundPolicy   `json:"refund_policy"`
	Visibility     model.Visibility     `json:"visibility"`
}

// LowestPrice 最低票價；沒有票種時回傳零
func (v *ValidatedDraft) LowestPrice() decimal.Decimal {
	if len(v.Tiers) == 0 {
		return decimal.Zero
	}
	lowest := v.Tiers[0].Price
	for _, t := range v.Tiers[1:] {
		if t.Price.LessThan(lowest) {
			lowest = t.Price
		}
	}
	return lowest
}

const clockLayout = "15:04"

// Validate performs strict checks on the draft.
// 回傳 nil ValidatedDraft 表示至少有一個欄位錯誤
func Validate(d *model.EventDraft) (*ValidatedDraft, []FieldError) {
	var errs []FieldError
	add := func(field, msg string) { errs = append(errs, FieldError{field, msg}) }

	title := strings.TrimSpace(d.Title)
	if title == "" {
		add("title", "required")
	} else if utf8.RuneCountInString(d.Title) > model.MaxTitleLen {
		add("title", fmt.Sprintf("max length %d", model.MaxTitleLen))
	}

	if utf8.RuneCountInString(d.Description) > model.MaxDescriptionLen {
		add("description", fmt.Sprintf("max length %d", model.MaxDescriptionLen))
	}

	if d.Category == "" {
		add("category", "required")
	} else if !model.IsKnownCategory(d.Category) {
		add("category", "unknown category")
	}

	if !d.EventType.IsValid() {
		add("event_type", "must be physical or online")
	}
	switch d.EventType {
	case model.EventTypePhysical:
		if strings.TrimSpace(d.Location) == "" {
			add("location", "required for physical events")
		}
	case model.EventTypeOnline:
		if d.OnlineLink == "" {
			add("online_link", "required for online events")
		} else if !isHTTPURL(d.OnlineLink) {
			add("online_link", "must be an absolute http(s) URL")
		}
	}

	if d.Date == nil {
		add("date", "required")
	}

	start, startOK := parseClock(d.StartTime)
	if d.StartTime != "" && !startOK {
		add("start_time", "must be HH:MM")
	}
	end, endOK := parseClock(d.EndTime)
	if d.EndTime != "" && !endOK {
		add("end_time", "must be HH:MM")
	}
	if startOK && endOK && !end.After(start) {
		add("end_time", "must be after start_time")
	}

	var capacity *int
	if d.MaxCapacity != "" {
		n, err := strconv.Atoi(strings.TrimSpace(d.MaxCapacity))
		if err != nil || n <= 0 {
			add("max_capacity", "must be a positive integer")
		} else {
			capacity = &n
		}
	}

	tiers := make([]ValidatedTier, 0, len(d.TicketTypes))
	if len(d.TicketTypes) == 0 {
		add("ticket_types", "at least one ticket tier is required")
	}
	for i, t := range d.TicketTypes {
		vt, tierErrs := validateTier(i, t)
		errs = append(errs, tierErrs...)
		tiers = append(tiers, vt)
	}

	if !d.AgeRestriction.IsValid() {
		add("age_restriction", "must be none, 18+, 21+ or family")
	}
	if !d.RefundPolicy.IsValid() {
		add("refund_policy", "must be flexible, moderate or strict")
	}
	if !d.Visibility.IsValid() {
		add("visibility", "must be public, private or invite")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	v := &ValidatedDraft{
		Title:          title,
		Description:    d.Description,
		Category:       d.Category,
		Subcategory:    d.Subcategory,
		EventType:      d.EventType,
		Date:           *d.Date,
		Capacity:       capacity,
		Tiers:          tiers,
		Images:         append([]string{}, d.Images...),
		Amenities:      append([]string{}, d.Amenities...),
		AgeRestriction: d.AgeRestriction,
		RefundPolicy:   d.RefundPolicy,
		Visibility:     d.Visibility,
	}
	if d.EventType == model.EventTypeOnline {
		v.Venue = "Online"
		v.OnlineLink = d.OnlineLink
	} else {
		v.Venue = strings.TrimSpace(d.Location)
		v.Address = d.Address
	}
	if startOK {
		s := combine(*d.Date, start)
		v.Start = &s
	}
	if endOK {
		e := combine(*d.Date, end)
		v.End = &e
	}
	return v, nil
}

func validateTier(i int, t model.TicketTier) (ValidatedTier, []FieldError) {
	var errs []FieldError
	field := func(name string) string { return fmt.Sprintf("ticket_types[%d].%s", i, name) }

	vt := ValidatedTier{Name: strings.TrimSpace(t.Name), Description: t.Description, Price: decimal.Zero}
	if vt.Name == "" {
		errs = append(errs, FieldError{field("name"), "required"})
	}

	if strings.TrimSpace(t.Price) != "" {
		price, err := ParsePrice(t.Price)
		switch {
		case err != nil:
			errs = append(errs, FieldError{field("price"), "must be a decimal amount"})
		case price.IsNegative():
			errs = append(errs, FieldError{field("price"), "must not be negative"})
		default:
			vt.Price = price
		}
	}

	if q := strings.TrimSpace(t.Quantity); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			errs = append(errs, FieldError{field("quantity"), "must be a positive integer"})
		} else {
			vt.Quantity = &n
		}
	}
	return vt, errs
}

func parseClock(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ParsePrice 解析票價文字，接受逗號小數點；空字串視為免費
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, err
	}
	return price.Round(2), nil
}
