package wizard

import (
	"fmt"
	"slices"
	"time"

	"go-gin-event-wizard/internal/model"
	apperrors "go-gin-event-wizard/pkg/app_errors"
)

const dateLayout = "2006-01-02"

// Update 取代草稿的單一頂層欄位，其他欄位不變。
// 不做驗證；欄位不存在或值型別不符時回傳錯誤且草稿不變。
func (w *Wizard) Update(field model.Field, value any) error {
	kind, ok := field.Kind()
	if !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownField, field)
	}

	switch kind {
	case model.KindText:
		s, ok := asString(value)
		if !ok {
			return invalidValue(field, value)
		}
		w.setText(field, s)
	case model.KindDate:
		date, ok := asDate(value)
		if !ok {
			return invalidValue(field, value)
		}
		w.draft.Date = date
	case model.KindTiers:
		tiers, ok := value.([]model.TicketTier)
		if !ok || len(tiers) == 0 {
			return invalidValue(field, value)
		}
		w.draft.TicketTypes = slices.Clone(tiers)
	case model.KindStringList:
		list, ok := value.([]string)
		if !ok {
			return invalidValue(field, value)
		}
		if field == model.FieldAmenities {
			w.draft.Amenities = dedupe(list)
		} else {
			w.draft.Images = slices.Clone(list)
		}
	}
	return nil
}

func (w *Wizard) setText(field model.Field, s string) {
	d := w.draft
	switch field {
	case model.FieldTitle:
		d.Title = truncate(s, model.MaxTitleLen)
	case model.FieldDescription:
		d.Description = truncate(s, model.MaxDescriptionLen)
	case model.FieldCategory:
		d.Category = s
	case model.FieldSubcategory:
		d.Subcategory = s
	case model.FieldEventType:
		d.EventType = model.EventType(s)
	case model.FieldLocation:
		d.Location = s
	case model.FieldAddress:
		d.Address = s
	case model.FieldOnlineLink:
		d.OnlineLink = s
	case model.FieldStartTime:
		d.StartTime = s
	case model.FieldEndTime:
		d.EndTime = s
	case model.FieldMaxCapacity:
		d.MaxCapacity = s
	case model.FieldAgeRestriction:
		d.AgeRestriction = model.AgeRestriction(s)
	case model.FieldRefundPolicy:
		d.RefundPolicy = model.RefundPolicy(s)
	case model.FieldVisibility:
		d.Visibility = model.Visibility(s)
	}
}

// ToggleAmenity 未勾選則加入，已勾選則移除；回傳切換後是否勾選
func (w *Wizard) ToggleAmenity(name string) bool {
	if i := slices.Index(w.draft.Amenities, name); i >= 0 {
		w.draft.Amenities = slices.Delete(slices.Clone(w.draft.Amenities), i, i+1)
		return false
	}
	w.draft.Amenities = append(slices.Clone(w.draft.Amenities), name)
	return true
}

func invalidValue(field model.Field, value any) error {
	return fmt.Errorf("%w: %q does not accept %T", apperrors.ErrInvalidValue, field, value)
}

func asString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case model.EventType:
		return string(v), true
	case model.AgeRestriction:
		return string(v), true
	case model.RefundPolicy:
		return string(v), true
	case model.Visibility:
		return string(v), true
	}
	return "", false
}

// asDate 接受 nil（清除）、time.Time、*time.Time 或 YYYY-MM-DD / RFC3339 字串
func asDate(value any) (*time.Time, bool) {
	var t time.Time
	switch v := value.(type) {
	case nil:
		return nil, true
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return nil, true
		}
		t = *v
	case string:
		if v == "" {
			return nil, true
		}
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, v)
			if err != nil {
				return nil, false
			}
		}
		t = parsed
	default:
		return nil, false
	}
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &date, true
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func dedupe(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
