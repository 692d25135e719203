package wizard

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go-gin-event-wizard/internal/model"
	apperrors "go-gin-event-wizard/pkg/app_errors"
)

// DecodeValue 把 JSON 值轉成 Update 可接受的型別。
// 文字欄位也接受 JSON 數字（例如 max_capacity: 500），日期欄位接受 null 以清除。
func DecodeValue(field model.Field, raw json.RawMessage) (any, error) {
	kind, ok := field.Kind()
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownField, field)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, invalidValue(field, nil)
	}

	switch kind {
	case model.KindText:
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, nil
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return n.String(), nil
		}
	case model.KindDate:
		if bytes.Equal(raw, []byte("null")) {
			return nil, nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, nil
		}
	case model.KindTiers:
		var tiers []model.TicketTier
		if err := json.Unmarshal(raw, &tiers); err == nil && tiers != nil {
			return tiers, nil
		}
	case model.KindStringList:
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil && list != nil {
			return list, nil
		}
	}
	return nil, invalidValue(field, string(raw))
}
