package wizard

import (
	"slices"

	"go-gin-event-wizard/internal/model"
)

// AddTicketTier 在清單尾端加入空白票種
func (w *Wizard) AddTicketTier() {
	w.draft.TicketTypes = append(slices.Clone(w.draft.TicketTypes), model.TicketTier{})
}

// UpdateTicketTier 取代 index 位置票種的單一欄位；index 越界或欄位不存在時不做事
func (w *Wizard) UpdateTicketTier(index int, field model.TierField, value string) bool {
	if !w.tierInRange(index) || !field.IsValid() {
		return false
	}
	tiers := slices.Clone(w.draft.TicketTypes)
	tiers[index].Set(field, value)
	w.draft.TicketTypes = tiers
	return true
}

// RemoveTicketTier 移除 index 位置的票種。清單只剩一個時拒絕，票種數永遠 >= 1
func (w *Wizard) RemoveTicketTier(index int) bool {
	if len(w.draft.TicketTypes) <= 1 || !w.tierInRange(index) {
		return false
	}
	w.draft.TicketTypes = slices.Delete(slices.Clone(w.draft.TicketTypes), index, index+1)
	return true
}

// TicketTiers 目前票種清單的拷貝
func (w *Wizard) TicketTiers() []model.TicketTier {
	return slices.Clone(w.draft.TicketTypes)
}

func (w *Wizard) tierInRange(index int) bool {
	return index >= 0 && index < len(w.draft.TicketTypes)
}
