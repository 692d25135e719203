// Package wizard 實作建立活動的六步驟 wizard：草稿模型、步驟控制與票種清單編輯。
//
// Wizard 不做任何 I/O，也不加鎖；呼叫端（service 層的 session）負責序列化存取。
package wizard

import (
	"go-gin-event-wizard/internal/model"
)

// Wizard 擁有一份草稿與目前步驟
type Wizard struct {
	draft *model.EventDraft
	step  model.Step
}

// New 以預設草稿建立 wizard，起始於第一步
func New() *Wizard {
	return &Wizard{
		draft: model.NewEventDraft(),
		step:  model.FirstStep,
	}
}

// Restore 由既有草稿與步驟重建 wizard；草稿會被複製，步驟會被限制在範圍內
func Restore(draft *model.EventDraft, step model.Step) *Wizard {
	w := New()
	if draft != nil {
		w.draft = draft.Clone()
		if len(w.draft.TicketTypes) == 0 {
			w.draft.TicketTypes = []model.TicketTier{{Name: model.DefaultTierName}}
		}
	}
	w.step = step.Clamp()
	return w
}

// Draft 回傳目前草稿的唯讀視圖；需要保留時請用 Snapshot
func (w *Wizard) Draft() *model.EventDraft {
	return w.draft
}

// Snapshot 回傳草稿的深拷貝，交給 gateway 使用
func (w *Wizard) Snapshot() *model.EventDraft {
	return w.draft.Clone()
}
