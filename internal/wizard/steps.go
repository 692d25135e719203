package wizard

import "go-gin-event-wizard/internal/model"

// CurrentStep 目前步驟
func (w *Wizard) CurrentStep() model.Step {
	return w.step
}

// Next 前進一步，最後一步時不動
func (w *Wizard) Next() model.Step {
	w.step = (w.step + 1).Clamp()
	return w.step
}

// Previous 後退一步，第一步時不動
func (w *Wizard) Previous() model.Step {
	w.step = (w.step - 1).Clamp()
	return w.step
}

// GoTo 直接跳到指定步驟，不檢查前面步驟是否填寫；超出範圍時限制在 [1,6]
func (w *Wizard) GoTo(step model.Step) model.Step {
	w.step = step.Clamp()
	return w.step
}

// CanPublish 只有在最後一步才提供發佈
func (w *Wizard) CanPublish() bool {
	return w.step == model.LastStep
}

// Progress 進度百分比
func (w *Wizard) Progress() int {
	return int(w.step) * 100 / model.TotalSteps
}

// Steps 側邊欄項目
func (w *Wizard) Steps() []model.StepView {
	views := make([]model.StepView, 0, model.TotalSteps)
	for s := model.FirstStep; s <= model.LastStep; s++ {
		status := model.StepStatusUpcoming
		switch {
		case s < w.step:
			status = model.StepStatusCompleted
		case s == w.step:
			status = model.StepStatusCurrent
		}
		views = append(views, model.StepView{
			Step:        s,
			Title:       s.Title(),
			Label:       s.Label(),
			Description: s.Description(),
			Status:      status,
		})
	}
	return views
}
