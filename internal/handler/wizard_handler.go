package handler

import (
	"encoding/json"
	"net/http"

	"go-gin-event-wizard/internal/model"
	"go-gin-event-wizard/internal/service"
	"go-gin-event-wizard/internal/wizard"

	"github.com/gin-gonic/gin"
)

type WizardHandler struct {
	service service.WizardService
}

func NewWizardHandler(service service.WizardService) *WizardHandler {
	return &WizardHandler{service: service}
}

type updateFieldRequest struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

type tierUri struct {
	Index int `uri:"index"`
}

type updateTierRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type toggleAmenityRequest struct {
	Name string `json:"name" binding:"required"`
}

type goToRequest struct {
	Step *int `json:"step" binding:"required"`
}

func (h *WizardHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("wizards", h.StartWizard)
		router.GET("wizards/:id", h.GetWizard)
		router.DELETE("wizards/:id", h.DiscardWizard)
		router.POST("wizards/:id/resume", h.ResumeWizard)

		router.PATCH("wizards/:id/draft", h.UpdateField)
		router.POST("wizards/:id/draft/save", h.SaveDraft)
		router.POST("wizards/:id/tiers", h.AddTicketTier)
		router.PATCH("wizards/:id/tiers/:index", h.UpdateTicketTier)
		router.DELETE("wizards/:id/tiers/:index", h.RemoveTicketTier)
		router.POST("wizards/:id/amenities/toggle", h.ToggleAmenity)

		router.POST("wizards/:id/next", h.NextStep)
		router.POST("wizards/:id/previous", h.PreviousStep)
		router.PUT("wizards/:id/step", h.GoToStep)

		router.GET("wizards/:id/preview", h.Preview)
		router.GET("wizards/:id/validation", h.Validate)
		router.GET("wizards/:id/notifications", h.Notifications)
		router.POST("wizards/:id/publish", h.Publish)
	}
}

func (h *WizardHandler) StartWizard(c *gin.Context) {
	state, err := h.service.Start(c)
	if err != nil {
		handleError(c, err, "StartWizard")
		return
	}
	handleSuccess(c, state, http.StatusCreated)
}

func (h *WizardHandler) GetWizard(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	state, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "GetWizard")
		return
	}
	handleSuccess(c, state, http.StatusOK)
}

func (h *WizardHandler) DiscardWizard(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Discard(c, id); err != nil {
		handleError(c, err, "DiscardWizard")
		return
	}
	handleSuccess(c, nil, http.StatusNoContent)
}

func (h *WizardHandler) ResumeWizard(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	state, err := h.service.Resume(c, id)
	if err != nil {
		handleError(c, err, "ResumeWizard")
		return
	}
	handleSuccess(c, state, http.StatusOK)
}

func (h *WizardHandler) UpdateField(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	var req updateFieldRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	field := model.Field(req.Field)
	value, err := wizard.DecodeValue(field, req.Value)
	if err != nil {
		handleError(c, err, "UpdateField")
		return
	}
	state, err := h.service.UpdateField(c, id, field, value)
	if err != nil {
		handleError(c, err, "UpdateField")
		return
	}
	handleSuccess(c, state, http.StatusOK)
}

func (h *WizardHandler) SaveDraft(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	state, err := h.service.SaveDraft(c, id)
	if err != nil {
		handleError(c, err, "SaveDraft")
		return
	}
	handleSuccess(c, state, http.StatusOK)
}

func (h *WizardHandler) AddTicketTier(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	state, err := h.service.AddTicketTier(c, id)
	if err != nil {
		handleError(c, err, "AddTicketTier")
		return
	}
	handleSuccess(c, state, http.StatusCreated)
}

func (h *WizardHandler) UpdateTicketTier(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	var uri tierUri
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var req updateTierRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	state, err := h.service.UpdateTicketTier(c, id, uri.Index, model.TierField(req.Field), req.Value)
	if err != nil {
		handleError(c, err, "UpdateTicketTier")
		return
	}
	handleSuccess(c, state, http.StatusOK)
}

func (h *WizardHandler) RemoveTicketTier(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	var uri tierUri
	if err := BindUri(c, &uri); err != nil {
		return
	}
	state, err := h.service.RemoveTicketTier(c, id, uri.Index)
	if err != nil {
		handleError(c, err, "RemoveTicketTier")
		return
	}
	handleSuccess(c, state, http.StatusOK)
}

func (h *WizardHandler) ToggleAmenity(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	var req toggleAmenityRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	state, err := h.service.ToggleAmenity(c, id, req.Name)
	if err != nil {
		handleError(c, err, "ToggleAmenity")
		return
	}
	handleSuccess(c, state, http.StatusOK)
}

func (h *WizardHandler) NextStep(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	state, err := h.service.Next(c, id)
	if err != nil {
		handleError(c, err, "NextStep")
		return
	}
	handleSuccess(c, state, http.StatusOK)
}

func (h *WizardHandler) PreviousStep(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	state, err := h.service.Previous(c, id)
	if err != nil {
		handleError(c, err, "PreviousStep")
		return
	}
	handleSuccess(c, state, http.StatusOK)
}

func (h *WizardHandler) GoToStep(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	var req goToRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	state, err := h.service.GoTo(c, id, model.Step(*req.Step))
	if err != nil {
		handleError(c, err, "GoToStep")
		return
	}
	handleSuccess(c, state, http.StatusOK)
}

func (h *WizardHandler) Preview(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	preview, err := h.service.Preview(c, id)
	if err != nil {
		handleError(c, err, "Preview")
		return
	}
	handleSuccess(c, preview, http.StatusOK)
}

func (h *WizardHandler) Validate(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	report, err := h.service.Validate(c, id)
	if err != nil {
		handleError(c, err, "Validate")
		return
	}
	handleSuccess(c, report, http.StatusOK)
}

func (h *WizardHandler) Notifications(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	notes, err := h.service.Notifications(c, id)
	if err != nil {
		handleError(c, err, "Notifications")
		return
	}
	handleSuccess(c, gin.H{"notifications": notes}, http.StatusOK)
}

func (h *WizardHandler) Publish(c *gin.Context) {
	id, ok := bindID(c, "id")
	if !ok {
		return
	}
	receipt, err := h.service.Publish(c, id)
	if err != nil {
		handleError(c, err, "Publish")
		return
	}
	handleSuccess(c, receipt, http.StatusAccepted)
}
