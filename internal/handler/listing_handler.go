package handler

import (
	"net/http"

	"go-gin-event-wizard/internal/model"
	"go-gin-event-wizard/internal/service"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	service service.ListingService
}

func NewListingHandler(service service.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

func (h *ListingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("host/events", h.GetListings)
		router.GET("host/events/:uuid", h.GetListing)
		router.GET("catalog", h.GetCatalog)
	}
}

func (h *ListingHandler) GetListings(c *gin.Context) {
	listings, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "GetListings")
		return
	}
	handleSuccess(c, listings, http.StatusOK)
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	eventID, ok := bindID(c, "uuid")
	if !ok {
		return
	}
	listing, err := h.service.GetByEventID(c, eventID)
	if err != nil {
		handleError(c, err, "GetListing")
		return
	}
	handleSuccess(c, listing, http.StatusOK)
}

// Catalog 表單選項：分類、服務、列舉值與步驟
type Catalog struct {
	Categories       []string               `json:"categories"`
	Amenities        []string               `json:"amenities"`
	EventTypes       []model.EventType      `json:"event_types"`
	AgeRestrictions  []model.AgeRestriction `json:"age_restrictions"`
	RefundPolicies   []model.RefundPolicy   `json:"refund_policies"`
	Visibilities     []model.Visibility     `json:"visibilities"`
	TicketTierFields []model.TierField      `json:"ticket_tier_fields"`
	Steps            []model.StepView       `json:"steps"`
}

func (h *ListingHandler) GetCatalog(c *gin.Context) {
	steps := make([]model.StepView, 0, model.TotalSteps)
	for s := model.FirstStep; s <= model.LastStep; s++ {
		steps = append(steps, model.StepView{
			Step:        s,
			Title:       s.Title(),
			Label:       s.Label(),
			Description: s.Description(),
		})
	}
	handleSuccess(c, Catalog{
		Categories:       model.Categories,
		Amenities:        model.Amenities,
		EventTypes:       []model.EventType{model.EventTypePhysical, model.EventTypeOnline},
		AgeRestrictions:  []model.AgeRestriction{model.AgeRestrictionNone, model.AgeRestriction18, model.AgeRestriction21, model.AgeRestrictionFamily},
		RefundPolicies:   []model.RefundPolicy{model.RefundPolicyFlexible, model.RefundPolicyModerate, model.RefundPolicyStrict},
		Visibilities:     []model.Visibility{model.VisibilityPublic, model.VisibilityPrivate, model.VisibilityInvite},
		TicketTierFields: []model.TierField{model.TierFieldName, model.TierFieldPrice, model.TierFieldDescription, model.TierFieldQuantity},
		Steps:            steps,
	}, http.StatusOK)
}
