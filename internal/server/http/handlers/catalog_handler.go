package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vertexinvest/checkout/internal/domain/model"
	"github.com/vertexinvest/checkout/internal/server/http/dto"
)

// CatalogHandler serves plans, PIX details and status metadata.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Plans handles GET /api/plans.
func (h *CatalogHandler) Plans(c *gin.Context) {
	plans := h.facade.Plans()
	response := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		response = append(response, toPlanResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Plan handles GET /api/plans/:id.
func (h *CatalogHandler) Plan(c *gin.Context) {
	plan, err := h.facade.Plan(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPlanResponse(*plan))
}

// PixInfo handles GET /api/pix-info.
func (h *CatalogHandler) PixInfo(c *gin.Context) {
	info := h.facade.PixInfo()
	c.JSON(http.StatusOK, dto.PixInfoResponse{
		RecipientName: info.RecipientName,
		Bank:          info.Bank,
		PixKey:        info.Key,
	})
}

// OrderStatuses handles GET /api/order-statuses.
func (h *CatalogHandler) OrderStatuses(c *gin.Context) {
	statuses := h.facade.OrderStatuses()
	response := make([]dto.StatusInfoResponse, 0, len(statuses))
	for _, s := range statuses {
		next := make([]string, 0, 2)
		for _, to := range s.Status.NextStatuses(model.TriggerAdmin) {
			next = append(next, string(to))
		}
		response = append(response, dto.StatusInfoResponse{
			Status:   string(s.Status),
			Label:    s.Label,
			Color:    s.Color,
			Terminal: s.Status.Terminal(),
			Next:     next,
		})
	}
	c.JSON(http.StatusOK, response)
}
