package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
	"github.com/vertexinvest/checkout/internal/server/http/dto"
)

// AdminHandler serves the authenticated order management endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// ListOrders handles GET /api/admin/orders.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		writeError(c, err)
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		writeError(c, err)
		return
	}

	orders, err := h.facade.ListOrders(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.OrderWithPlanResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderWithPlanResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// SetStatus handles PUT /api/admin/orders/:id/status.
func (h *AdminHandler) SetStatus(c *gin.Context) {
	admin, ok := CurrentAdmin(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.facade.SetOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status), req.AdminNotes, admin.Subject)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*updated))
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domainErrors.Validation(key, "must be a non-negative integer")
	}
	return n, nil
}
