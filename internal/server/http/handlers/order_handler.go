package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
	"github.com/vertexinvest/checkout/internal/server/http/dto"
)

// multipartOverhead leaves room for boundaries and part headers around the proof file.
const multipartOverhead = 64 << 10

// OrderHandler manages customer order endpoints.
type OrderHandler struct {
	facade CustomerFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade CustomerFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.facade.CreateOrder(
		c.Request.Context(),
		req.PlanID,
		toCustomerData(req.CustomerData),
		model.PaymentMethod(req.PaymentMethod),
		req.IsPremium,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderWithPlanResponse(*created))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderWithPlanResponse(*order))
}

// Status handles GET /api/orders/:id/status.
func (h *OrderHandler) Status(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderStatusResponse{
		OrderID:   order.Order.ID,
		Status:    string(order.Order.Status),
		UpdatedAt: order.Order.UpdatedAt,
	})
}

// UploadProof handles POST /api/orders/:id/payment-proof.
func (h *OrderHandler) UploadProof(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.facade.MaxProofSize()+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		if bodyTooLarge(err) {
			writeError(c, domainErrors.ErrPayloadTooLarge)
			return
		}
		writeError(c, domainErrors.Validation("file", "is required"))
		return
	}

	file, err := header.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer file.Close()

	_, err = h.facade.SubmitProof(
		c.Request.Context(),
		c.Param("id"),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func bodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}
