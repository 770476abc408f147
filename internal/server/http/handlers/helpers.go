package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
	"github.com/vertexinvest/checkout/internal/server/http/dto"
	"github.com/vertexinvest/checkout/internal/server/http/middleware"
)

// CurrentAdmin extracts the authenticated admin identity from context.
func CurrentAdmin(c *gin.Context) (model.AdminIdentity, bool) {
	val, ok := c.Get(middleware.AdminContextKey)
	if !ok {
		return model.AdminIdentity{}, false
	}
	identity, ok := val.(model.AdminIdentity)
	return identity, ok
}

// bindJSON decodes the request body into dst and writes the error response on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if bodyTooLarge(err) {
			writeError(c, domainErrors.ErrPayloadTooLarge)
			return false
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
