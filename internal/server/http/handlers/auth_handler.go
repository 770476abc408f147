package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vertexinvest/checkout/internal/server/http/dto"
)

// AuthHandler processes admin login.
type AuthHandler struct {
	facade AdminFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AdminFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/admin/auth.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.facade.Login(c.Request.Context(), req.Password, c.ClientIP())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}
