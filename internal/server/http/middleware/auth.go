package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vertexinvest/checkout/internal/domain/model"
	pkgAuth "github.com/vertexinvest/checkout/internal/pkg/auth"
)

// AdminContextKey is a gin context key for the authenticated admin identity.
const AdminContextKey = "admin"

// TokenVerifier validates admin bearer tokens.
type TokenVerifier interface {
	VerifyToken(token string) (model.AdminIdentity, error)
}

// AdminRequired ensures the request carries a valid admin bearer token.
func AdminRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		identity, err := verifier.VerifyToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				abortUnauthorized(c)
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": http.StatusText(http.StatusInternalServerError)})
			return
		}

		c.Set(AdminContextKey, identity)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Bearer realm="admin"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
