package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	pkgAuth "github.com/vertexinvest/checkout/internal/pkg/auth"
	"github.com/vertexinvest/checkout/internal/server/http/dto"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrValidation),
		errors.Is(err, domainErrors.ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidState),
		errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidCredentials),
		errors.Is(err, pkgAuth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, domainErrors.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domainErrors.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError aborts the request with a JSON error body. Internal failures are not echoed back.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := statusFor(err)

	var tooMany *domainErrors.TooManyAttemptsError
	if errors.As(err, &tooMany) {
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(tooMany.RetryAfter.Seconds()))))
	}

	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		message = http.StatusText(status)
	case http.StatusServiceUnavailable:
		message = "service temporarily unavailable"
	case http.StatusUnauthorized:
		message = "unauthorized"
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}
