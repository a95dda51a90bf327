package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict, domain.KindInvalidState:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// fail converts a service error into the uniform error envelope. Internal
// errors never leak their wrapped cause to the client.
func fail(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	msg := err.Error()
	if kind == domain.KindInternal {
		msg = "internal server error"
	}
	c.JSON(statusFor(kind), gin.H{"error": msg, "kind": string(kind)})
}
