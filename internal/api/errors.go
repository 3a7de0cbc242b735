package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/backend/internal/service"
)

// respondError maps domain errors onto HTTP status codes. Anything not in
// the taxonomy is a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrReplyNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
