package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/service"
	"github.com/forkful/backend/internal/types"
)

type RatingHandler struct {
	ratingService *service.RatingService
	authService   *service.AuthService
	limiter       *middleware.RateLimiter
}

func NewRatingHandler(ratingService *service.RatingService, authService *service.AuthService, limiter *middleware.RateLimiter) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		authService:   authService,
		limiter:       limiter,
	}
}

func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	rate := router.Group("/recipes/:id", middleware.AuthMiddleware(h.authService))
	if h.limiter != nil {
		rate.Use(h.limiter.RateLimitMiddleware())
	}
	rate.POST("/rate", h.SubmitRating)
}

// SubmitRating records the caller's rating and returns the recomputed
// average. A user has one vote per recipe; resubmitting replaces it.
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := c.GetString("username")
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	average, err := h.ratingService.SubmitRating(c.Request.Context(), id, username, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.RateResponse{AverageRating: average})
}
