package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkful/backend/internal/filter"
	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/service"
)

// ProfileHandler serves a user's saved and uploaded recipe lists. Both
// accept the same filter criteria as the public catalog search.
type ProfileHandler struct {
	favoriteService *service.FavoriteService
	recipeService   *service.RecipeService
	authService     *service.AuthService
}

func NewProfileHandler(favoriteService *service.FavoriteService, recipeService *service.RecipeService, authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{
		favoriteService: favoriteService,
		recipeService:   recipeService,
		authService:     authService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := router.Group("", middleware.AuthMiddleware(h.authService))
	{
		authed.POST("/recipes/:id/save", h.SaveRecipe)
		authed.DELETE("/recipes/:id/save", h.UnsaveRecipe)

		profile := authed.Group("/profile")
		{
			profile.GET("/saved", h.ListSaved)
			profile.GET("/uploaded", h.ListUploaded)
		}
	}
}

func (h *ProfileHandler) SaveRecipe(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.favoriteService.SaveRecipe(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe saved to profile"})
}

func (h *ProfileHandler) UnsaveRecipe(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.favoriteService.UnsaveRecipe(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe removed from profile"})
}

func (h *ProfileHandler) ListSaved(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	criteria := filter.ParseCriteria(c.Request.URL.Query())
	recipes, err := h.favoriteService.ListSaved(c.Request.Context(), userID, criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savedRecipes": recipes})
}

func (h *ProfileHandler) ListUploaded(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	criteria := filter.ParseCriteria(c.Request.URL.Query())
	recipes, err := h.recipeService.ListByCreator(c.Request.Context(), username, criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"uploadedRecipes": recipes})
}

// callerID pulls the authenticated user's ID from the gin context.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}
