package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkful/backend/internal/filter"
	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/service"
	"github.com/forkful/backend/internal/types"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
	authService   *service.AuthService
	createLimiter *middleware.RateLimiter
}

func NewRecipeHandler(recipeService *service.RecipeService, authService *service.AuthService, createLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
		createLimiter: createLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)

		authed := recipes.Group("", middleware.AuthMiddleware(h.authService))
		{
			create := authed.Group("")
			if h.createLimiter != nil {
				create.Use(h.createLimiter.RateLimitMiddleware())
			}
			create.POST("", h.CreateRecipe)

			authed.PUT("/:id", h.UpdateRecipe)
			authed.DELETE("/:id", h.DeleteRecipe)
		}
	}
}

// ListRecipes returns the catalog narrowed by the caller's filter criteria.
// All criteria fields are optional and combine as a conjunction.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	criteria := filter.ParseCriteria(c.Request.URL.Query())

	recipes, err := h.recipeService.SearchRecipes(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := c.GetString("username")
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), username, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, c.GetString("username"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes a recipe. The owner may delete their own; an admin
// may delete any (moderation).
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	err = h.recipeService.DeleteRecipe(c.Request.Context(), id, c.GetString("username"), c.GetBool("is_admin"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted successfully"})
}
