package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/service"
)

// AdminHandler exposes the moderation surface. All routes require an admin
// token; ownership checks do not apply here.
type AdminHandler struct {
	recipeService  *service.RecipeService
	commentService *service.CommentService
	authService    *service.AuthService
}

func NewAdminHandler(recipeService *service.RecipeService, commentService *service.CommentService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{
		recipeService:  recipeService,
		commentService: commentService,
		authService:    authService,
	}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin", middleware.AuthMiddleware(h.authService), middleware.AdminOnly())
	{
		admin.DELETE("/recipes/:id", h.RemoveRecipe)
		admin.DELETE("/recipes/:id/comments/:commentId", h.RemoveComment)
	}
}

func (h *AdminHandler) RemoveRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id, c.GetString("username"), true); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe removed"})
}

func (h *AdminHandler) RemoveComment(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := h.commentService.RemoveComment(c.Request.Context(), recipeID, commentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment removed"})
}
