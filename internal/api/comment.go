package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkful/backend/internal/middleware"
	"github.com/forkful/backend/internal/service"
	"github.com/forkful/backend/internal/types"
)

type CommentHandler struct {
	commentService *service.CommentService
	authService    *service.AuthService
}

func NewCommentHandler(commentService *service.CommentService, authService *service.AuthService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		authService:    authService,
	}
}

func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	comments := router.Group("/recipes/:id/comments")
	{
		comments.GET("", h.ListComments)

		authed := comments.Group("", middleware.AuthMiddleware(h.authService))
		{
			authed.POST("", h.AddComment)
			authed.DELETE("/:commentId", h.DeleteComment)
			authed.POST("/:commentId/replies", h.AddReply)
			authed.DELETE("/:commentId/replies/:replyId", h.DeleteReply)
		}
	}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), recipeID, c.GetString("username"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) AddReply(c *gin.Context) {
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

	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.commentService.AddReply(c.Request.Context(), recipeID, commentID, c.GetString("username"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}

// DeleteComment removes a comment. Only its original author may do so.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
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

	if err := h.commentService.DeleteComment(c.Request.Context(), recipeID, commentID, c.GetString("username")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

// DeleteReply removes a reply. Only its original author may do so.
func (h *CommentHandler) DeleteReply(c *gin.Context) {
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
	replyID, err := uuid.Parse(c.Param("replyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reply id"})
		return
	}

	if err := h.commentService.DeleteReply(c.Request.Context(), recipeID, commentID, replyID, c.GetString("username")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reply deleted"})
}
