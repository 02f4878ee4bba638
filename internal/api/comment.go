package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

// CommentHandler serves threaded recipe comments.
type CommentHandler struct {
	comments  *service.CommentService
	validator middleware.TokenValidator
}

func NewCommentHandler(comments *service.CommentService, validator middleware.TokenValidator) *CommentHandler {
	return &CommentHandler{comments: comments, validator: validator}
}

func (h *CommentHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/recipes/:id/comments", h.List)
	router.POST("/recipes/:id/comments", middleware.RequireAuth(h.validator), h.Add)
	router.DELETE("/comments/:id", middleware.RequireAuth(h.validator), h.Delete)
}

func (h *CommentHandler) Add(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment text is required"})
		return
	}

	comment, err := h.comments.Add(c.Request.Context(), userID, recipeID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrInvalidParent):
			c.JSON(http.StatusBadRequest, gin.H{"error": "parent comment not found on this recipe"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) List(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	thread, err := h.comments.ListTree(c.Request.Context(), recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": thread})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), userID, commentID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound), errors.Is(err, service.ErrNotCommentAuthor):
			// Hiding other users' comment ids behind the same 404.
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
