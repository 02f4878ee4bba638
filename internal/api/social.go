package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/service"
)

// SocialHandler serves the follow graph.
type SocialHandler struct {
	follows   *service.FollowService
	validator middleware.TokenValidator
}

func NewSocialHandler(follows *service.FollowService, validator middleware.TokenValidator) *SocialHandler {
	return &SocialHandler{follows: follows, validator: validator}
}

func (h *SocialHandler) RegisterRoutes(router gin.IRouter) {
	users := router.Group("/users")
	{
		users.POST("/:userId/follow", middleware.RequireAuth(h.validator), h.Follow)
		users.DELETE("/:userId/follow", middleware.RequireAuth(h.validator), h.Unfollow)
		users.GET("/:userId/followers", h.Followers)
		users.GET("/:userId/following", h.Following)
	}
}

func (h *SocialHandler) Follow(c *gin.Context) {
	followerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	followedID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.follows.Follow(c.Request.Context(), followerID, followedID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot follow yourself"})
		case errors.Is(err, service.ErrAlreadyFollowed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "already following this user"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "followed"})
}

func (h *SocialHandler) Unfollow(c *gin.Context) {
	followerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	followedID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.follows.Unfollow(c.Request.Context(), followerID, followedID); err != nil {
		if errors.Is(err, service.ErrFollowNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "follow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}

func (h *SocialHandler) Followers(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	users, err := h.follows.Followers(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userIds": userIDs(users)})
}

func (h *SocialHandler) Following(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	users, err := h.follows.Following(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userIds": userIDs(users)})
}

func userIDs(users []models.User) []uint {
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
