package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cookbookd/backend/config"
	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

const sessionMaxAge = 24 * 60 * 60

// AuthHandler serves signup, login, logout and user lookup.
type AuthHandler struct {
	auth         *service.AuthService
	secureCookie bool
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		secureCookie: config.IsProduction(),
	}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	user := router.Group("/user")
	{
		user.POST("/signup", middleware.SignupGuard(h.auth), h.Signup)
		user.POST("/login", h.Login)
		user.POST("/logout", middleware.RequireAuth(h.auth), h.Logout)
		user.GET("/:userId", h.GetUser)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, types.AuthResponse{
		ID:          user.ID,
		UserName:    user.UserName,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Description: user.Description,
		Token:       token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, types.AuthResponse{
		ID:          user.ID,
		UserName:    user.UserName,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Description: user.Description,
		Token:       token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token := sessionToken(c); token != "" {
		// Best effort; an expired token has nothing left to revoke.
		_ = h.auth.RevokeToken(c.Request.Context(), token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.auth.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, types.UserResponse{
		ID:          user.ID,
		Username:    user.UserName,
		Email:       user.Email,
		Description: user.Description,
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", h.secureCookie, true)
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if len(header) > 7 && header[:7] == "Bearer " {
		return header[7:]
	}
	return ""
}
