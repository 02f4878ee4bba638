package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserLookup answers the existence checks the signup guard needs.
type UserLookup interface {
	UserNameTaken(ctx context.Context, userName string) (bool, error)
	EmailRegistered(ctx context.Context, email string) (bool, error)
}

// SignupGuard rejects a signup early when the username or email is already
// held by a live account. The unique indexes remain the authority under
// races; this just gives the caller a precise message.
func SignupGuard(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		// Malformed JSON falls through to the handler's binding.
		var peek struct {
			UserName string `json:"userName"`
			Email    string `json:"email"`
		}
		if err := json.Unmarshal(body, &peek); err != nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if peek.UserName != "" {
			taken, err := users.UserNameTaken(ctx, peek.UserName)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				c.Abort()
				return
			}
			if taken {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
				c.Abort()
				return
			}
		}
		if peek.Email != "" {
			registered, err := users.EmailRegistered(ctx, peek.Email)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				c.Abort()
				return
			}
			if registered {
				c.JSON(http.StatusConflict, gin.H{"error": "Email registered"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
