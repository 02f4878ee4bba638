package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
	seen   string
}

func (s *stubValidator) ValidateToken(_ context.Context, token string) (*types.TokenClaims, error) {
	s.seen = token
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func newAuthRouter(v middleware.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(v), func(c *gin.Context) {
		id, _ := middleware.CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return router
}

func TestRequireAuthMissingToken(t *testing.T) {
	router := newAuthRouter(&stubValidator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router := newAuthRouter(&stubValidator{err: errors.New("bad token")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer nope")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBearerHeader(t *testing.T) {
	stub := &stubValidator{claims: &types.TokenClaims{UserID: 42, Username: "alice"}}
	router := newAuthRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "header-token", stub.seen)
	assert.Contains(t, w.Body.String(), "42")
}

func TestRequireAuthCookieWinsOverHeader(t *testing.T) {
	stub := &stubValidator{claims: &types.TokenClaims{UserID: 7}}
	router := newAuthRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cookie-token", stub.seen)
}
