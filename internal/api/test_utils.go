package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/testhelpers"
)

const testJWTSecret = "test-secret"

// setupTestRouter builds the full route tree over an in-memory database.
// Redis and object storage stay unconfigured.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *Services) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	svcs := &Services{
		Auth:       service.NewAuthService(db, nil, testJWTSecret),
		Ingredient: service.NewIngredientService(db),
		Recipe:     service.NewRecipeService(db),
		Nutrition:  service.NewNutritionService(db),
		Comment:    service.NewCommentService(db),
		MealPlan:   service.NewMealPlanService(db),
		Shopping:   service.NewShoppingListService(db),
		Follow:     service.NewFollowService(db),
		Image:      service.NewImageService(db, nil, "", ""),
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), svcs)
	return router, db, svcs
}

// signupUser registers a user through the API and returns their token.
func signupUser(t *testing.T, router *gin.Engine, userName, email string) (uint, string) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/user/signup", map[string]any{
		"userName": userName,
		"email":    email,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID    uint   `json:"id"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID, resp.Token
}

// doJSON performs a request with an optional bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
