package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookbookd/backend/internal/models"
)

func TestIngredientEndpoints(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	_, token := signupUser(t, router, "alice", "alice@example.com")

	// Unauthenticated writes are rejected.
	w := doJSON(t, router, http.MethodPost, "/api/v1/ingredients", map[string]any{
		"name": "Tomatoes", "ingredientType": models.IngredientTypeVegan,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/ingredients", map[string]any{
		"name": "Tomatoes", "ingredientType": models.IngredientTypeVegan, "caloriesPer100g": 18,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"name":"tomato"`)

	w = doJSON(t, router, http.MethodPost, "/api/v1/ingredients", map[string]any{
		"name": "tomato", "ingredientType": models.IngredientTypeVegan,
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/ingredients", map[string]any{
		"name": "mercury", "ingredientType": "Toxic",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngredientListEndpoint(t *testing.T) {
	router, db, _ := setupTestRouter(t)

	for i := 0; i < 25; i++ {
		require.NoError(t, db.Create(&models.Ingredient{
			Name:           fmt.Sprintf("ingredient %02d", i),
			IngredientType: models.IngredientTypeVegan,
		}).Error)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/ingredients?page=2&size=10", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []models.Ingredient `json:"data"`
		Pagination struct {
			Page  int   `json:"page"`
			Size  int   `json:"size"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 10)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.EqualValues(t, 25, resp.Pagination.Total)

	w = doJSON(t, router, http.MethodGet, "/api/v1/ingredients?search=INGREDIENT+01", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
}

func TestIngredientDeleteEndpoint(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	_, token := signupUser(t, router, "alice", "alice@example.com")

	ingredient := &models.Ingredient{Name: "tomato", IngredientType: models.IngredientTypeVegan}
	require.NoError(t, db.Create(ingredient).Error)

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/ingredients/%d", ingredient.ID), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/ingredients/%d", ingredient.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
