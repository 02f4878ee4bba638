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

func TestRecipeCreateEndpoint(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	_, token := signupUser(t, router, "alice", "alice@example.com")

	tomato := &models.Ingredient{Name: "tomato", IngredientType: models.IngredientTypeVegan, CaloriesPer100g: 18}
	require.NoError(t, db.Create(tomato).Error)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes", map[string]any{
		"title":             "Tomato Soup",
		"country_of_origin": models.CuisineItalian,
		"type":              models.RecipeTypeDinner,
		"ingredients": []map[string]any{
			{"ingredient_id": tomato.ID, "quantity": 500, "unit": "g", "note": "ripe"},
		},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.Ingredients, 1)
	assert.Equal(t, "tomato", created.Ingredients[0].Ingredient.Name)
	assert.Equal(t, 500.0, created.Ingredients[0].Quantity)
	assert.Equal(t, "ripe", created.Ingredients[0].Note)

	// Missing title and invalid enums are validation errors.
	w = doJSON(t, router, http.MethodPost, "/api/v1/recipes", map[string]any{"description": "no title"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/recipes", map[string]any{
		"title": "Dish", "country_of_origin": "Atlantis",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/recipes", map[string]any{"title": "Dish"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecipeListEndpoint(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	id, _ := signupUser(t, router, "alice", "alice@example.com")

	for _, title := range []string{"Pasta", "Pizza", "Tacos"} {
		require.NoError(t, db.Create(&models.Recipe{Title: title, UserID: id}).Error)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []models.Recipe `json:"data"`
		Total int64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 3, resp.Total)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes?search=pasta", nil, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Pasta", resp.Data[0].Title)

	// recipeIds wins over everything else.
	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes?recipeIds=1,3&search=pizza", nil, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestRecipeGetEndpoint(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	id, token := signupUser(t, router, "alice", "alice@example.com")

	recipe := &models.Recipe{Title: "Pasta", UserID: id}
	require.NoError(t, db.Create(recipe).Error)

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/recipes/%d/rating", recipe.ID), map[string]any{"rating": 4}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%d", recipe.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pasta", resp["title"])
	assert.Equal(t, 4.0, resp["average_rating"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/9999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRatingEndpointValidation(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	id, token := signupUser(t, router, "alice", "alice@example.com")

	recipe := &models.Recipe{Title: "Pasta", UserID: id}
	require.NoError(t, db.Create(recipe).Error)

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/recipes/%d/rating", recipe.ID), map[string]any{"rating": 6}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/recipes/%d/rating", recipe.ID), map[string]any{"rating": 0}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/recipes/9999/rating", map[string]any{"rating": 3}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoritesEndpoints(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	id, token := signupUser(t, router, "alice", "alice@example.com")

	recipe := &models.Recipe{Title: "Pasta", UserID: id}
	require.NoError(t, db.Create(recipe).Error)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/favorites/add", map[string]any{"recipeId": recipe.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Second add of the same pair is a client error.
	w = doJSON(t, router, http.MethodPost, "/api/v1/recipes/favorites/add", map[string]any{"recipeId": recipe.ID}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/recipes/favorites/add", map[string]any{"recipeId": 9999}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/recipes/favorites/add", map[string]any{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/favorites/%d", id), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		RecipeIDs []uint `json:"recipeIds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, []uint{recipe.ID}, list.RecipeIDs)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/recipes/favorites/remove", map[string]any{"recipeId": recipe.ID}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/recipes/favorites/remove", map[string]any{"recipeId": recipe.ID}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/favorites/%d", id), nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCuisinesEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes/cuisines", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cuisines []string `json:"cuisines"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.Cuisines(), resp.Cuisines)
}

func TestNutritionEndpoint(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	id, _ := signupUser(t, router, "alice", "alice@example.com")

	recipe := &models.Recipe{Title: "Pasta", UserID: id}
	require.NoError(t, db.Create(recipe).Error)
	flour := &models.Ingredient{Name: "flour", IngredientType: models.IngredientTypeVegan, CaloriesPer100g: 364}
	require.NoError(t, db.Create(flour).Error)
	require.NoError(t, db.Create(&models.RecipeIngredient{
		RecipeID: recipe.ID, IngredientID: flour.ID, Quantity: 200, Unit: "g",
	}).Error)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%d/nutrition", recipe.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalCalories float64 `json:"total_calories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 728, resp.TotalCalories, 0.001)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/9999/nutrition", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	id, token := signupUser(t, router, "alice", "alice@example.com")

	recipe := &models.Recipe{Title: "Pasta", UserID: id}
	require.NoError(t, db.Create(recipe).Error)

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/recipes/%d", recipe.ID), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%d", recipe.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImageUploadUnconfigured(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	id, token := signupUser(t, router, "alice", "alice@example.com")

	recipe := &models.Recipe{Title: "Pasta", UserID: id}
	require.NoError(t, db.Create(recipe).Error)

	// No multipart body at all is a bad request before storage matters.
	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%d/images", recipe.ID), nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
