package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

// RecipeHandler serves recipes, favorites, ratings and nutrition.
type RecipeHandler struct {
	recipes   *service.RecipeService
	nutrition *service.NutritionService
	validator middleware.TokenValidator
}

func NewRecipeHandler(recipes *service.RecipeService, nutrition *service.NutritionService, validator middleware.TokenValidator) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, nutrition: nutrition, validator: validator}
}

func (h *RecipeHandler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/recipes")
	{
		group.GET("", h.List)
		group.GET("/cuisines", h.Cuisines)
		group.GET("/:id", h.Get)
		group.GET("/:id/nutrition", h.Nutrition)

		auth := group.Group("", middleware.RequireAuth(h.validator))
		{
			auth.POST("", h.Create)
			auth.DELETE("/:id", h.Delete)
			auth.PUT("/:id/rating", h.Rate)
			auth.GET("/favorites/:userId", h.ListFavorites)
			auth.POST("/favorites/add", h.AddFavorite)
			auth.DELETE("/favorites/remove", h.RemoveFavorite)
		}
	}
}

func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCuisine), errors.Is(err, service.ErrInvalidRecipeType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrIngredientNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown ingredient in recipe"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	userID, _ := strconv.ParseUint(c.Query("userId"), 10, 64)

	filter := service.RecipeFilter{
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search"),
		Cuisine:   c.Query("cuisine"),
		Type:      c.Query("type"),
		UserID:    uint(userID),
		RecipeIDs: parseIDList(c.Query("recipeIds")),
	}

	recipes, total, err := h.recipes.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  recipes,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	avg, err := h.recipes.AverageRating(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, struct {
		models.Recipe
		AverageRating float64 `json:"average_rating"`
	}{*recipe, avg})
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

func (h *RecipeHandler) ListFavorites(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	ids, err := h.recipes.FavoriteIDs(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipeIds": ids})
}

func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	userID, recipeID, ok := h.favoritePair(c)
	if !ok {
		return
	}

	if err := h.recipes.AddFavorite(c.Request.Context(), userID, recipeID); err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrAlreadyFavorite):
			c.JSON(http.StatusBadRequest, gin.H{"error": "recipe already in favorites"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "favorite added"})
}

func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	userID, recipeID, ok := h.favoritePair(c)
	if !ok {
		return
	}

	if err := h.recipes.RemoveFavorite(c.Request.Context(), userID, recipeID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}

func (h *RecipeHandler) Cuisines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cuisines": models.Cuisines()})
}

func (h *RecipeHandler) Nutrition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	estimate, err := h.nutrition.Estimate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, estimate)
}

func (h *RecipeHandler) Rate(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	avg, err := h.recipes.Rate(c.Request.Context(), userID, id, req.Rating)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"average_rating": avg})
}

// favoritePair resolves the acting user from the session and the recipe
// from the request body.
func (h *RecipeHandler) favoritePair(c *gin.Context) (uint, uint, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, 0, false
	}

	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipeId is required"})
		return 0, 0, false
	}
	return userID, req.RecipeID, true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func parsePathID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseIDList(raw string) []uint {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
