package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

// IngredientHandler serves the shared ingredient catalog.
type IngredientHandler struct {
	ingredients *service.IngredientService
	validator   middleware.TokenValidator
}

func NewIngredientHandler(ingredients *service.IngredientService, validator middleware.TokenValidator) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients, validator: validator}
}

func (h *IngredientHandler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/ingredients")
	{
		group.GET("", h.List)
		group.POST("", middleware.RequireAuth(h.validator), h.Add)
		group.DELETE("/:id", middleware.RequireAuth(h.validator), h.Delete)
	}
}

func (h *IngredientHandler) Add(c *gin.Context) {
	var req types.AddIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredients.Add(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidIngredientType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient type"})
		case errors.Is(err, service.ErrIngredientExists):
			c.JSON(http.StatusConflict, gin.H{"error": "ingredient already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	search := c.Query("search")

	ingredients, total, err := h.ingredients.List(c.Request.Context(), page, size, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ingredients,
		"pagination": gin.H{
			"page":  page,
			"size":  size,
			"total": total,
		},
	})
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	if err := h.ingredients.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}
