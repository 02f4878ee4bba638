package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

// PlannerHandler serves meal plans and shopping lists. Every route is
// authenticated and scoped to the session user.
type PlannerHandler struct {
	plans     *service.MealPlanService
	lists     *service.ShoppingListService
	validator middleware.TokenValidator
}

func NewPlannerHandler(plans *service.MealPlanService, lists *service.ShoppingListService, validator middleware.TokenValidator) *PlannerHandler {
	return &PlannerHandler{plans: plans, lists: lists, validator: validator}
}

func (h *PlannerHandler) RegisterRoutes(router gin.IRouter) {
	auth := middleware.RequireAuth(h.validator)

	plans := router.Group("/meal-plans", auth)
	{
		plans.POST("", h.CreatePlan)
		plans.GET("", h.ListPlans)
		plans.GET("/:id", h.GetPlan)
		plans.POST("/:id/recipes", h.AddPlanRecipe)
		plans.DELETE("/:id", h.DeletePlan)
	}

	lists := router.Group("/shopping-lists", auth)
	{
		lists.POST("", h.CreateList)
		lists.GET("", h.ListLists)
		lists.GET("/:id", h.GetList)
		lists.POST("/:id/recipes/:recipeId", h.AddListRecipe)
		lists.DELETE("/:id", h.DeleteList)
	}
}

func (h *PlannerHandler) CreatePlan(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req types.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.plans.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *PlannerHandler) ListPlans(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	plans, err := h.plans.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": plans})
}

func (h *PlannerHandler) GetPlan(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	planID, ok := pathID(c, "id")
	if !ok {
		return
	}

	plan, err := h.plans.Get(c.Request.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, service.ErrMealPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlannerHandler) AddPlanRecipe(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	planID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.AddMealPlanRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.plans.AddRecipe(c.Request.Context(), userID, planID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMealPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *PlannerHandler) DeletePlan(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	planID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.plans.Delete(c.Request.Context(), userID, planID); err != nil {
		if errors.Is(err, service.ErrMealPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal plan deleted"})
}

func (h *PlannerHandler) CreateList(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req types.CreateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.lists.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (h *PlannerHandler) ListLists(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	lists, err := h.lists.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": lists})
}

func (h *PlannerHandler) GetList(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.lists.Get(c.Request.Context(), userID, listID)
	if err != nil {
		if errors.Is(err, service.ErrShoppingListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shopping list not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PlannerHandler) AddListRecipe(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	recipeID, err := parsePathID(c.Param("recipeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	list, err := h.lists.AddRecipeItems(c.Request.Context(), userID, listID, recipeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShoppingListNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "shopping list not found"})
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (h *PlannerHandler) DeleteList(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.lists.Delete(c.Request.Context(), userID, listID); err != nil {
		if errors.Is(err, service.ErrShoppingListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shopping list not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "shopping list deleted"})
}
