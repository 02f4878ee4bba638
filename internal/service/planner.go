package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/types"
)

var ErrMealPlanNotFound = errors.New("meal plan not found")

// MealPlanService manages planning-calendar entries; every operation is
// scoped to the owning user.
type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

func (s *MealPlanService) Create(ctx context.Context, userID uint, req types.CreateMealPlanRequest) (*models.MealPlan, error) {
	plan := models.MealPlan{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) ListByUser(ctx context.Context, userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Get loads one plan with its scheduled recipes.
func (s *MealPlanService) Get(ctx context.Context, userID, planID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.WithContext(ctx).
		Preload("Recipes.Recipe").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// AddRecipe schedules a recipe on the plan for the given slot.
func (s *MealPlanService) AddRecipe(ctx context.Context, userID, planID uint, req types.AddMealPlanRecipeRequest) (*models.MealPlanRecipe, error) {
	if _, err := s.Get(ctx, userID, planID); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", req.RecipeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrRecipeNotFound
	}

	entry := models.MealPlanRecipe{
		MealPlanID: planID,
		RecipeID:   req.RecipeID,
		DayTime:    req.DayTime,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *MealPlanService) Delete(ctx context.Context, userID, planID uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&models.MealPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMealPlanNotFound
	}
	return nil
}
