package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/cookbookd/backend/internal/models"
)

// gramsPerUnit converts the units a recipe entry may carry into grams.
// Units outside this table cannot be estimated.
var gramsPerUnit = map[string]float64{
	"g":     1,
	"gram":  1,
	"grams": 1,
	"kg":    1000,
	"mg":    0.001,
	"oz":    28.35,
	"lb":    453.59,
}

type IngredientCalories struct {
	IngredientID uint    `json:"ingredient_id"`
	Name         string  `json:"name"`
	Grams        float64 `json:"grams"`
	Calories     float64 `json:"calories"`
	Estimated    bool    `json:"estimated"`
}

type NutritionEstimate struct {
	RecipeID      uint                 `json:"recipe_id"`
	TotalCalories float64              `json:"total_calories"`
	Ingredients   []IngredientCalories `json:"ingredients"`
}

// NutritionService derives calorie estimates from a recipe's ingredient
// entries and the catalog's per-100g figures.
type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

// Estimate sums calories across the recipe's entries. Entries whose unit is
// not convertible to grams are reported with Estimated false and contribute
// nothing to the total.
func (s *NutritionService) Estimate(ctx context.Context, recipeID uint) (*NutritionEstimate, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		First(&recipe, recipeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	estimate := NutritionEstimate{
		RecipeID:    recipe.ID,
		Ingredients: make([]IngredientCalories, 0, len(recipe.Ingredients)),
	}
	for _, entry := range recipe.Ingredients {
		item := IngredientCalories{
			IngredientID: entry.IngredientID,
			Name:         entry.Ingredient.Name,
		}
		factor, ok := gramsPerUnit[strings.ToLower(strings.TrimSpace(entry.Unit))]
		// A soft-deleted catalog entry preloads as a zero value; without its
		// per-100g figure the entry cannot be estimated.
		if ok && entry.Ingredient.ID != 0 {
			item.Grams = entry.Quantity * factor
			item.Calories = entry.Ingredient.CaloriesPer100g * item.Grams / 100
			item.Estimated = true
			estimate.TotalCalories += item.Calories
		}
		estimate.Ingredients = append(estimate.Ingredients, item)
	}
	return &estimate, nil
}
