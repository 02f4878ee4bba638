package models

import (
	"time"

	"gorm.io/gorm"
)

// Ingredient names are stored trimmed, lowercased and singularized so that
// "Tomatoes" and "tomato" resolve to the same row.
type Ingredient struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Name            string         `gorm:"size:100;not null;uniqueIndex:idx_ingredients_name,where:deleted_at IS NULL" json:"name"`
	IngredientType  string         `gorm:"size:20;not null" json:"ingredientType"`
	CaloriesPer100g float64        `json:"caloriesPer100g"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
