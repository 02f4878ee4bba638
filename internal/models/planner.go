package models

import "time"

type MealPlan struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	UserID      uint             `gorm:"not null;index" json:"user_id"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	IsActive    bool             `json:"is_active"`
	Recipes     []MealPlanRecipe `gorm:"foreignKey:MealPlanID" json:"recipes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// MealPlanRecipe schedules a recipe inside a plan; DayTime is a free-form
// slot label ("monday dinner").
type MealPlanRecipe struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	MealPlanID uint   `gorm:"not null;index" json:"meal_plan_id"`
	RecipeID   uint   `gorm:"not null;index" json:"recipe_id"`
	Recipe     Recipe `gorm:"foreignKey:RecipeID" json:"recipe"`
	DayTime    string `gorm:"size:50" json:"day_time"`
}

type ShoppingList struct {
	ID          uint               `gorm:"primarykey" json:"id"`
	UserID      uint               `gorm:"not null;index" json:"user_id"`
	Title       string             `gorm:"size:255;not null" json:"title"`
	Description string             `gorm:"type:text" json:"description"`
	Items       []ShoppingListItem `gorm:"foreignKey:ShoppingListID" json:"items,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type ShoppingListItem struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	ShoppingListID uint       `gorm:"not null;index" json:"shopping_list_id"`
	IngredientID   uint       `gorm:"not null;index" json:"ingredient_id"`
	Ingredient     Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `gorm:"size:20" json:"unit"`
}
