package models

import (
	"time"

	"gorm.io/gorm"
)

type Recipe struct {
	ID              uint               `gorm:"primarykey" json:"id"`
	Title           string             `gorm:"size:255;not null" json:"title"`
	Description     string             `gorm:"type:text" json:"description"`
	Instructions    string             `gorm:"type:text" json:"instructions"`
	CountryOfOrigin string             `gorm:"size:30" json:"country_of_origin"`
	Type            string             `gorm:"size:20" json:"type"`
	UserID          uint               `gorm:"not null;index" json:"user_id"`
	Ingredients     []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	Images          []ImageURL         `gorm:"foreignKey:RecipeID" json:"images,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`
}

// RecipeIngredient is the join row between a recipe and an ingredient. The
// quantity, unit and note belong to this pairing, not to the ingredient.
type RecipeIngredient struct {
	ID           uint       `gorm:"primarykey" json:"-"`
	RecipeID     uint       `gorm:"not null;index" json:"-"`
	IngredientID uint       `gorm:"not null;index" json:"ingredient_id"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `gorm:"size:20" json:"unit"`
	Note         string     `gorm:"type:text" json:"note"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// ImageURL stores one uploaded image location, optionally attached to a recipe.
type ImageURL struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	URL       string    `gorm:"size:255;not null;uniqueIndex" json:"url"`
	RecipeID  *uint     `gorm:"index" json:"recipe_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (ImageURL) TableName() string {
	return "image_urls"
}
