package types

import "time"

// SignupRequest is the body of POST /user/signup.
type SignupRequest struct {
	UserName    string `json:"userName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Description string `json:"description"`
}

// LoginRequest is the body of POST /user/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by signup and login. The token is also set as an
// http-only cookie; clients may use either.
type AuthResponse struct {
	ID          uint   `json:"id"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Description string `json:"description,omitempty"`
	Token       string `json:"token"`
}

// UserResponse is the public view of a user. It never carries the password
// hash or any other credential material.
type UserResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// AddIngredientRequest is the body of POST /ingredients.
type AddIngredientRequest struct {
	Name            string  `json:"name" binding:"required"`
	IngredientType  string  `json:"ingredientType" binding:"required"`
	CaloriesPer100g float64 `json:"caloriesPer100g"`
}

// RecipeIngredientEntry is one ingredient reference inside a recipe create
// request, carrying the per-recipe quantity, unit and note.
type RecipeIngredientEntry struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Note         string  `json:"note"`
}

// CreateRecipeRequest is the body of POST /recipes.
type CreateRecipeRequest struct {
	Title           string                  `json:"title" binding:"required"`
	Description     string                  `json:"description"`
	Instructions    string                  `json:"instructions"`
	CountryOfOrigin string                  `json:"country_of_origin"`
	Type            string                  `json:"type"`
	Ingredients     []RecipeIngredientEntry `json:"ingredients"`
}

// FavoriteRequest is the body of favorites add/remove.
type FavoriteRequest struct {
	UserID   uint `json:"userId"`
	RecipeID uint `json:"recipeId"`
}

// CreateCommentRequest is the body of POST /recipes/:id/comments.
type CreateCommentRequest struct {
	Comment         string `json:"comment" binding:"required"`
	ParentCommentID *uint  `json:"parent_comment_id"`
}

// RateRecipeRequest is the body of PUT /recipes/:id/rating.
type RateRecipeRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// CreateMealPlanRequest is the body of POST /meal-plans. Dates are RFC 3339.
type CreateMealPlanRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// AddMealPlanRecipeRequest schedules a recipe in a plan.
type AddMealPlanRecipeRequest struct {
	RecipeID uint   `json:"recipe_id" binding:"required"`
	DayTime  string `json:"day_time"`
}

// CreateShoppingListRequest is the body of POST /shopping-lists.
type CreateShoppingListRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}
