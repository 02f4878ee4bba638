package models

// Cuisine values accepted for a recipe's country of origin.
const (
	CuisineItalian  = "Italian"
	CuisineMexican  = "Mexican"
	CuisineFrench   = "French"
	CuisineEnglish  = "English"
	CuisineChinese  = "Chinese"
	CuisineLebanese = "Lebanese"
)

// Dietary tags for catalog ingredients.
const (
	IngredientTypeUnTagged   = "UnTagged"
	IngredientTypeVegan      = "Vegan"
	IngredientTypeVegetarian = "Vegetarian"
	IngredientTypeHalal      = "Halal"
)

// Meal categories for recipes.
const (
	RecipeTypeBreakfast = "Breakfast"
	RecipeTypeSnack     = "Snack"
	RecipeTypeDinner    = "Dinner"
	RecipeTypeLunch     = "Lunch"
	RecipeTypeDessert   = "Dessert"
)

func Cuisines() []string {
	return []string{
		CuisineItalian,
		CuisineMexican,
		CuisineFrench,
		CuisineEnglish,
		CuisineChinese,
		CuisineLebanese,
	}
}

func IngredientTypes() []string {
	return []string{
		IngredientTypeUnTagged,
		IngredientTypeVegan,
		IngredientTypeVegetarian,
		IngredientTypeHalal,
	}
}

func RecipeTypes() []string {
	return []string{
		RecipeTypeBreakfast,
		RecipeTypeSnack,
		RecipeTypeDinner,
		RecipeTypeLunch,
		RecipeTypeDessert,
	}
}

func ValidCuisine(v string) bool {
	return contains(Cuisines(), v)
}

func ValidIngredientType(v string) bool {
	return contains(IngredientTypes(), v)
}

func ValidRecipeType(v string) bool {
	return contains(RecipeTypes(), v)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
