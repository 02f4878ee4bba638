package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/testhelpers"
)

func TestNutritionEstimate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewNutritionService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "alice", "alice@example.com", "password123")
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, "Pasta")

	flour := testhelpers.CreateTestIngredient(t, db, "flour", models.IngredientTypeVegan, 364)
	oil := testhelpers.CreateTestIngredient(t, db, "olive oil", models.IngredientTypeVegan, 884)
	basil := testhelpers.CreateTestIngredient(t, db, "basil", models.IngredientTypeVegan, 23)

	for _, row := range []models.RecipeIngredient{
		{RecipeID: recipe.ID, IngredientID: flour.ID, Quantity: 0.5, Unit: "kg"},
		{RecipeID: recipe.ID, IngredientID: oil.ID, Quantity: 50, Unit: "G"},
		{RecipeID: recipe.ID, IngredientID: basil.ID, Quantity: 1, Unit: "bunch"},
	} {
		require.NoError(t, db.Create(&row).Error)
	}

	estimate, err := svc.Estimate(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, estimate.Ingredients, 3)

	byName := map[string]service.IngredientCalories{}
	for _, item := range estimate.Ingredients {
		byName[item.Name] = item
	}

	// 0.5 kg of flour at 364 kcal per 100g.
	assert.InDelta(t, 500, byName["flour"].Grams, 0.001)
	assert.InDelta(t, 1820, byName["flour"].Calories, 0.001)
	assert.True(t, byName["flour"].Estimated)

	// Unit lookup is case-insensitive.
	assert.InDelta(t, 442, byName["olive oil"].Calories, 0.001)

	// "bunch" is not convertible; it contributes nothing.
	assert.False(t, byName["basil"].Estimated)
	assert.Zero(t, byName["basil"].Calories)

	assert.InDelta(t, 2262, estimate.TotalCalories, 0.001)
}

func TestNutritionEstimateSkipsDeletedIngredient(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewNutritionService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "alice", "alice@example.com", "password123")
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, "Pasta")

	flour := testhelpers.CreateTestIngredient(t, db, "flour", models.IngredientTypeVegan, 364)
	require.NoError(t, db.Create(&models.RecipeIngredient{
		RecipeID: recipe.ID, IngredientID: flour.ID, Quantity: 200, Unit: "g",
	}).Error)
	require.NoError(t, db.Delete(&models.Ingredient{}, flour.ID).Error)

	estimate, err := svc.Estimate(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, estimate.Ingredients, 1)

	// The join row survives but its catalog entry is gone, so no figure can
	// be derived even though the unit converts.
	assert.False(t, estimate.Ingredients[0].Estimated)
	assert.Zero(t, estimate.Ingredients[0].Calories)
	assert.Zero(t, estimate.TotalCalories)
}

func TestNutritionEstimateMissingRecipe(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewNutritionService(db)

	_, err := svc.Estimate(context.Background(), 9999)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}
