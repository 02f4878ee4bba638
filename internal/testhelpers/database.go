package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cookbookd/backend/internal/database"
	"github.com/cookbookd/backend/internal/models"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test so parallel tests stay isolated
	// while gorm's pool still sees the same schema on every connection.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateTestUser inserts a user with the given credentials.
func CreateTestUser(t *testing.T, db *gorm.DB, userName, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		UserName:     userName,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestIngredient inserts a catalog entry under the given name as-is.
func CreateTestIngredient(t *testing.T, db *gorm.DB, name, ingredientType string, calories float64) *models.Ingredient {
	t.Helper()

	ingredient := &models.Ingredient{
		Name:            name,
		IngredientType:  ingredientType,
		CaloriesPer100g: calories,
	}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

// CreateTestRecipe inserts a recipe owned by userID with no ingredients.
func CreateTestRecipe(t *testing.T, db *gorm.DB, userID uint, title string) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		Title:           title,
		Description:     fmt.Sprintf("%s description", title),
		Instructions:    "mix and cook",
		CountryOfOrigin: models.CuisineItalian,
		Type:            models.RecipeTypeDinner,
		UserID:          userID,
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}
