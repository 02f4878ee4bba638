package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/types"
)

var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrInvalidCuisine    = errors.New("invalid cuisine")
	ErrInvalidRecipeType = errors.New("invalid recipe type")
	ErrAlreadyFavorite   = errors.New("recipe already in favorites")
	ErrFavoriteNotFound  = errors.New("favorite not found")
)

// RecipeService manages recipes, their ingredient join rows, favorites and
// ratings.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// RecipeFilter narrows List. RecipeIDs takes strict precedence: when set,
// every other filter is ignored.
type RecipeFilter struct {
	Page      int
	Limit     int
	Search    string
	Cuisine   string
	Type      string
	UserID    uint
	RecipeIDs []uint
}

// Create inserts the recipe and its ingredient join rows in one transaction,
// then re-fetches the full record so the response carries the nested
// ingredient data.
func (s *RecipeService) Create(ctx context.Context, userID uint, req types.CreateRecipeRequest) (*models.Recipe, error) {
	if req.CountryOfOrigin != "" && !models.ValidCuisine(req.CountryOfOrigin) {
		return nil, ErrInvalidCuisine
	}
	if req.Type != "" && !models.ValidRecipeType(req.Type) {
		return nil, ErrInvalidRecipeType
	}

	recipe := models.Recipe{
		Title:           req.Title,
		Description:     req.Description,
		Instructions:    req.Instructions,
		CountryOfOrigin: req.CountryOfOrigin,
		Type:            req.Type,
		UserID:          userID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Ingredients {
			var count int64
			if err := tx.Model(&models.Ingredient{}).Where("id = ?", entry.IngredientID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrIngredientNotFound
			}
		}

		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		for _, entry := range req.Ingredients {
			row := models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: entry.IngredientID,
				Quantity:     entry.Quantity,
				Unit:         entry.Unit,
				Note:         entry.Note,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, recipe.ID)
}

// Get returns a recipe with its ingredient entries and images preloaded.
func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Preload("Images").
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// List returns a page of recipes and the total match count.
func (s *RecipeService) List(ctx context.Context, f RecipeFilter) ([]models.Recipe, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	query := s.db.WithContext(ctx).Model(&models.Recipe{})
	if len(f.RecipeIDs) > 0 {
		query = query.Where("id IN ?", f.RecipeIDs)
	} else {
		if f.Search != "" {
			pattern := "%" + strings.ToLower(strings.TrimSpace(f.Search)) + "%"
			query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
		if f.Cuisine != "" {
			query = query.Where("country_of_origin = ?", f.Cuisine)
		}
		if f.Type != "" {
			query = query.Where("type = ?", f.Type)
		}
		if f.UserID != 0 {
			query = query.Where("user_id = ?", f.UserID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := query.
		Preload("Ingredients.Ingredient").
		Preload("Images").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// Delete soft-deletes a recipe.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// FavoriteIDs returns the ids of every recipe the user has favorited.
func (s *RecipeService) FavoriteIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("recipe_id").
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// AddFavorite records a favorite. The recipe must exist and must not already
// be in the user's favorites.
func (s *RecipeService) AddFavorite(ctx context.Context, userID, recipeID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrRecipeNotFound
	}

	favorite := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFavorite
		}
		return err
	}
	return nil
}

// RemoveFavorite deletes the favorite row outright so the pair can be
// favorited again later.
func (s *RecipeService) RemoveFavorite(ctx context.Context, userID, recipeID uint) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// Rate upserts the user's rating for a recipe and returns the new average.
func (s *RecipeService) Rate(ctx context.Context, userID, recipeID uint, rating int) (float64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrRecipeNotFound
	}

	row := models.Rating{UserID: userID, RecipeID: recipeID, Rating: rating}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return 0, err
	}

	return s.AverageRating(ctx, recipeID)
}

// AverageRating returns the mean rating for a recipe, 0 when unrated.
func (s *RecipeService) AverageRating(ctx context.Context, recipeID uint) (float64, error) {
	var avg *float64
	err := s.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("recipe_id = ?", recipeID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
