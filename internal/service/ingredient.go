package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jinzhu/inflection"
	"gorm.io/gorm"

	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/types"
)

var (
	ErrIngredientExists      = errors.New("ingredient already exists")
	ErrIngredientNotFound    = errors.New("ingredient not found")
	ErrInvalidIngredientType = errors.New("invalid ingredient type")
)

// IngredientService manages the shared ingredient catalog. Names are stored
// normalized so "Tomatoes" and "tomato" resolve to the same row.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// NormalizeIngredientName trims, lowercases and singularizes a name.
func NormalizeIngredientName(name string) string {
	return inflection.Singular(strings.ToLower(strings.TrimSpace(name)))
}

// Add inserts a new catalog entry under the normalized name.
func (s *IngredientService) Add(ctx context.Context, req types.AddIngredientRequest) (*models.Ingredient, error) {
	if !models.ValidIngredientType(req.IngredientType) {
		return nil, ErrInvalidIngredientType
	}

	ingredient := models.Ingredient{
		Name:            NormalizeIngredientName(req.Name),
		IngredientType:  req.IngredientType,
		CaloriesPer100g: req.CaloriesPer100g,
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrIngredientExists
		}
		return nil, err
	}
	return &ingredient, nil
}

// Get returns a single catalog entry.
func (s *IngredientService) Get(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

// List returns a page of the catalog, optionally filtered by a substring
// match on the normalized name, together with the total match count.
func (s *IngredientService) List(ctx context.Context, page, limit int, search string) ([]models.Ingredient, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.db.WithContext(ctx).Model(&models.Ingredient{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+strings.ToLower(strings.TrimSpace(search))+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ingredients []models.Ingredient
	err := query.Order("name").Offset((page - 1) * limit).Limit(limit).Find(&ingredients).Error
	if err != nil {
		return nil, 0, err
	}
	return ingredients, total, nil
}

// Delete soft-deletes a catalog entry. Existing recipe join rows keep their
// ingredient_id; the entry simply stops resolving in lookups.
func (s *IngredientService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIngredientNotFound
	}
	return nil
}
