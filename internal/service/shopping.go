package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/types"
)

var ErrShoppingListNotFound = errors.New("shopping list not found")

// ShoppingListService manages per-user shopping lists. Items reference
// catalog ingredients and keep the quantity/unit of the recipe entry they
// were copied from.
type ShoppingListService struct {
	db *gorm.DB
}

func NewShoppingListService(db *gorm.DB) *ShoppingListService {
	return &ShoppingListService{db: db}
}

func (s *ShoppingListService) Create(ctx context.Context, userID uint, req types.CreateShoppingListRequest) (*models.ShoppingList, error) {
	list := models.ShoppingList{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.db.WithContext(ctx).Create(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *ShoppingListService) ListByUser(ctx context.Context, userID uint) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (s *ShoppingListService) Get(ctx context.Context, userID, listID uint) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := s.db.WithContext(ctx).
		Preload("Items.Ingredient").
		Where("id = ? AND user_id = ?", listID, userID).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShoppingListNotFound
		}
		return nil, err
	}
	return &list, nil
}

// AddRecipeItems copies every ingredient entry of the recipe onto the list
// in one transaction, then returns the refreshed list.
func (s *ShoppingListService) AddRecipeItems(ctx context.Context, userID, listID, recipeID uint) (*models.ShoppingList, error) {
	if _, err := s.Get(ctx, userID, listID); err != nil {
		return nil, err
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Preload("Ingredients").First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range recipe.Ingredients {
			item := models.ShoppingListItem{
				ShoppingListID: listID,
				IngredientID:   entry.IngredientID,
				Quantity:       entry.Quantity,
				Unit:           entry.Unit,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, listID)
}

func (s *ShoppingListService) Delete(ctx context.Context, userID, listID uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", listID, userID).
		Delete(&models.ShoppingList{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShoppingListNotFound
	}
	return nil
}
