package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/types"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrInvalidParent    = errors.New("parent comment not found on this recipe")
	ErrNotCommentAuthor = errors.New("comment belongs to another user")
)

// CommentService manages threaded recipe comments.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Add posts a comment on a recipe. A reply must point at an existing comment
// on the same recipe.
func (s *CommentService) Add(ctx context.Context, userID, recipeID uint, req types.CreateCommentRequest) (*models.Comment, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrRecipeNotFound
	}

	if req.ParentCommentID != nil {
		var parent models.Comment
		err := s.db.WithContext(ctx).
			Where("id = ? AND recipe_id = ?", *req.ParentCommentID, recipeID).
			First(&parent).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidParent
			}
			return nil, err
		}
	}

	comment := models.Comment{
		UserID:          userID,
		RecipeID:        recipeID,
		Comment:         req.Comment,
		ParentCommentID: req.ParentCommentID,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListTree returns a recipe's comments as a thread: top-level comments in
// posting order, each carrying its replies.
func (s *CommentService) ListTree(ctx context.Context, recipeID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	children := make(map[uint][]int, len(comments))
	for i := range comments {
		if comments[i].ParentCommentID != nil {
			pid := *comments[i].ParentCommentID
			children[pid] = append(children[pid], i)
		}
	}

	var build func(i int) models.Comment
	build = func(i int) models.Comment {
		c := comments[i]
		c.Replies = []models.Comment{}
		for _, j := range children[c.ID] {
			c.Replies = append(c.Replies, build(j))
		}
		return c
	}

	roots := make([]models.Comment, 0, len(comments))
	for i := range comments {
		if comments[i].ParentCommentID == nil {
			roots = append(roots, build(i))
		}
	}
	return roots, nil
}

// Delete soft-deletes a comment. Only its author may remove it; replies
// survive and keep their parent reference.
func (s *CommentService) Delete(ctx context.Context, userID, commentID uint) error {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != userID {
		return ErrNotCommentAuthor
	}
	return s.db.WithContext(ctx).Delete(&comment).Error
}
