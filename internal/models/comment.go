package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a recipe comment. Replies reference their parent through
// ParentCommentID; root comments have a nil parent.
type Comment struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	RecipeID        uint           `gorm:"not null;index" json:"recipe_id"`
	Comment         string         `gorm:"type:text;not null" json:"comment"`
	ParentCommentID *uint          `gorm:"index" json:"parent_comment_id,omitempty"`
	Replies         []Comment      `gorm:"foreignKey:ParentCommentID" json:"replies,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
