package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserName       string         `gorm:"size:50;not null;uniqueIndex:idx_users_user_name,where:deleted_at IS NULL" json:"userName"`
	Email          string         `gorm:"size:255;not null;uniqueIndex:idx_users_email,where:deleted_at IS NULL" json:"email"`
	PasswordHash   string         `gorm:"not null" json:"-"`
	FirstName      string         `gorm:"size:100" json:"firstName"`
	LastName       string         `gorm:"size:100" json:"lastName"`
	Description    string         `gorm:"type:text" json:"description"`
	ProfilePhotoID *uint          `json:"profile_photo_id,omitempty"`
	ProfilePhoto   *ImageURL      `gorm:"foreignKey:ProfilePhotoID" json:"profile_photo,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Follow links a follower to the user they follow. One row per pair.
type Follow struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"follower_id"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
