package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookbookd/backend/internal/models"
)

var ErrStorageUnavailable = errors.New("image storage is not configured")

// S3Client is the slice of the S3 API the image service uses.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageService uploads recipe images to object storage and records the
// resulting public URL on the recipe.
type ImageService struct {
	db     *gorm.DB
	client S3Client
	bucket string
	region string
}

func NewImageService(db *gorm.DB, client S3Client, bucket, region string) *ImageService {
	return &ImageService{db: db, client: client, bucket: bucket, region: region}
}

// Available reports whether uploads can be served.
func (s *ImageService) Available() bool {
	return s.client != nil && s.bucket != ""
}

// UploadRecipeImage stores the image under a fresh object key and attaches
// its URL to the recipe.
func (s *ImageService) UploadRecipeImage(ctx context.Context, recipeID uint, data []byte, contentType string) (*models.ImageURL, error) {
	if !s.Available() {
		return nil, ErrStorageUnavailable
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrRecipeNotFound
	}

	key := fmt.Sprintf("recipe-images/%d/%s%s", recipeID, uuid.NewString(), extensionFor(contentType))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}

	image := models.ImageURL{
		URL:      fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
		RecipeID: &recipeID,
	}
	if err := s.db.WithContext(ctx).Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
