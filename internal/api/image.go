package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/service"
)

const maxImageBytes = 10 << 20

// ImageHandler serves recipe image uploads.
type ImageHandler struct {
	images    *service.ImageService
	validator middleware.TokenValidator
}

func NewImageHandler(images *service.ImageService, validator middleware.TokenValidator) *ImageHandler {
	return &ImageHandler{images: images, validator: validator}
}

func (h *ImageHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/recipes/:id/images", middleware.RequireAuth(h.validator), h.Upload)
}

func (h *ImageHandler) Upload(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	image, err := h.images.UploadRecipeImage(c.Request.Context(), recipeID, data, contentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": image.ID, "url": image.URL})
}
