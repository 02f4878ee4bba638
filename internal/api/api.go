package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cookbookd/backend/config"
	"github.com/cookbookd/backend/internal/service"
)

// Services bundles everything the route tree depends on.
type Services struct {
	Auth       *service.AuthService
	Ingredient *service.IngredientService
	Recipe     *service.RecipeService
	Nutrition  *service.NutritionService
	Comment    *service.CommentService
	MealPlan   *service.MealPlanService
	Shopping   *service.ShoppingListService
	Follow     *service.FollowService
	Image      *service.ImageService
}

// NewServices builds the full service set from shared infrastructure.
func NewServices(db *gorm.DB, redisClient *redis.Client, s3cfg *config.S3Config, cfg *config.Config) *Services {
	var imageSvc *service.ImageService
	if s3cfg != nil {
		imageSvc = service.NewImageService(db, s3cfg.Client, s3cfg.BucketName, cfg.AWSRegion)
	} else {
		imageSvc = service.NewImageService(db, nil, "", "")
	}

	return &Services{
		Auth:       service.NewAuthService(db, redisClient, cfg.JWTSecret),
		Ingredient: service.NewIngredientService(db),
		Recipe:     service.NewRecipeService(db),
		Nutrition:  service.NewNutritionService(db),
		Comment:    service.NewCommentService(db),
		MealPlan:   service.NewMealPlanService(db),
		Shopping:   service.NewShoppingListService(db),
		Follow:     service.NewFollowService(db),
		Image:      imageSvc,
	}
}

// RegisterRoutes mounts every handler plus the health endpoint.
func RegisterRoutes(router gin.IRouter, svcs *Services) {
	validator := svcs.Auth

	NewAuthHandler(svcs.Auth).RegisterRoutes(router)
	NewIngredientHandler(svcs.Ingredient, validator).RegisterRoutes(router)
	NewRecipeHandler(svcs.Recipe, svcs.Nutrition, validator).RegisterRoutes(router)
	NewCommentHandler(svcs.Comment, validator).RegisterRoutes(router)
	NewPlannerHandler(svcs.MealPlan, svcs.Shopping, validator).RegisterRoutes(router)
	NewSocialHandler(svcs.Follow, validator).RegisterRoutes(router)
	NewImageHandler(svcs.Image, validator).RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
