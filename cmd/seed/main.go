package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cookbookd/backend/config"
	"github.com/cookbookd/backend/internal/database"
	"github.com/cookbookd/backend/internal/logger"
	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

// Seeds the database with fake users, a small ingredient catalog and a
// batch of recipes. Development only.
func main() {
	users := flag.Int("users", 5, "number of users to create")
	recipes := flag.Int("recipes", 20, "number of recipes to create")
	flag.Parse()

	logger.Init()
	defer logger.Sync()
	log := logger.L()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("loading configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal("connecting to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("running migrations", zap.Error(err))
	}

	ctx := context.Background()
	gofakeit.Seed(0)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hashing seed password", zap.Error(err))
	}

	var userIDs []uint
	for i := 0; i < *users; i++ {
		user := models.User{
			UserName:     gofakeit.Username(),
			Email:        gofakeit.Email(),
			PasswordHash: string(hash),
			FirstName:    gofakeit.FirstName(),
			LastName:     gofakeit.LastName(),
			Description:  gofakeit.Sentence(8),
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			log.Warn("skipping user", zap.Error(err))
			continue
		}
		userIDs = append(userIDs, user.ID)
	}
	if len(userIDs) == 0 {
		log.Fatal("no users created")
	}

	ingredientSvc := service.NewIngredientService(db)
	var ingredientIDs []uint
	for _, seed := range []struct {
		name     string
		itype    string
		calories float64
	}{
		{"tomato", models.IngredientTypeVegan, 18},
		{"onion", models.IngredientTypeVegan, 40},
		{"garlic", models.IngredientTypeVegan, 149},
		{"chicken breast", models.IngredientTypeHalal, 165},
		{"ground beef", models.IngredientTypeUnTagged, 250},
		{"mozzarella", models.IngredientTypeVegetarian, 280},
		{"basil", models.IngredientTypeVegan, 23},
		{"olive oil", models.IngredientTypeVegan, 884},
		{"flour", models.IngredientTypeVegan, 364},
		{"egg", models.IngredientTypeVegetarian, 155},
	} {
		ingredient, err := ingredientSvc.Add(ctx, types.AddIngredientRequest{
			Name:            seed.name,
			IngredientType:  seed.itype,
			CaloriesPer100g: seed.calories,
		})
		if err != nil {
			log.Warn("skipping ingredient", zap.String("name", seed.name), zap.Error(err))
			continue
		}
		ingredientIDs = append(ingredientIDs, ingredient.ID)
	}

	recipeSvc := service.NewRecipeService(db)
	units := []string{"g", "kg", "oz", "cup", "tbsp"}
	created := 0
	for i := 0; i < *recipes; i++ {
		n := gofakeit.Number(2, 5)
		if n > len(ingredientIDs) {
			n = len(ingredientIDs)
		}
		idxs := indexes(len(ingredientIDs))
		gofakeit.ShuffleInts(idxs)
		entries := make([]types.RecipeIngredientEntry, 0, n)
		for _, idx := range idxs[:n] {
			entries = append(entries, types.RecipeIngredientEntry{
				IngredientID: ingredientIDs[idx],
				Quantity:     gofakeit.Float64Range(10, 500),
				Unit:         units[gofakeit.Number(0, len(units)-1)],
				Note:         gofakeit.Word(),
			})
		}

		_, err := recipeSvc.Create(ctx, userIDs[gofakeit.Number(0, len(userIDs)-1)], types.CreateRecipeRequest{
			Title:           fmt.Sprintf("%s %s", gofakeit.Adjective(), gofakeit.Dinner()),
			Description:     gofakeit.Sentence(12),
			Instructions:    gofakeit.Paragraph(2, 4, 10, " "),
			CountryOfOrigin: models.Cuisines()[gofakeit.Number(0, len(models.Cuisines())-1)],
			Type:            models.RecipeTypes()[gofakeit.Number(0, len(models.RecipeTypes())-1)],
			Ingredients:     entries,
		})
		if err != nil {
			log.Warn("skipping recipe", zap.Error(err))
			continue
		}
		created++
	}

	log.Info("seed complete",
		zap.Int("users", len(userIDs)),
		zap.Int("ingredients", len(ingredientIDs)),
		zap.Int("recipes", created),
	)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
