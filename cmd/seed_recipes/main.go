package main

import (
	"log"

	"github.com/google/uuid"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/database"
	"github.com/forkful/backend/internal/models"
)

// Seeds a small demo catalog for local development.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	recipes := []models.Recipe{
		{
			Title:               "Grilled Lemon Chicken",
			Ingredients:         models.JSONBStringArray{"2 chicken breasts", "1 lemon", "2 tbsp olive oil", "salt", "pepper"},
			Instructions:        models.JSONBStringArray{"Marinate chicken in lemon juice and oil", "Grill 6 minutes per side", "Rest and serve"},
			CreatedBy:           "demo",
			ApproxTime:          "0 - 30 minutes",
			Servings:            2,
			CuisineType:         "American",
			DifficultyLevel:     "Easy",
			CookingMethod:       "Grilling",
			ProteinType:         "Chicken",
			MealType:            "Dinner",
			DietaryRestrictions: models.JSONBStringArray{"Gluten-Free"},
			Calories:            420,
		},
		{
			Title:           "Margherita Pizza",
			Ingredients:     models.JSONBStringArray{"pizza dough", "tomato sauce", "fresh mozzarella", "basil"},
			Instructions:    models.JSONBStringArray{"Stretch dough", "Top with sauce and cheese", "Bake at 250C for 10 minutes", "Finish with basil"},
			CreatedBy:       "demo",
			ApproxTime:      "30 - 60 minutes",
			Servings:        4,
			CuisineType:     "Italian",
			DifficultyLevel: "Medium",
			CookingMethod:   "Baking",
			ProteinType:     "Vegetarian",
			MealType:        "Dinner",
			Calories:        850,
		},
		{
			Title:               "Green Smoothie Bowl",
			Ingredients:         models.JSONBStringArray{"1 banana", "spinach", "almond milk", "chia seeds"},
			Instructions:        models.JSONBStringArray{"Blend everything until smooth", "Top with seeds"},
			CreatedBy:           "demo",
			ApproxTime:          "0 - 30 minutes",
			Servings:            1,
			CuisineType:         "Other",
			DifficultyLevel:     "Easy",
			MealType:            "Breakfast",
			ProteinType:         "Vegan",
			DietaryRestrictions: models.JSONBStringArray{"Dairy-Free", "Gluten-Free"},
			Calories:            290,
		},
	}

	for i := range recipes {
		recipes[i].ID = uuid.New()
		recipes[i].Ratings = models.RatingList{}
		recipes[i].Comments = models.CommentList{}
		recipes[i].RecalculateAverageRating()
		if err := db.Create(&recipes[i]).Error; err != nil {
			log.Fatalf("failed to seed recipe %q: %v", recipes[i].Title, err)
		}
	}

	log.Printf("seeded %d recipes", len(recipes))
}
