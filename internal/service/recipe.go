package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forkful/backend/internal/cache"
	"github.com/forkful/backend/internal/filter"
	"github.com/forkful/backend/internal/models"
	"github.com/forkful/backend/internal/types"
)

// RecipeService handles recipe CRUD and catalog search.
type RecipeService struct {
	db    *gorm.DB
	cache *cache.RecipeCache
}

// NewRecipeService creates a new RecipeService instance. The cache may be nil.
func NewRecipeService(db *gorm.DB, recipeCache *cache.RecipeCache) *RecipeService {
	return &RecipeService{
		db:    db,
		cache: recipeCache,
	}
}

// CreateRecipe validates and stores a new recipe owned by the given user.
func (s *RecipeService) CreateRecipe(ctx context.Context, createdBy string, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" || len(req.Ingredients) == 0 || len(req.Instructions) == 0 {
		return nil, ErrValidation
	}

	recipe := models.Recipe{
		ID:                  uuid.New(),
		Title:               req.Title,
		Ingredients:         req.Ingredients,
		Instructions:        req.Instructions,
		CreatedBy:           createdBy,
		ApproxTime:          req.ApproxTime,
		Servings:            req.Servings,
		ImageURL:            req.ImageURL,
		CuisineType:         req.CuisineType,
		DifficultyLevel:     req.DifficultyLevel,
		CookingMethod:       req.CookingMethod,
		ProteinType:         req.ProteinType,
		MealType:            req.MealType,
		DietaryRestrictions: req.DietaryRestrictions,
		Calories:            req.Calories,
		Ratings:             models.RatingList{},
		Comments:            models.CommentList{},
	}
	recipe.RecalculateAverageRating()

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return &recipe, nil
}

// GetRecipe retrieves a recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe applies an owner's edits to their recipe. Only the editable
// columns are written, under the same row lock as rating submission, so a
// vote landing mid-edit is never clobbered by a full-row write.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, caller string, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" || len(req.Ingredients) == 0 || len(req.Instructions) == 0 {
		return nil, ErrValidation
	}

	var recipe models.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := query.First(&recipe, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}
		if recipe.CreatedBy != caller {
			return ErrUnauthorized
		}

		recipe.Title = req.Title
		recipe.Ingredients = req.Ingredients
		recipe.Instructions = req.Instructions
		recipe.ApproxTime = req.ApproxTime
		recipe.Servings = req.Servings
		recipe.ImageURL = req.ImageURL
		recipe.CuisineType = req.CuisineType
		recipe.DifficultyLevel = req.DifficultyLevel
		recipe.CookingMethod = req.CookingMethod
		recipe.ProteinType = req.ProteinType
		recipe.MealType = req.MealType
		recipe.DietaryRestrictions = req.DietaryRestrictions
		recipe.Calories = req.Calories

		return tx.Model(&models.Recipe{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"title":                recipe.Title,
				"ingredients":          recipe.Ingredients,
				"instructions":         recipe.Instructions,
				"approx_time":          recipe.ApproxTime,
				"servings":             recipe.Servings,
				"image_url":            recipe.ImageURL,
				"cuisine_type":         recipe.CuisineType,
				"difficulty_level":     recipe.DifficultyLevel,
				"cooking_method":       recipe.CookingMethod,
				"protein_type":         recipe.ProteinType,
				"meal_type":            recipe.MealType,
				"dietary_restrictions": recipe.DietaryRestrictions,
				"calories":             recipe.Calories,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return &recipe, nil
}

// DeleteRecipe removes a recipe. Permitted for the owner, or for an admin
// acting as moderator.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID, caller string, isAdmin bool) error {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if recipe.CreatedBy != caller && !isAdmin {
		return ErrUnauthorized
	}

	if err := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error; err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	return nil
}

// SearchRecipes returns the recipes matching the criteria, in catalog order.
// The full catalog is served from the Redis cache when warm; filtering always
// happens in memory against an immutable snapshot.
func (s *RecipeService) SearchRecipes(ctx context.Context, criteria filter.Criteria) ([]models.Recipe, error) {
	if recipes, ok := s.cache.GetCatalog(ctx); ok {
		return filter.Apply(recipes, criteria), nil
	}

	// Start from an allocated slice so an empty catalog serializes as []
	// rather than null.
	recipes := []models.Recipe{}
	if err := s.db.WithContext(ctx).Order("created_at").Find(&recipes).Error; err != nil {
		return nil, err
	}

	s.cache.SetCatalog(ctx, recipes)
	return filter.Apply(recipes, criteria), nil
}

// ListByCreator returns a user's own uploads, narrowed by the criteria.
func (s *RecipeService) ListByCreator(ctx context.Context, creator string, criteria filter.Criteria) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if err := s.db.WithContext(ctx).Where("created_by = ?", creator).Order("created_at").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return filter.Apply(recipes, criteria), nil
}
