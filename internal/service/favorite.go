package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/backend/internal/filter"
	"github.com/forkful/backend/internal/models"
)

// FavoriteService manages the recipes a user has saved to their profile.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// SaveRecipe adds a recipe to the user's saved list. Saving twice is a no-op.
func (s *FavoriteService) SaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	var existing models.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	saved := models.SavedRecipe{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := s.db.WithContext(ctx).Create(&saved).Error; err != nil {
		// A concurrent save slipping past the existence check is still a
		// no-op, not a failure.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// UnsaveRecipe removes a recipe from the user's saved list.
func (s *FavoriteService) UnsaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.SavedRecipe{}).Error
}

// ListSaved returns the user's saved recipes, narrowed by the criteria, in
// the order they were saved.
func (s *FavoriteService) ListSaved(ctx context.Context, userID uuid.UUID, criteria filter.Criteria) ([]models.Recipe, error) {
	var saved []models.SavedRecipe
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&saved).Error; err != nil {
		return nil, err
	}
	if len(saved) == 0 {
		return []models.Recipe{}, nil
	}

	ids := make([]uuid.UUID, len(saved))
	for i, sr := range saved {
		ids[i] = sr.RecipeID
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}

	// Restore save order; the IN query gives no ordering guarantee.
	byID := make(map[uuid.UUID]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	ordered := make([]models.Recipe, 0, len(recipes))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}

	return filter.Apply(ordered, criteria), nil
}
