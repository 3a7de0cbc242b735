package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forkful/backend/internal/cache"
	"github.com/forkful/backend/internal/models"
)

// RatingService maintains the per-recipe rating list and its derived average.
type RatingService struct {
	db    *gorm.DB
	cache *cache.RecipeCache
}

func NewRatingService(db *gorm.DB, recipeCache *cache.RecipeCache) *RatingService {
	return &RatingService{
		db:    db,
		cache: recipeCache,
	}
}

// SubmitRating records a user's rating for a recipe and returns the
// recomputed average. A user has exactly one vote: resubmitting replaces the
// previous value in place. The ratings list and the average are written in a
// single row update inside a transaction, with the row locked on Postgres so
// concurrent submissions for different users both land and no reader can
// observe the list and the average out of step.
func (s *RatingService) SubmitRating(ctx context.Context, recipeID uuid.UUID, user string, value float64) (float64, error) {
	if value < 0 || value > 5 {
		return 0, ErrInvalidRating
	}

	var average float64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var recipe models.Recipe
		if err := query.First(&recipe, "id = ?", recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		updated := false
		for i := range recipe.Ratings {
			if recipe.Ratings[i].User == user {
				recipe.Ratings[i].Value = value
				updated = true
				break
			}
		}
		if !updated {
			recipe.Ratings = append(recipe.Ratings, models.Rating{User: user, Value: value})
		}
		recipe.RecalculateAverageRating()
		average = recipe.AverageRating

		return tx.Model(&models.Recipe{}).Where("id = ?", recipeID).
			Updates(map[string]interface{}{
				"ratings":        recipe.Ratings,
				"average_rating": recipe.AverageRating,
			}).Error
	})
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(ctx)
	return average, nil
}
