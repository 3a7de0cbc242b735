package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedRecipe links a user to a recipe they saved to their profile.
type SavedRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_user_recipe" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_user_recipe" json:"user_id"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}

func (sr *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if sr.ID == uuid.Nil {
		sr.ID = uuid.New()
	}
	return nil
}
