package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Rating is a single user's score for a recipe. A user has at most one
// entry per recipe; resubmitting replaces the value in place.
type Rating struct {
	User  string  `json:"user"`
	Value float64 `json:"value"`
}

// RatingList is stored as a JSONB column on the recipe row so the list and
// the derived average commit in the same row write.
type RatingList []Rating

func (r RatingList) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	return json.Marshal(r)
}

func (r *RatingList) Scan(value interface{}) error {
	if value == nil {
		*r = RatingList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, r)
}

// Reply has the same shape as a comment minus nesting.
type Reply struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is owned by its recipe; replies are owned by the comment.
// Deletion is permitted only to the original author.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Replies   []Reply   `json:"replies"`
}

// CommentList is stored as a JSONB column on the recipe row.
type CommentList []Comment

func (c CommentList) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	return json.Marshal(c)
}

func (c *CommentList) Scan(value interface{}) error {
	if value == nil {
		*c = CommentList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, c)
}

// Recipe is self-contained: ratings and comments are embedded so a single
// row write commits the ratings list together with the recomputed average.
type Recipe struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	DeletedAt           gorm.DeletedAt   `gorm:"index" json:"-"`
	Title               string           `gorm:"size:255;not null" json:"title"`
	Ingredients         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	CreatedBy           string           `gorm:"size:50;not null;index" json:"createdBy"`
	ApproxTime          string           `gorm:"size:50" json:"approxTime"`
	Servings            int              `json:"servings"`
	ImageURL            string           `gorm:"size:255" json:"imageUrl"`
	CuisineType         string           `gorm:"size:50" json:"cuisineType"`
	DifficultyLevel     string           `gorm:"size:50" json:"difficultyLevel"`
	CookingMethod       string           `gorm:"size:50" json:"cookingMethod"`
	ProteinType         string           `gorm:"size:50" json:"proteinType"`
	MealType            string           `gorm:"size:50" json:"mealType"`
	DietaryRestrictions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietaryRestrictions"`
	Calories            int              `json:"calories"`
	Ratings             RatingList       `gorm:"type:jsonb;not null;default:'[]'" json:"ratings"`
	AverageRating       float64          `json:"averageRating"`
	Comments            CommentList      `gorm:"type:jsonb;not null;default:'[]'" json:"comments"`
}

// BeforeCreate assigns an ID when the caller didn't. Generating it in the
// application keeps the schema portable across postgres and sqlite.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecalculateAverageRating keeps AverageRating equal to the mean of all
// rating entries, or exactly 0 when there are none. Every write path that
// touches Ratings must call this before saving.
func (r *Recipe) RecalculateAverageRating() {
	if len(r.Ratings) == 0 {
		r.AverageRating = 0
		return
	}
	var total float64
	for _, rating := range r.Ratings {
		total += rating.Value
	}
	r.AverageRating = total / float64(len(r.Ratings))
}
