// Package filter narrows a recipe collection with a set of optional,
// independently combinable criteria. Filtering is pure: it never mutates
// input records and preserves their relative order.
package filter

import (
	"strings"

	"github.com/forkful/backend/internal/models"
)

// Criteria is the set of optional filter fields a caller supplies to narrow
// a recipe search. Zero values mean "no constraint from this field". All
// supplied fields compose as a conjunction.
type Criteria struct {
	// SearchTerm matches case-insensitively as a substring against the
	// recipe title or its creator's username.
	SearchTerm string

	CuisineType         string
	DifficultyLevel     string
	MealType            string
	CookingMethod       string
	ProteinType         string
	DietaryRestrictions string

	// ApproxTime is an exact match against the recipe's time bucket.
	ApproxTime string

	// MinRating keeps recipes whose average rating is at least this value.
	// Zero (or negative) means no rating constraint.
	MinRating float64

	// MaxCalories keeps recipes with a declared calorie count strictly
	// below this threshold. Zero means no calorie constraint. Recipes
	// without a declared calorie count are excluded when the constraint
	// is active.
	MaxCalories int
}

// IsZero reports whether no field constrains the result.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Apply returns the recipes matching every supplied criterion, in their
// original relative order. An empty criteria set returns the input as is.
// Apply never errors: criteria that match nothing yield an empty slice.
func Apply(recipes []models.Recipe, c Criteria) []models.Recipe {
	if c.IsZero() {
		return recipes
	}

	matched := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if Matches(r, c) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Matches reports whether a single recipe satisfies every supplied criterion.
func Matches(r models.Recipe, c Criteria) bool {
	if c.SearchTerm != "" &&
		!containsFold(r.Title, c.SearchTerm) &&
		!containsFold(r.CreatedBy, c.SearchTerm) {
		return false
	}

	if !fieldMatches(r.CuisineType, c.CuisineType) {
		return false
	}
	if !fieldMatches(r.DifficultyLevel, c.DifficultyLevel) {
		return false
	}
	if !fieldMatches(r.MealType, c.MealType) {
		return false
	}
	if !fieldMatches(r.CookingMethod, c.CookingMethod) {
		return false
	}
	if !fieldMatches(r.ProteinType, c.ProteinType) {
		return false
	}

	if c.DietaryRestrictions != "" && !anyContainsFold(r.DietaryRestrictions, c.DietaryRestrictions) {
		return false
	}

	if c.MinRating > 0 && r.AverageRating < c.MinRating {
		return false
	}

	if c.ApproxTime != "" && r.ApproxTime != c.ApproxTime {
		return false
	}

	// Recipes with no declared calorie count do not pass an active
	// calorie threshold.
	if c.MaxCalories > 0 && (r.Calories <= 0 || r.Calories >= c.MaxCalories) {
		return false
	}

	return true
}

// fieldMatches applies the single-value field rule: an unset criterion
// always passes; a set criterion requires the recipe field to be present
// and contain the term case-insensitively.
func fieldMatches(field, term string) bool {
	if term == "" {
		return true
	}
	return field != "" && containsFold(field, term)
}

func anyContainsFold(values []string, term string) bool {
	for _, v := range values {
		if containsFold(v, term) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
