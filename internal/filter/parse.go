package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseCriteria builds a Criteria from request query parameters. Malformed
// numeric values are treated as "no constraint" so a buggy client degrades
// to a broader search instead of an error.
func ParseCriteria(values url.Values) Criteria {
	c := Criteria{
		SearchTerm:          strings.TrimSpace(values.Get("searchTerm")),
		CuisineType:         strings.TrimSpace(values.Get("cuisineType")),
		DifficultyLevel:     strings.TrimSpace(values.Get("difficultyLevel")),
		MealType:            strings.TrimSpace(values.Get("mealType")),
		CookingMethod:       strings.TrimSpace(values.Get("cookingMethod")),
		ProteinType:         strings.TrimSpace(values.Get("proteinType")),
		DietaryRestrictions: strings.TrimSpace(values.Get("dietaryRestrictions")),
		ApproxTime:          strings.TrimSpace(values.Get("approxTime")),
	}

	if raw := values.Get("minRating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			c.MinRating = v
		}
	}

	if raw := values.Get("calories"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			c.MaxCalories = v
		}
	}

	return c
}
