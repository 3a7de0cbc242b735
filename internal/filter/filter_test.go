package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/backend/internal/models"
)

func catalog() []models.Recipe {
	return []models.Recipe{
		{
			Title:               "Grilled Chicken",
			CreatedBy:           "alice",
			CuisineType:         "American",
			DifficultyLevel:     "Easy",
			MealType:            "Dinner",
			CookingMethod:       "Grilling",
			ProteinType:         "Chicken",
			DietaryRestrictions: models.JSONBStringArray{"Gluten-Free"},
			ApproxTime:          "0 - 30 minutes",
			Calories:            420,
			AverageRating:       4.5,
		},
		{
			Title:           "Beef Stew",
			CreatedBy:       "joe",
			CuisineType:     "American",
			DifficultyLevel: "Medium",
			MealType:        "Dinner",
			CookingMethod:   "Slow Cooker",
			ProteinType:     "Beef",
			Calories:        650,
			AverageRating:   3,
		},
		{
			Title:               "Margherita Pizza",
			CreatedBy:           "chickenlover99",
			CuisineType:         "Italian",
			DifficultyLevel:     "Medium",
			MealType:            "Dinner",
			CookingMethod:       "Baking",
			ProteinType:         "Vegetarian",
			DietaryRestrictions: models.JSONBStringArray{"Vegetarian"},
			AverageRating:       5,
		},
		{
			Title:           "Pasta Carbonara",
			CreatedBy:       "mario",
			CuisineType:     "Italian",
			DifficultyLevel: "Hard",
			MealType:        "Dinner",
			ProteinType:     "Pork",
			Calories:        900,
			AverageRating:   2,
		},
	}
}

func titles(recipes []models.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Title
	}
	return out
}

func TestApplyNoCriteriaIsIdentity(t *testing.T) {
	recipes := catalog()
	got := Apply(recipes, Criteria{})
	assert.Equal(t, titles(recipes), titles(got))
}

func TestApplyPreservesOrder(t *testing.T) {
	got := Apply(catalog(), Criteria{MealType: "Dinner"})
	assert.Equal(t, []string{"Grilled Chicken", "Beef Stew", "Margherita Pizza", "Pasta Carbonara"}, titles(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	recipes := catalog()
	_ = Apply(recipes, Criteria{SearchTerm: "chicken"})
	assert.Equal(t, titles(catalog()), titles(recipes))
}

func TestSearchTermMatchesTitleOrCreator(t *testing.T) {
	got := Apply(catalog(), Criteria{SearchTerm: "chicken"})
	// Matches the title "Grilled Chicken" and the creator "chickenlover99",
	// but not "Beef Stew" by "joe".
	assert.Equal(t, []string{"Grilled Chicken", "Margherita Pizza"}, titles(got))
}

func TestSearchTermCaseInsensitive(t *testing.T) {
	got := Apply(catalog(), Criteria{SearchTerm: "GRILLED"})
	assert.Equal(t, []string{"Grilled Chicken"}, titles(got))
}

func TestCuisineAndMinRatingConjunction(t *testing.T) {
	got := Apply(catalog(), Criteria{CuisineType: "Italian", MinRating: 4})
	assert.Equal(t, []string{"Margherita Pizza"}, titles(got))
}

func TestMinRatingZeroMeansNoFilter(t *testing.T) {
	got := Apply(catalog(), Criteria{MinRating: 0, MealType: "Dinner"})
	assert.Len(t, got, 4)
}

func TestMissingSingleValueFieldExcluded(t *testing.T) {
	recipes := []models.Recipe{
		{Title: "Typed", CuisineType: "Thai"},
		{Title: "Untyped"},
	}
	got := Apply(recipes, Criteria{CuisineType: "Thai"})
	assert.Equal(t, []string{"Typed"}, titles(got))
}

func TestDietaryRestrictionsAnyMatch(t *testing.T) {
	got := Apply(catalog(), Criteria{DietaryRestrictions: "gluten"})
	assert.Equal(t, []string{"Grilled Chicken"}, titles(got))

	got = Apply(catalog(), Criteria{DietaryRestrictions: "Paleo"})
	assert.Empty(t, got)
}

func TestApproxTimeExactMatch(t *testing.T) {
	got := Apply(catalog(), Criteria{ApproxTime: "0 - 30 minutes"})
	assert.Equal(t, []string{"Grilled Chicken"}, titles(got))

	// Substring of a bucket is not a match.
	got = Apply(catalog(), Criteria{ApproxTime: "30 minutes"})
	assert.Empty(t, got)
}

func TestCaloriesThreshold(t *testing.T) {
	got := Apply(catalog(), Criteria{MaxCalories: 500})
	assert.Equal(t, []string{"Grilled Chicken"}, titles(got))
}

func TestCaloriesThresholdExcludesUndeclared(t *testing.T) {
	// Margherita Pizza declares no calories and must not pass an active
	// calorie filter.
	got := Apply(catalog(), Criteria{MaxCalories: 1000})
	assert.NotContains(t, titles(got), "Margherita Pizza")
}

func TestConjunctionComposes(t *testing.T) {
	recipes := catalog()
	c1 := Criteria{CuisineType: "Italian"}
	c2 := Criteria{MinRating: 4}
	combined := Criteria{CuisineType: "Italian", MinRating: 4}

	sequential := Apply(Apply(recipes, c1), c2)
	atOnce := Apply(recipes, combined)
	assert.Equal(t, titles(atOnce), titles(sequential))
}

func TestNoMatchYieldsEmptyNotError(t *testing.T) {
	got := Apply(catalog(), Criteria{SearchTerm: "no such recipe anywhere"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseCriteria(t *testing.T) {
	values := url.Values{}
	values.Set("searchTerm", " chicken ")
	values.Set("cuisineType", "Italian")
	values.Set("minRating", "3.5")
	values.Set("calories", "500")

	c := ParseCriteria(values)
	assert.Equal(t, "chicken", c.SearchTerm)
	assert.Equal(t, "Italian", c.CuisineType)
	assert.Equal(t, 3.5, c.MinRating)
	assert.Equal(t, 500, c.MaxCalories)
}

func TestParseCriteriaMalformedNumbersAreNoConstraint(t *testing.T) {
	values := url.Values{}
	values.Set("minRating", "not-a-number")
	values.Set("calories", "lots")

	c := ParseCriteria(values)
	assert.Zero(t, c.MinRating)
	assert.Zero(t, c.MaxCalories)
	assert.True(t, c.IsZero())
}
