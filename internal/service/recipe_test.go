package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/forkful/backend/internal/filter"
	"github.com/forkful/backend/internal/models"
	"github.com/forkful/backend/internal/testdb"
	"github.com/forkful/backend/internal/types"
)

func TestCreateRecipe(t *testing.T) {
	db := testdb.New(t)
	svc := NewRecipeService(db, nil)

	recipe, err := svc.CreateRecipe(context.Background(), "alice", &types.CreateRecipeRequest{
		Title:        "Pad Thai",
		Ingredients:  []string{"rice noodles", "tamarind", "peanuts"},
		Instructions: []string{"Soak noodles", "Stir fry"},
		CuisineType:  "Thai",
		Servings:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", recipe.CreatedBy)
	assert.Equal(t, 0.0, recipe.AverageRating)

	stored, err := svc.GetRecipe(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pad Thai", stored.Title)
	assert.Equal(t, []string{"rice noodles", "tamarind", "peanuts"}, []string(stored.Ingredients))
}

func TestCreateRecipeValidation(t *testing.T) {
	db := testdb.New(t)
	svc := NewRecipeService(db, nil)

	cases := []types.CreateRecipeRequest{
		{Ingredients: []string{"a"}, Instructions: []string{"b"}},
		{Title: "No Ingredients", Instructions: []string{"b"}},
		{Title: "No Instructions", Ingredients: []string{"a"}},
		{Title: "   ", Ingredients: []string{"a"}, Instructions: []string{"b"}},
	}
	for _, req := range cases {
		_, err := svc.CreateRecipe(context.Background(), "alice", &req)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestGetRecipeNotFound(t *testing.T) {
	db := testdb.New(t)
	svc := NewRecipeService(db, nil)

	_, err := svc.GetRecipe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestUpdateRecipeOwnerOnly(t *testing.T) {
	db := testdb.New(t)
	svc := NewRecipeService(db, nil)
	recipe := seedRecipe(t, db, nil)

	req := &types.CreateRecipeRequest{
		Title:        "Renamed",
		Ingredients:  []string{"a"},
		Instructions: []string{"b"},
	}

	_, err := svc.UpdateRecipe(context.Background(), recipe.ID, "mallory", req)
	assert.ErrorIs(t, err, ErrUnauthorized)

	updated, err := svc.UpdateRecipe(context.Background(), recipe.ID, "alice", req)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestUpdateRecipeDoesNotClobberConcurrentRating(t *testing.T) {
	db := testdb.New(t)
	svc := NewRecipeService(db, nil)
	recipe := seedRecipe(t, db, nil)

	// Land a vote between the edit's read and its write, as a concurrent
	// rating submission would.
	injected := false
	err := db.Callback().Update().Before("gorm:update").Register("vote_mid_edit", func(tx *gorm.DB) {
		if injected {
			return
		}
		injected = true
		vote := models.RatingList{{User: "bob", Value: 5}}
		sess := tx.Session(&gorm.Session{NewDB: true})
		require.NoError(t, sess.Exec(
			"UPDATE recipes SET ratings = ?, average_rating = ? WHERE id = ?",
			vote, 5.0, recipe.ID,
		).Error)
	})
	require.NoError(t, err)

	_, err = svc.UpdateRecipe(context.Background(), recipe.ID, "alice", &types.CreateRecipeRequest{
		Title:        "Renamed Mid-Vote",
		Ingredients:  []string{"a"},
		Instructions: []string{"b"},
	})
	require.NoError(t, err)

	stored := reload(t, db, recipe.ID)
	assert.Equal(t, "Renamed Mid-Vote", stored.Title)
	require.Len(t, stored.Ratings, 1)
	assert.Equal(t, models.Rating{User: "bob", Value: 5}, stored.Ratings[0])
	assert.Equal(t, 5.0, stored.AverageRating)
}

func TestSearchRecipesEmptyCatalog(t *testing.T) {
	db := testdb.New(t)
	svc := NewRecipeService(db, nil)

	recipes, err := svc.SearchRecipes(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)

	mine, err := svc.ListByCreator(context.Background(), "nobody", filter.Criteria{})
	require.NoError(t, err)
	assert.NotNil(t, mine)
	assert.Empty(t, mine)
}

func TestDeleteRecipeOwnerOrAdmin(t *testing.T) {
	db := testdb.New(t)
	svc := NewRecipeService(db, nil)

	recipe := seedRecipe(t, db, nil)
	err := svc.DeleteRecipe(context.Background(), recipe.ID, "mallory", false)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.DeleteRecipe(context.Background(), recipe.ID, "alice", false))
	_, err = svc.GetRecipe(context.Background(), recipe.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	// An admin can moderate any recipe away.
	other := seedRecipe(t, db, nil)
	require.NoError(t, svc.DeleteRecipe(context.Background(), other.ID, "admin", true))
}

func TestSearchRecipesAppliesCriteria(t *testing.T) {
	db := testdb.New(t)
	svc := NewRecipeService(db, nil)

	for _, req := range []types.CreateRecipeRequest{
		{Title: "Grilled Chicken", Ingredients: []string{"chicken"}, Instructions: []string{"grill"}, CuisineType: "American"},
		{Title: "Beef Stew", Ingredients: []string{"beef"}, Instructions: []string{"stew"}, CuisineType: "American"},
		{Title: "Margherita Pizza", Ingredients: []string{"dough"}, Instructions: []string{"bake"}, CuisineType: "Italian"},
	} {
		_, err := svc.CreateRecipe(context.Background(), "alice", &req)
		require.NoError(t, err)
	}

	all, err := svc.SearchRecipes(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	italian, err := svc.SearchRecipes(context.Background(), filter.Criteria{CuisineType: "Italian"})
	require.NoError(t, err)
	require.Len(t, italian, 1)
	assert.Equal(t, "Margherita Pizza", italian[0].Title)

	none, err := svc.SearchRecipes(context.Background(), filter.Criteria{SearchTerm: "sushi"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListByCreator(t *testing.T) {
	db := testdb.New(t)
	svc := NewRecipeService(db, nil)

	for creator, title := range map[string]string{
		"alice": "Alice's Soup",
		"bob":   "Bob's Burger",
	} {
		_, err := svc.CreateRecipe(context.Background(), creator, &types.CreateRecipeRequest{
			Title:        title,
			Ingredients:  []string{"x"},
			Instructions: []string{"y"},
		})
		require.NoError(t, err)
	}

	mine, err := svc.ListByCreator(context.Background(), "alice", filter.Criteria{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Alice's Soup", mine[0].Title)
}
