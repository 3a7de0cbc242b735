package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/backend/internal/filter"
	"github.com/forkful/backend/internal/testdb"
)

func TestSaveAndListSaved(t *testing.T) {
	db := testdb.New(t)
	svc := NewFavoriteService(db)
	userID := uuid.New()

	first := seedRecipe(t, db, nil)
	second := seedRecipe(t, db, nil)

	require.NoError(t, svc.SaveRecipe(context.Background(), userID, first.ID))
	require.NoError(t, svc.SaveRecipe(context.Background(), userID, second.ID))

	saved, err := svc.ListSaved(context.Background(), userID, filter.Criteria{})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, first.ID, saved[0].ID)
	assert.Equal(t, second.ID, saved[1].ID)
}

func TestSaveRecipeIdempotent(t *testing.T) {
	db := testdb.New(t)
	svc := NewFavoriteService(db)
	userID := uuid.New()
	recipe := seedRecipe(t, db, nil)

	require.NoError(t, svc.SaveRecipe(context.Background(), userID, recipe.ID))
	require.NoError(t, svc.SaveRecipe(context.Background(), userID, recipe.ID))

	saved, err := svc.ListSaved(context.Background(), userID, filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestSaveMissingRecipe(t *testing.T) {
	db := testdb.New(t)
	svc := NewFavoriteService(db)

	err := svc.SaveRecipe(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestUnsaveRecipe(t *testing.T) {
	db := testdb.New(t)
	svc := NewFavoriteService(db)
	userID := uuid.New()
	recipe := seedRecipe(t, db, nil)

	require.NoError(t, svc.SaveRecipe(context.Background(), userID, recipe.ID))
	require.NoError(t, svc.UnsaveRecipe(context.Background(), userID, recipe.ID))

	saved, err := svc.ListSaved(context.Background(), userID, filter.Criteria{})
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestListSavedAppliesCriteria(t *testing.T) {
	db := testdb.New(t)
	svc := NewFavoriteService(db)
	userID := uuid.New()

	recipe := seedRecipe(t, db, nil)
	require.NoError(t, svc.SaveRecipe(context.Background(), userID, recipe.ID))

	saved, err := svc.ListSaved(context.Background(), userID, filter.Criteria{SearchTerm: "nothing like this"})
	require.NoError(t, err)
	assert.Empty(t, saved)
}
