package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/brewshare/backend/internal/repositories"
	"github.com/pageza/brewshare/backend/internal/testhelpers"
)

func TestToggleStore(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	store := repositories.NewToggleStore(db, "recipe_likes")
	ctx := context.Background()
	user := testhelpers.CreateTestUser(t, db)
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID)

	removed, err := store.Delete(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	inserted, err := store.Insert(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, inserted)

	// A second insert of the same pair writes nothing and does not fail
	inserted, err = store.Insert(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, inserted)

	exists, err := store.Exists(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := store.CountByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	records, err := store.ListByUser(ctx, user.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, recipe.ID, records[0].RecipeID)
	assert.False(t, records[0].CreatedAt.IsZero())

	removed, err = store.Delete(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	exists, err = store.Exists(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestToggleStoreDeleteByRecipe(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	store := repositories.NewToggleStore(db, "recipe_favorites")
	ctx := context.Background()
	owner := testhelpers.CreateTestUser(t, db)
	fan := testhelpers.CreateTestUser(t, db)
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID)
	other := testhelpers.CreateTestRecipe(t, db, owner.ID)

	for _, id := range []struct{ user, recipe uuid.UUID }{
		{owner.ID, recipe.ID}, {fan.ID, recipe.ID}, {fan.ID, other.ID},
	} {
		_, err := store.Insert(ctx, id.user, id.recipe)
		require.NoError(t, err)
	}

	n, err := store.DeleteByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	count, err := store.CountByRecipe(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
