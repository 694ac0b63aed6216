package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryGetByNameCaseInsensitiveSubstring(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "c1", "Technology")
	categories := NewCategory()

	category, err := categories.GetByName(context.Background(), db, "tech")

	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, "Technology", category.Name)
}

func TestCategoryGetByNameNoMatch(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "c1", "Technology")
	categories := NewCategory()

	category, err := categories.GetByName(context.Background(), db, "cooking")

	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestCategoryCreate(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategory()

	created := categories.Create(context.Background(), db, "Music")

	require.NotNil(t, created)
	assert.NotEmpty(t, created.CategoryID)
	assert.Equal(t, "Music", created.Name)
}

// Storage failures are swallowed into a nil result, not an error.
func TestCategoryCreateSwallowsStorageFailure(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Close())
	categories := NewCategory()

	created := categories.Create(context.Background(), db, "Music")

	assert.Nil(t, created)
}

func TestCategoryGetAllSortedByName(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "c1", "Technology")
	seedCategory(t, db, "c2", "Art")
	categories := NewCategory()

	all, err := categories.GetAll(context.Background(), db)

	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Art", all[0].Name)
	assert.Equal(t, "Technology", all[1].Name)
}
