package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/liftoff/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_PutGetOverwriteDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "gemini_api_key")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Put(ctx, "gemini_api_key", "first"))
	require.NoError(t, repo.Put(ctx, "gemini_api_key", "second"))

	v, err := repo.Get(ctx, "gemini_api_key")
	require.NoError(t, err)
	assert.Equal(t, "second", v)

	require.NoError(t, repo.Delete(ctx, "gemini_api_key"))
	_, err = repo.Get(ctx, "gemini_api_key")
	assert.ErrorIs(t, err, ErrNotFound)
}
