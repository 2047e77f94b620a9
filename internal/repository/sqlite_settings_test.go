package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/drivetime/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_PutAndGet(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "defaults", `{"driving":{"hours":4}}`))

	value, err := repo.Get(ctx, "defaults")
	require.NoError(t, err)
	assert.Equal(t, `{"driving":{"hours":4}}`, value)
}

func TestSettingsRepo_PutOverwrites(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", "v1"))
	require.NoError(t, repo.Put(ctx, "k", "v2"))

	value, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
}

func TestSettingsRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsRepo_Delete(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", "v"))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, repo.Delete(ctx, "k"))
}
