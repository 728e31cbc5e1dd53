package boardfile

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelab/talkboard/internal/testutil"
)

func TestCachedLoader_Get(t *testing.T) {
	ctx := context.Background()
	path := testutil.WriteBoardFile(t, fruitVegFile)
	loader := NewCachedLoader()

	b, err := loader.Get(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, b.TopLevelCategories())

	// Changing the file on disk is not visible until invalidation.
	require.NoError(t, os.WriteFile(path, []byte("three misc\n"), 0o644))

	cached, err := loader.Get(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, cached.TopLevelCategories())

	require.NoError(t, loader.Invalidate(ctx, path))

	fresh, err := loader.Get(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"three"}, fresh.TopLevelCategories())
}

func TestCachedLoader_MissingFile(t *testing.T) {
	loader := NewCachedLoader()
	_, err := loader.Get(context.Background(), "does/not/exist.board")
	assert.Error(t, err)
}
