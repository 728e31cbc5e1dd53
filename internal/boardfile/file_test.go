package boardfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelab/talkboard/internal/board"
	"github.com/kestrelab/talkboard/internal/testutil"
)

func TestLoad(t *testing.T) {
	path := testutil.WriteBoardFile(t, fruitVegFile)

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, b.TopLevelCategories())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.board"))
	assert.Error(t, err)
}

func TestLoadLenient(t *testing.T) {
	t.Run("missing file degrades to empty board", func(t *testing.T) {
		b := LoadLenient(filepath.Join(t.TempDir(), "nope.board"))
		require.NotNil(t, b)
		assert.Equal(t, 0, b.Len())
	})

	t.Run("valid file loads fully", func(t *testing.T) {
		path := testutil.WriteBoardFile(t, fruitVegFile)
		b := LoadLenient(path)
		require.NotNil(t, b)
		assert.Equal(t, []string{"one", "two"}, b.TopLevelCategories())
	})
}

func TestSave_RoundTripThroughDisk(t *testing.T) {
	path := testutil.WriteBoardFile(t, fruitVegFile)

	b, err := Load(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.board")
	require.NoError(t, Save(out, b))

	data, err := os.ReadFile(out) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, fruitVegFile, string(data))
}

func TestSave_UnwritablePath(t *testing.T) {
	b := board.New()
	err := Save(filepath.Join(t.TempDir(), "missing-dir", "out.board"), b)
	assert.Error(t, err)
}

func TestSaveLenient_SwallowsFailure(t *testing.T) {
	b := board.New()
	assert.NotPanics(t, func() {
		SaveLenient(filepath.Join(t.TempDir(), "missing-dir", "out.board"), b)
	})
}
