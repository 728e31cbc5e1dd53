// Package testutil provides test fixtures for board files and boards.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelab/talkboard/internal/board"
)

// FruitVegFile is the canonical two-category board file used across tests.
const FruitVegFile = "one fruit\n>apple.png apple\n>banana.png banana\ntwo veg\n>carrot.png carrot\n"

// WriteBoardFile writes content to a fresh board file under a temp directory
// and returns its path.
func WriteBoardFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.board")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// NewFruitVegBoard builds the in-memory equivalent of FruitVegFile.
func NewFruitVegBoard(opts ...board.Option) *board.Board {
	b := board.New(opts...)
	one := b.CreateCategory("one")
	one.SetLabel("fruit")
	one.AddItem("apple.png", "apple")
	one.AddItem("banana.png", "banana")
	two := b.CreateCategory("two")
	two.SetLabel("veg")
	two.AddItem("carrot.png", "carrot")
	return b
}
