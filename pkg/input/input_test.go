package input

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLinesSkipsEmpty(t *testing.T) {
	r := strings.NewReader("abc\n\ndef\n\n\nghi\n")
	lines, err := ReadLines(context.Background(), r, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def", "ghi"}, lines)
}

func TestReadLinesLimit(t *testing.T) {
	r := strings.NewReader("a\n\nb\nc\nd\n")
	lines, err := ReadLines(context.Background(), r, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestReadLinesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadLines(ctx, strings.NewReader("a\nb\n"), 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCharacterGrid(t *testing.T) {
	g, err := CharacterGrid([]string{"abc", "def", "ghi"})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, []rune("abcdefghi"), g.Data())

	_, err = CharacterGrid(nil)
	assert.ErrorIs(t, err, ErrNoLines)
}

func TestReadCharacterGrid(t *testing.T) {
	g, err := ReadCharacterGrid(context.Background(), strings.NewReader("#.#\n\n.S.\n#E#\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "#.#\n.S.\n#E#", g.String())

	_, err = ReadCharacterGrid(context.Background(), strings.NewReader("\n\n"), 0)
	assert.ErrorIs(t, err, ErrNoLines)
}

func TestReadGridFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("S.\n   \n.E\n"), 0o644))

	g, err := ReadGridFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, []rune("S..E"), g.Data())

	_, err = ReadGridFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
