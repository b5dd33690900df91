package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStripsLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\r\ntwo\nthree"), 0644))

	lines, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestLoadMissingFileReturnsWrappedError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSaveTruncatesShorterThanPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("a very long previous line\n"), 0644))

	n, err := Save(path, []byte("short\n"))

	require.NoError(t, err)
	assert.Equal(t, 6, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(got))
}

func TestSaveCreatesFileIfMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	n, err := Save(path, []byte("hello\n"))

	require.NoError(t, err)
	assert.Equal(t, 6, n)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(got))
}
