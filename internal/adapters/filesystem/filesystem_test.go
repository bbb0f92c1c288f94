package filesystem_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wryte/internal/adapters/filesystem"
)

func TestAdapter_WriteThenRead(t *testing.T) {
	adapter := filesystem.New()
	path := filepath.Join(t.TempDir(), "doc.html")

	err := adapter.WriteFile(path, []byte("<p>hello</p>"), 0o644)
	require.NoError(t, err)

	data, err := adapter.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", string(data))
}

func TestAdapter_WriteTruncatesExistingFile(t *testing.T) {
	adapter := filesystem.New()
	path := filepath.Join(t.TempDir(), "doc.html")

	require.NoError(t, adapter.WriteFile(path, []byte("a much longer first version"), 0o644))
	require.NoError(t, adapter.WriteFile(path, []byte("short"), 0o644))

	data, err := adapter.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestAdapter_WriteMissingParentFails(t *testing.T) {
	adapter := filesystem.New()
	path := filepath.Join(t.TempDir(), "missing", "doc.html")

	err := adapter.WriteFile(path, []byte("x"), 0o644)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestAdapter_ReadMissingFile(t *testing.T) {
	adapter := filesystem.New()

	_, err := adapter.ReadFile(filepath.Join(t.TempDir(), "nope.html"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAdapter_ReadOnlyFilesystemRejectsWrites(t *testing.T) {
	adapter := filesystem.NewWithFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	err := adapter.WriteFile("/doc.html", []byte("x"), 0o644)
	require.Error(t, err)
}

func TestAdapter_InMemoryFilesystem(t *testing.T) {
	mem := afero.NewMemMapFs()
	adapter := filesystem.NewWithFs(mem)

	require.NoError(t, adapter.WriteFile("/doc.html", []byte("12345"), 0o644))

	exists, err := afero.Exists(mem, "/doc.html")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := adapter.ReadFile("/doc.html")
	require.NoError(t, err)
	assert.Equal(t, "12345", string(data))
}
