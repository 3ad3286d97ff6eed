package fileio

import (
	"io/fs"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compose-network/b64encoder/x/apperr"
)

func TestStore_ReadFile(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/in.txt", []byte{0x00, 0xff, 'a'}, 0o600))

	data, err := NewStore(mem).ReadFile("/in.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 'a'}, data)
}

func TestStore_ReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewStore(afero.NewMemMapFs()).ReadFile("/nope.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrFileAccess)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read /nope.txt")
}

func TestStore_WriteFile_CreatesAndTruncates(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/out", 0o755))
	require.NoError(t, afero.WriteFile(mem, "/out/result.txt", []byte("a much longer previous content"), 0o600))

	s := NewStore(mem)
	require.NoError(t, s.WriteFile("/out/result.txt", []byte("YWJj")))

	data, err := afero.ReadFile(mem, "/out/result.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("YWJj"), data)

	info, err := mem.Stat("/out/result.txt")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := afero.ReadDir(mem, "/out")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestStore_WriteFile_NewFileMode(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/out", 0o755))
	require.NoError(t, NewStore(mem).WriteFile("/out/new.txt", []byte("YWJj")))

	info, err := mem.Stat("/out/new.txt")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(OutputMode), info.Mode().Perm())
}

func TestStore_WriteFile_Empty(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/out", 0o755))
	require.NoError(t, NewStore(mem).WriteFile("/out/empty.txt", nil))

	data, err := afero.ReadFile(mem, "/out/empty.txt")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestStore_WriteFile_ReadOnlyFs(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/out", 0o755))

	err := NewStore(afero.NewReadOnlyFs(mem)).WriteFile("/out/result.txt", []byte("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrFileAccess)

	exists, err := afero.Exists(mem, "/out/result.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}
