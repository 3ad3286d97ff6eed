package fileio

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/compose-network/b64encoder/x/apperr"
)

// OutputMode is the permission mode of newly created files.
const OutputMode = 0o644

// Store reads and writes whole files on an afero filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore creates a store over fs
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOSStore creates a store over the host filesystem
func NewOSStore() *Store {
	return NewStore(afero.NewOsFs())
}

// ReadFile reads the whole file at path.
func (s *Store) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, apperr.FileAccess("read", path, err)
	}
	return data, nil
}

// WriteFile replaces the file at path with data. The data is written to a
// temporary file in the same directory and renamed over path, so path is
// either untouched or fully written. An existing file keeps its permissions.
func (s *Store) WriteFile(path string, data []byte) (err error) {
	mode := os.FileMode(OutputMode)
	if info, statErr := s.fs.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return apperr.FileAccess("create", path, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = s.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return apperr.FileAccess("write", path, err)
	}
	if err = tmp.Close(); err != nil {
		return apperr.FileAccess("write", path, err)
	}
	if err = s.fs.Chmod(tmpName, mode); err != nil {
		return apperr.FileAccess("write", path, err)
	}
	if err = s.fs.Rename(tmpName, path); err != nil {
		return apperr.FileAccess("write", path, err)
	}
	return nil
}
