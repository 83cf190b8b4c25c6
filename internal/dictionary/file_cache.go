package dictionary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileCache keeps the dictionary file on local disk. The file is filled at
// most once; afterwards the on-disk copy is the source of truth.
type FileCache struct {
	path string
}

func NewFileCache(path string) *FileCache {
	return &FileCache{
		path: path,
	}
}

// cache returns the contents of the cached file. When the file is missing it
// calls fill to produce the contents and stores them. A nil fill means the
// file cannot be produced and ErrDictionaryNotFound is returned.
func (cache *FileCache) cache(fill func(w io.Writer) error) ([]byte, bool, error) {
	info, err := os.Stat(cache.path)
	if err == nil {
		if info.IsDir() {
			return nil, false, &IOError{Path: cache.path, Err: errors.New("is a directory")}
		}
		contents, err := cache.read()
		if err != nil {
			return nil, false, err
		}
		return contents, true, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, &IOError{Path: cache.path, Err: err}
	}
	if fill == nil {
		return nil, false, fmt.Errorf("%s: %w", cache.path, ErrDictionaryNotFound)
	}

	contents, err := cache.store(fill)
	if err != nil {
		return nil, false, err
	}
	return contents, false, nil
}

func (cache *FileCache) read() ([]byte, error) {
	file, err := os.Open(cache.path)
	if err != nil {
		return nil, &IOError{Path: cache.path, Err: err}
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, &IOError{Path: cache.path, Err: err}
	}
	return contents, nil
}

// store writes the output of fill to a temporary file next to the cache path
// and renames it into place, so the final name never holds a partial file.
func (cache *FileCache) store(fill func(w io.Writer) error) (_ []byte, err error) {
	dir := filepath.Dir(cache.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &IOError{Path: cache.path, Err: err}
	}

	file, err := os.CreateTemp(dir, "."+filepath.Base(cache.path)+".*.tmp")
	if err != nil {
		return nil, &IOError{Path: cache.path, Err: err}
	}
	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(file.Name())
		}
	}()

	var contents bytes.Buffer
	if err := fill(io.MultiWriter(file, &contents)); err != nil {
		return nil, err
	}
	if err := file.Chmod(0o644); err != nil {
		return nil, &IOError{Path: cache.path, Err: err}
	}
	if err := file.Sync(); err != nil {
		return nil, &IOError{Path: cache.path, Err: err}
	}
	if err := file.Close(); err != nil {
		return nil, &IOError{Path: cache.path, Err: err}
	}
	if err := os.Rename(file.Name(), cache.path); err != nil {
		return nil, &IOError{Path: cache.path, Err: err}
	}
	return contents.Bytes(), nil
}
