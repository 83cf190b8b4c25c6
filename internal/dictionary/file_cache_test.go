package dictionary

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileCache(t *testing.T) {
	cache := NewFileCache(filepath.Join("data", "dictionary.json"))
	assert.NotNil(t, cache)
	assert.Equal(t, filepath.Join("data", "dictionary.json"), cache.path)
}

func TestFileCache_cache(t *testing.T) {
	tests := []struct {
		name           string
		setupCache     bool
		cacheContent   string
		fill           func(w io.Writer) error
		expectedResult string
		expectedCached bool
		expectError    bool
		expectNotFound bool
	}{
		{
			name:       "cache miss - successful fill",
			setupCache: false,
			fill: func(w io.Writer) error {
				_, err := io.WriteString(w, `[{"word": "test"}]`)
				return err
			},
			expectedResult: `[{"word": "test"}]`,
		},
		{
			name:         "cache hit",
			setupCache:   true,
			cacheContent: `[{"word": "cached"}]`,
			fill: func(w io.Writer) error {
				_, err := io.WriteString(w, `[{"word": "remote"}]`)
				return err
			},
			expectedResult: `[{"word": "cached"}]`,
			expectedCached: true,
		},
		{
			name:           "cache hit without fill",
			setupCache:     true,
			cacheContent:   `[]`,
			fill:           nil,
			expectedResult: `[]`,
			expectedCached: true,
		},
		{
			name:       "cache miss - fill error",
			setupCache: false,
			fill: func(w io.Writer) error {
				_, _ = io.WriteString(w, `[{"word": "par`)
				return errors.New("connection reset")
			},
			expectError: true,
		},
		{
			name:           "cache miss - no fill",
			setupCache:     false,
			fill:           nil,
			expectError:    true,
			expectNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "nested", "dictionary.json")
			cache := NewFileCache(path)

			if tt.setupCache {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, []byte(tt.cacheContent), 0644))
			}

			result, cached, err := cache.cache(tt.fill)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, tt.expectNotFound, errors.Is(err, ErrDictionaryNotFound))
				assert.NoFileExists(t, path)
				assertNoTempFiles(t, filepath.Dir(path))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, string(result))
			assert.Equal(t, tt.expectedCached, cached)

			contents, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, string(contents))
			assertNoTempFiles(t, filepath.Dir(path))
		})
	}
}

func TestFileCache_cacheDirectory(t *testing.T) {
	dir := t.TempDir()
	cache := NewFileCache(dir)

	_, _, err := cache.cache(nil)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, dir, ioErr.Path)
}

func TestFileCache_read(t *testing.T) {
	tests := []struct {
		name           string
		setupFile      bool
		fileContent    string
		expectedResult string
		expectError    bool
	}{
		{
			name:           "existing file",
			setupFile:      true,
			fileContent:    `[{"word": "test", "type": "noun", "tr": "deneme"}]`,
			expectedResult: `[{"word": "test", "type": "noun", "tr": "deneme"}]`,
		},
		{
			name:        "non-existent file",
			setupFile:   false,
			expectError: true,
		},
		{
			name:           "empty file",
			setupFile:      true,
			fileContent:    "",
			expectedResult: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dictionary.json")
			cache := NewFileCache(path)

			if tt.setupFile {
				require.NoError(t, os.WriteFile(path, []byte(tt.fileContent), 0644))
			}

			result, err := cache.read()

			if tt.expectError {
				var ioErr *IOError
				assert.ErrorAs(t, err, &ioErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult, string(result))
		})
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
