// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// SampleDictionary holds entries with and without a category, including
// two senses of the same word.
const SampleDictionary = `[
  {"word": "cat", "type": "noun", "tr": "kedi"},
  {"word": "Run", "category": "motion", "type": "verb", "tr": "koşmak"},
  {"word": "bank", "category": "finance", "type": "noun", "tr": "banka"},
  {"word": "bank", "type": "verb", "tr": "kıyıya yanaşmak"}
]`

// SetupTestEnv isolates a test from the user's environment: HOME and
// XDG_DATA_HOME point into a temporary directory, dictionary environment
// variables are cleared and colored output is disabled.
// Returns the temporary directory.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("SOZLUK_DICTIONARY_PATH", "")
	t.Setenv("SOZLUK_DICTIONARY_URL", "")

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
	return tmpDir
}

// WriteDictionary writes contents to dictionary.json under dir and returns its path.
func WriteDictionary(t *testing.T, dir, contents string) string {
	t.Helper()

	path := filepath.Join(dir, "dictionary.json")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// SetupTestConfig creates a config file pointing at dictionaryPath.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, dictionaryPath, placeholder string) string {
	t.Helper()

	configContent := fmt.Sprintf(`dictionary:
  path: %s
presentation:
  format: text
  placeholder: %s
`, dictionaryPath, placeholder)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
