package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"spreadsheet-id": "abc123", "blacklist-drives": ["system"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.SpreadsheetID)
	assert.Equal(t, []string{"system"}, cfg.BlacklistDrives)
	assert.Equal(t, "documentation", cfg.DocumentationSheet)
	assert.Equal(t, "blacklist", cfg.BlacklistSheet)
	assert.Equal(t, 60, cfg.NetworkTimeoutSeconds)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0600))

	_, err := load(path)
	assert.Error(t, err)
}
