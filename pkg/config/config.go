// Package config loads and saves the app configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName    = "drivedocs"
	configFile = "config.json"
)

// Config is the persisted app configuration. Missing fields fall back to
// the defaults; a missing file is simply the default config.
type Config struct {
	// SpreadsheetID identifies the shared documentation spreadsheet.
	SpreadsheetID string `json:"spreadsheet-id"`

	// DocumentationSheet and BlacklistSheet name the two worksheets.
	DocumentationSheet string `json:"documentation-sheet"`
	BlacklistSheet     string `json:"blacklist-sheet"`

	// CredentialsFile points at the service account key. Empty means the
	// default location in the config directory.
	CredentialsFile string `json:"credentials-file"`

	// DocumentationPath is where the JSON backend keeps its document.
	DocumentationPath string `json:"documentation-path"`

	// NetworkTimeoutSeconds bounds each call to the spreadsheet service.
	NetworkTimeoutSeconds int `json:"network-timeout-seconds"`

	// AllowSchemaReset lets a malformed persisted documentation read as
	// an empty one instead of failing the run.
	AllowSchemaReset bool `json:"allow-schema-reset"`

	// BlacklistDrives and BlacklistProjects are the exclusion lists used
	// with the JSON backend, which has no blacklist worksheet.
	BlacklistDrives   []string `json:"blacklist-drives"`
	BlacklistProjects []string `json:"blacklist-projects"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DocumentationSheet:    "documentation",
		BlacklistSheet:        "blacklist",
		DocumentationPath:     "drives_documentation.json",
		NetworkTimeoutSeconds: 60,
	}
}

// Path returns the location of the configuration file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, appName, configFile)
}

// Load reads the configuration file, falling back to defaults for a
// missing file and for unset fields.
func Load() (*Config, error) {
	return load(Path())
}

func load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	defaults := Default()
	if cfg.DocumentationSheet == "" {
		cfg.DocumentationSheet = defaults.DocumentationSheet
	}
	if cfg.BlacklistSheet == "" {
		cfg.BlacklistSheet = defaults.BlacklistSheet
	}
	if cfg.DocumentationPath == "" {
		cfg.DocumentationPath = defaults.DocumentationPath
	}
	if cfg.NetworkTimeoutSeconds <= 0 {
		cfg.NetworkTimeoutSeconds = defaults.NetworkTimeoutSeconds
	}
	return cfg, nil
}

// Save writes the configuration file, creating the config directory if
// needed.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file for writing: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
