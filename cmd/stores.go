package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/hverr/drivedocs/pkg/auth"
	"github.com/hverr/drivedocs/pkg/blacklist"
	"github.com/hverr/drivedocs/pkg/config"
	"github.com/hverr/drivedocs/pkg/store"
)

// newJSONStore builds the local JSON backend from the configuration.
// The JSON backend has no blacklist worksheet; the exclusion lists come
// from the config file instead.
func newJSONStore(cfg *config.Config) (*store.JSONStore, blacklist.Blacklist) {
	s := store.NewJSONStore(cfg.DocumentationPath)
	s.AllowSchemaReset = cfg.AllowSchemaReset
	return s, blacklist.New(cfg.BlacklistDrives, cfg.BlacklistProjects)
}

// newSheetsStore builds the spreadsheet backend from the configuration.
func newSheetsStore(ctx context.Context, cfg *config.Config) (*store.SheetsStore, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet-id is not configured; set it in " + config.Path() +
			" or use --json for the local backend")
	}

	service, err := auth.NewSheetsService(ctx, cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}

	s := store.NewSheetsStore(service, cfg.SpreadsheetID)
	s.DocumentationSheet = cfg.DocumentationSheet
	s.BlacklistSheet = cfg.BlacklistSheet
	s.Timeout = time.Duration(cfg.NetworkTimeoutSeconds) * time.Second
	s.AllowSchemaReset = cfg.AllowSchemaReset
	return s, nil
}
