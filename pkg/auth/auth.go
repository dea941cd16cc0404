// Package auth builds an authenticated Google Sheets service from a
// service-identity credential. Obtaining the credential (a service
// account JSON key shared with the spreadsheet) is an installation step,
// not something this tool does.
package auth

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	appName = "drivedocs"

	// CredentialsFile is the default file name of the service account
	// key, looked up in the app config directory.
	CredentialsFile = "service-account.json"
)

// ConfigDir returns the directory holding the app's config and
// credential files.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// NewSheetsService authenticates with the service account key at
// credentialsFile and returns a Sheets service. An empty path falls back
// to the default location under the config directory.
func NewSheetsService(ctx context.Context, credentialsFile string) (*sheets.Service, error) {
	if credentialsFile == "" {
		credentialsFile = filepath.Join(ConfigDir(), CredentialsFile)
	}

	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file %s: %w", credentialsFile, err)
	}

	creds, err := google.CredentialsFromJSON(ctx, b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account file %s: %w", credentialsFile, err)
	}

	srv, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}
	return srv, nil
}
