// Package store persists the drives documentation. Two backends implement
// the same capability: a local JSON document and a shared Google
// Spreadsheet. The spreadsheet backend additionally holds the blacklist
// and manages per-drive color formatting.
package store

import (
	"context"

	"github.com/hverr/drivedocs/pkg/blacklist"
	"github.com/hverr/drivedocs/pkg/model"
)

// Store is the capability contract shared by documentation backends.
type Store interface {
	// Load returns the currently persisted documentation. A backend that
	// has never been written to returns an empty documentation, not an
	// error.
	Load(ctx context.Context) (model.Documentation, error)

	// Save persists the full documentation. From the caller's perspective
	// a save is all or nothing: on error the previously persisted state
	// is still what Load returns.
	Save(ctx context.Context, doc model.Documentation) error
}

// BlacklistSource is implemented by stores that also hold the exclusion
// lists. The JSON store does not; its callers supply a blacklist from
// configuration, or none.
type BlacklistSource interface {
	Blacklist(ctx context.Context) (blacklist.Blacklist, error)
}
