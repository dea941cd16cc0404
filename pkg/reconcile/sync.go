package reconcile

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/hverr/drivedocs/pkg/blacklist"
	"github.com/hverr/drivedocs/pkg/model"
	"github.com/hverr/drivedocs/pkg/store"
)

// Sync runs one reconciliation pass: load the prior documentation from
// the store, merge the filtered scan result into it, prune entries the
// blacklist now excludes, and save.
//
// If the load fails nothing is saved; merging against an unknown base
// would risk overwriting entries the store still knows about. If the save
// fails the merged documentation is still returned alongside the error so
// the caller can retry the save without rescanning or remerging.
func Sync(ctx context.Context, st store.Store, scanned []model.Drive, bl blacklist.Blacklist) (model.Documentation, error) {
	prior, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documentation: %w", err)
	}

	filtered := bl.Filter(scanned)
	if dropped := len(scanned) - len(filtered); dropped > 0 {
		log.WithField("drives", dropped).Debug("blacklist excluded scanned drives")
	}

	merged := bl.Apply(Merge(prior, filtered))

	log.WithFields(log.Fields{
		"scanned":    len(filtered),
		"documented": len(merged),
	}).Info("merged scan into documentation")

	if err := st.Save(ctx, merged); err != nil {
		return merged, fmt.Errorf("save documentation: %w", err)
	}
	return merged, nil
}
