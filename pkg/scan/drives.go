// Package scan observes the live state of attached external drives and
// their first-level project directories. It only reads; the persisted
// documentation is none of its business.
package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	log "github.com/sirupsen/logrus"

	"github.com/hverr/drivedocs/pkg/model"
)

// Mocked out for unit testing.
var (
	partitions = disk.PartitionsWithContext
	usage      = disk.UsageWithContext
)

// externalMountPrefixes are where removable media get mounted. Anything
// mounted elsewhere counts as a system volume and is ignored.
var externalMountPrefixes = []string{"/media", "/run/media", "/mnt", "/Volumes"}

// Volume is a mounted external drive together with the path it is
// reachable under on this machine. The mountpoint is scan-local and never
// persisted.
type Volume struct {
	model.Drive
	Mountpoint string
}

// Volumes enumerates the currently mounted external drives with their
// storage measurements. A volume that becomes unmountable mid-scan is
// skipped with a warning, not fatal to the run.
func Volumes(ctx context.Context) ([]Volume, error) {
	parts, err := partitions(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list mounted volumes: %w", err)
	}

	var volumes []Volume
	for _, p := range parts {
		if !isExternal(p) {
			continue
		}

		u, err := usage(ctx, p.Mountpoint)
		if err != nil {
			log.WithError(err).WithField("mountpoint", p.Mountpoint).
				Warn("skipping unreadable volume")
			continue
		}

		name := filepath.Base(p.Mountpoint)
		log.WithField("drive", name).Info("scanning drive")
		volumes = append(volumes, Volume{
			Drive: model.Drive{
				Name:         name,
				TotalStorage: model.BytesToGB(u.Total),
				FreeStorage:  model.BytesToGB(u.Free),
			},
			Mountpoint: p.Mountpoint,
		})
	}
	return volumes, nil
}

// isExternal applies the usual heuristics: a real filesystem, not an
// optical disc, mounted where removable media live.
func isExternal(p disk.PartitionStat) bool {
	if p.Fstype == "" {
		return false
	}
	for _, opt := range p.Opts {
		if strings.EqualFold(opt, "cdrom") {
			return false
		}
	}
	for _, prefix := range externalMountPrefixes {
		if strings.HasPrefix(p.Mountpoint, prefix) {
			return true
		}
	}
	return false
}
