package scan

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hverr/drivedocs/pkg/model"
)

// Scan enumerates the attached external drives and their projects in one
// pass. Project sizing is the slow part, so it runs concurrently across
// drives; results keep the enumeration order. A drive whose root
// directory can't be listed is skipped like an unmountable volume.
func Scan(ctx context.Context) ([]model.Drive, error) {
	volumes, err := Volumes(ctx)
	if err != nil {
		return nil, err
	}

	skipped := make([]bool, len(volumes))
	g, _ := errgroup.WithContext(ctx)
	for i := range volumes {
		i := i
		g.Go(func() error {
			projects, err := Projects(volumes[i].Mountpoint)
			if err != nil {
				log.WithError(err).WithField("drive", volumes[i].Name).
					Warn("skipping drive, cannot list projects")
				skipped[i] = true
				return nil
			}
			volumes[i].Projects = projects
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	drives := make([]model.Drive, 0, len(volumes))
	for i, v := range volumes {
		if skipped[i] {
			continue
		}
		drives = append(drives, v.Drive)
	}
	return drives, nil
}
