// Package reconcile merges freshly scanned drive state into the
// previously persisted documentation. The merge is non-destructive:
// absence from this machine's scan is not evidence of deletion, since the
// drive may simply be plugged into another machine right now.
package reconcile

import (
	"github.com/hverr/drivedocs/pkg/model"
)

// Merge folds a scan result into the prior documentation and returns the
// result. Neither input is modified.
//
// Scanned drives overwrite the stored measurements of drives with the
// same name and are inserted otherwise. Within an updated drive the same
// rule applies per project: same-name projects are overwritten in place,
// new ones appended, and projects only present in the prior documentation
// are retained. Drives the scan didn't see are left untouched.
//
// Re-merging an identical scan is a no-op, and merges from machines with
// disjoint drive sets commute.
func Merge(prior model.Documentation, scanned []model.Drive) model.Documentation {
	merged := prior.Clone()
	for _, drive := range scanned {
		base, known := merged[drive.Name]
		if !known {
			merged[drive.Name] = drive.Clone()
			continue
		}
		base.TotalStorage = drive.TotalStorage
		base.FreeStorage = drive.FreeStorage
		base.Projects = mergeProjects(base.Projects, drive.Projects)
		merged[drive.Name] = base
	}
	return merged
}

func mergeProjects(prior, scanned []model.Project) []model.Project {
	merged := append([]model.Project(nil), prior...)
	position := make(map[string]int, len(merged))
	for i, p := range merged {
		position[p.Name] = i
	}

	for _, p := range scanned {
		if i, known := position[p.Name]; known {
			merged[i] = p
			continue
		}
		position[p.Name] = len(merged)
		merged = append(merged, p)
	}
	return merged
}
