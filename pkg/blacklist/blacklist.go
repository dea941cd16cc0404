// Package blacklist filters scan results and documentation against
// user-maintained exclusion lists. Matching is exact and case-sensitive.
package blacklist

import (
	"github.com/hverr/drivedocs/pkg/model"
)

// Blacklist holds the excluded drive and project names.
type Blacklist struct {
	Drives   map[string]bool
	Projects map[string]bool
}

// New builds a Blacklist from name lists.
func New(drives, projects []string) Blacklist {
	b := Blacklist{
		Drives:   make(map[string]bool, len(drives)),
		Projects: make(map[string]bool, len(projects)),
	}
	for _, name := range drives {
		if name != "" {
			b.Drives[name] = true
		}
	}
	for _, name := range projects {
		if name != "" {
			b.Projects[name] = true
		}
	}
	return b
}

// Empty reports whether both exclusion sets are empty.
func (b Blacklist) Empty() bool {
	return len(b.Drives) == 0 && len(b.Projects) == 0
}

// Filter removes blacklisted entries from a scan result. A blacklisted
// drive is dropped whole, without looking at its projects. Order of the
// surviving entries is preserved, and the input is never modified.
func (b Blacklist) Filter(drives []model.Drive) []model.Drive {
	filtered := make([]model.Drive, 0, len(drives))
	for _, drive := range drives {
		if b.Drives[drive.Name] {
			continue
		}
		drive.Projects = b.filterProjects(drive.Projects)
		filtered = append(filtered, drive)
	}
	return filtered
}

// Apply prunes blacklisted entries from a documentation. This is the only
// way entries ever leave the documentation: a name that was documented
// earlier and is blacklisted now gets removed on the next save.
func (b Blacklist) Apply(doc model.Documentation) model.Documentation {
	pruned := make(model.Documentation, len(doc))
	for name, drive := range doc {
		if b.Drives[name] {
			continue
		}
		drive.Projects = b.filterProjects(drive.Projects)
		pruned[name] = drive
	}
	return pruned
}

func (b Blacklist) filterProjects(projects []model.Project) []model.Project {
	kept := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if b.Projects[p.Name] {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
