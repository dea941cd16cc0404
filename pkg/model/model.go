package model

import (
	"math"
	"regexp"
	"sort"
	"time"
)

// DateLayout is the date format expected at the front of project
// directory names, e.g. "2025-03-04 Studio Shoot".
const DateLayout = "2006-01-02"

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Project is a first-level directory on a drive. The size is the full
// recursive total of the directory's contents, in decimal gigabytes.
type Project struct {
	Name string  `json:"name"`
	Size float64 `json:"size (Gigabyte)"`

	// Date is set only if the first 10 characters of Name form a valid
	// calendar date in DateLayout. Empty means no date.
	Date string `json:"date,omitempty"`
}

// Drive is an external storage volume. Projects keep their scan order and
// have unique names within the drive.
type Drive struct {
	Name         string    `json:"name"`
	TotalStorage float64   `json:"total-storage (Gigabyte)"`
	FreeStorage  float64   `json:"free-storage (Gigabyte)"`
	Projects     []Project `json:"projects"`
}

// Documentation maps drive name to Drive. It is the full known universe of
// drives ever documented, including ones not currently connected anywhere.
type Documentation map[string]Drive

// DateFromName extracts the date from the first 10 characters of a
// directory name. The prefix must match YYYY-MM-DD exactly and form a real
// calendar date; "2025-13-01" and "25-3-4" yield no date.
func DateFromName(name string) (string, bool) {
	if len(name) < 10 {
		return "", false
	}
	prefix := name[:10]
	if !datePrefix.MatchString(prefix) {
		return "", false
	}
	if _, err := time.Parse(DateLayout, prefix); err != nil {
		return "", false
	}
	return prefix, true
}

// BytesToGB converts a byte count to decimal gigabytes (10^9), rounded to
// three decimal places. The same conversion is used for every measurement
// so values stay comparable across scans.
func BytesToGB(b uint64) float64 {
	return math.Round(float64(b)/1e9*1000) / 1000
}

// Clone returns a deep copy of the drive.
func (d Drive) Clone() Drive {
	c := d
	c.Projects = append([]Project(nil), d.Projects...)
	return c
}

// Clone returns a deep copy of the documentation.
func (doc Documentation) Clone() Documentation {
	c := make(Documentation, len(doc))
	for name, drive := range doc {
		c[name] = drive.Clone()
	}
	return c
}

// DriveNames returns the documented drive names in sorted order.
func (doc Documentation) DriveNames() []string {
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
