package scan

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/hverr/drivedocs/pkg/model"
)

// Mocked out for unit testing.
var fs = afero.NewOsFs()

// Projects enumerates the first-level subdirectories of a drive's root.
// Hidden directories are not projects. Each project's size is the full
// recursive total of its contents; a project whose directory can't be
// read is skipped with a warning rather than failing the drive.
func Projects(root string) ([]model.Project, error) {
	infos, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, err
	}

	var projects []model.Project
	for _, info := range infos {
		if !info.IsDir() || strings.HasPrefix(info.Name(), ".") {
			continue
		}

		size, err := dirSize(filepath.Join(root, info.Name()))
		if err != nil {
			log.WithError(err).WithField("project", info.Name()).
				Warn("skipping unreadable project directory")
			continue
		}

		date, _ := model.DateFromName(info.Name())
		projects = append(projects, model.Project{
			Name: info.Name(),
			Size: model.BytesToGB(size),
			Date: date,
		})
	}
	return projects, nil
}

// dirSize walks the directory tree and sums regular file sizes.
// Unreadable subtrees below the root are skipped with a warning and the
// remaining files still count; an unreadable root is an error.
func dirSize(root string) (uint64, error) {
	var total uint64
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.WithError(err).WithField("path", path).
				Warn("unreadable entry, size total will be partial")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Mode().IsRegular() {
			total += uint64(info.Size())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
