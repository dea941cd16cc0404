package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/hverr/drivedocs/pkg/model"
)

// Mocked out for unit testing.
var fs = afero.NewOsFs()

// JSONStore persists the documentation as a single JSON document on the
// local filesystem. It has no blacklist capability.
type JSONStore struct {
	// Path is the location of the documentation file.
	Path string

	// AllowSchemaReset makes Load treat a malformed file as an empty
	// documentation instead of failing the run.
	AllowSchemaReset bool
}

// NewJSONStore returns a JSON store backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{Path: path}
}

// Load parses the documentation file. A missing file means the
// documentation simply hasn't been written yet and yields an empty
// documentation.
func (s *JSONStore) Load(_ context.Context) (model.Documentation, error) {
	f, err := fs.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", s.Path).Info("no documentation file yet, starting from an empty one")
			return model.Documentation{}, nil
		}
		return nil, UnavailableError{Op: "load", Err: err}
	}
	defer f.Close()

	var doc model.Documentation
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return s.schemaFailure(fmt.Sprintf("parse %s: %v", s.Path, err))
	}
	for name, drive := range doc {
		if drive.Name == "" {
			drive.Name = name
			doc[name] = drive
		} else if drive.Name != name {
			return s.schemaFailure(fmt.Sprintf(
				"drive entry %q has mismatched name %q", name, drive.Name))
		}
	}
	return doc, nil
}

func (s *JSONStore) schemaFailure(reason string) (model.Documentation, error) {
	err := SchemaError{Reason: reason}
	if s.AllowSchemaReset {
		log.WithError(err).Warn("documentation file is malformed, resetting to an empty documentation")
		return model.Documentation{}, nil
	}
	return nil, err
}

// Save writes the full documentation, replacing the file atomically so a
// crash mid-write can't truncate the previous documentation.
func (s *JSONStore) Save(_ context.Context, doc model.Documentation) error {
	if err := fs.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return UnavailableError{Op: "save", Err: err}
	}

	tmp := s.Path + ".tmp"
	if err := s.writeFile(tmp, doc); err != nil {
		return UnavailableError{Op: "save", Err: err}
	}
	if err := fs.Rename(tmp, s.Path); err != nil {
		return UnavailableError{Op: "save", Err: err}
	}
	return nil
}

func (s *JSONStore) writeFile(path string, doc model.Documentation) error {
	f, err := fs.Create(path)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
