package store

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hverr/drivedocs/pkg/model"
)

func testDocumentation() model.Documentation {
	return model.Documentation{
		"drive1": {
			Name:         "drive1",
			TotalStorage: 1000.5,
			FreeStorage:  123.456,
			Projects: []model.Project{
				{Name: "2025-01-01 A", Size: 10, Date: "2025-01-01"},
				{Name: "misc", Size: 0.25},
			},
		},
		"drive2": {Name: "drive2", TotalStorage: 2000, FreeStorage: 1999.999},
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	fs = afero.NewMemMapFs()
	ctx := context.Background()

	s := NewJSONStore("/docs/drives_documentation.json")
	doc := testDocumentation()
	require.NoError(t, s.Save(ctx, doc))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestJSONStoreMissingFileIsEmpty(t *testing.T) {
	fs = afero.NewMemMapFs()

	loaded, err := NewJSONStore("/nowhere/docu.json").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Documentation{}, loaded)
}

func TestJSONStoreSaveLeavesNoTempFile(t *testing.T) {
	fs = afero.NewMemMapFs()
	ctx := context.Background()

	s := NewJSONStore("/docs/docu.json")
	require.NoError(t, s.Save(ctx, testDocumentation()))

	exists, err := afero.Exists(fs, "/docs/docu.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestJSONStoreMalformedFile(t *testing.T) {
	fs = afero.NewMemMapFs()
	ctx := context.Background()
	require.NoError(t, afero.WriteFile(fs, "/docs/docu.json", []byte("{not json"), 0644))

	s := NewJSONStore("/docs/docu.json")
	_, err := s.Load(ctx)
	assert.True(t, IsSchemaInvalid(err))
	assert.False(t, IsUnavailable(err))

	// With the reset opt-in the malformed file reads as an empty base.
	s.AllowSchemaReset = true
	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Documentation{}, loaded)
}

func TestJSONStoreMismatchedDriveName(t *testing.T) {
	fs = afero.NewMemMapFs()
	content := `{"drive1": {"name": "other", "total-storage (Gigabyte)": 1, "free-storage (Gigabyte)": 1, "projects": []}}`
	require.NoError(t, afero.WriteFile(fs, "/docu.json", []byte(content), 0644))

	_, err := NewJSONStore("/docu.json").Load(context.Background())
	assert.True(t, IsSchemaInvalid(err))
}

func TestJSONStoreFillsMissingDriveName(t *testing.T) {
	fs = afero.NewMemMapFs()
	content := `{"drive1": {"total-storage (Gigabyte)": 2, "free-storage (Gigabyte)": 1, "projects": null}}`
	require.NoError(t, afero.WriteFile(fs, "/docu.json", []byte(content), 0644))

	loaded, err := NewJSONStore("/docu.json").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "drive1", loaded["drive1"].Name)
}
