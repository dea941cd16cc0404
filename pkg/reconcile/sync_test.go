package reconcile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hverr/drivedocs/pkg/blacklist"
	"github.com/hverr/drivedocs/pkg/model"
	"github.com/hverr/drivedocs/pkg/store"
)

// fakeStore is an in-memory store for exercising the engine without a
// filesystem or network.
type fakeStore struct {
	doc      model.Documentation
	loadErr  error
	saveErr  error
	saves    int
	lastSave model.Documentation
}

func (f *fakeStore) Load(context.Context) (model.Documentation, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.doc.Clone(), nil
}

func (f *fakeStore) Save(_ context.Context, doc model.Documentation) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.lastSave = doc.Clone()
	f.doc = doc.Clone()
	return nil
}

func TestSyncRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := &fakeStore{doc: baseDocumentation()}
	scanned := []model.Drive{
		{Name: "drive1", TotalStorage: 1000, FreeStorage: 480, Projects: []model.Project{
			{Name: "2025-02-02 B", Size: 5, Date: "2025-02-02"},
		}},
		{Name: "drive2", TotalStorage: 2000, FreeStorage: 1500},
	}

	merged, err := Sync(ctx, st, scanned, blacklist.Blacklist{})
	require.NoError(t, err)

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, merged, loaded)
	assert.Len(t, loaded["drive1"].Projects, 2)
	assert.Contains(t, loaded, "drive2")
}

func TestSyncAbortsWithoutSaveOnLoadFailure(t *testing.T) {
	st := &fakeStore{
		loadErr: store.UnavailableError{Op: "load", Err: errors.New("network down")},
	}

	_, err := Sync(context.Background(), st, []model.Drive{{Name: "drive1"}}, blacklist.Blacklist{})
	assert.True(t, store.IsUnavailable(err))
	assert.Zero(t, st.saves, "save must never run against an unknown base")
}

func TestSyncReturnsMergedOnSaveFailure(t *testing.T) {
	st := &fakeStore{
		doc:     baseDocumentation(),
		saveErr: store.UnavailableError{Op: "save", Err: errors.New("network down")},
	}

	merged, err := Sync(context.Background(), st,
		[]model.Drive{{Name: "drive2", TotalStorage: 1, FreeStorage: 1}}, blacklist.Blacklist{})
	assert.True(t, store.IsUnavailable(err))

	// The computed merge survives the failed save so the caller can
	// retry saving without redoing the work.
	require.NotNil(t, merged)
	assert.Contains(t, merged, "drive1")
	assert.Contains(t, merged, "drive2")

	st.saveErr = nil
	require.NoError(t, st.Save(context.Background(), merged))
	assert.Equal(t, merged, st.doc)
}

func TestSyncJSONStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.NewJSONStore(filepath.Join(t.TempDir(), "drives_documentation.json"))

	prior, err := st.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, prior)

	scanned := []model.Drive{
		{Name: "drive1", TotalStorage: 1000, FreeStorage: 500, Projects: []model.Project{
			{Name: "2025-01-01 A", Size: 10, Date: "2025-01-01"},
		}},
	}
	merged, err := Sync(ctx, st, scanned, blacklist.Blacklist{})
	require.NoError(t, err)

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Merge(prior, scanned), loaded)
	assert.Equal(t, merged, loaded)
}

func TestSyncAppliesBlacklist(t *testing.T) {
	base := baseDocumentation()
	base["retired"] = model.Drive{Name: "retired", TotalStorage: 1, FreeStorage: 1}
	st := &fakeStore{doc: base}

	bl := blacklist.New([]string{"retired", "ignored"}, nil)
	scanned := []model.Drive{
		{Name: "ignored", TotalStorage: 5, FreeStorage: 5},
		{Name: "drive2", TotalStorage: 2, FreeStorage: 1},
	}

	merged, err := Sync(context.Background(), st, scanned, bl)
	require.NoError(t, err)

	// Blacklisted names neither enter the documentation from the scan
	// nor survive in it from earlier runs.
	assert.NotContains(t, merged, "ignored")
	assert.NotContains(t, merged, "retired")
	assert.Contains(t, merged, "drive1")
	assert.Contains(t, merged, "drive2")
}
