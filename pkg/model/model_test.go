package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFromName(t *testing.T) {
	tests := []struct {
		name string
		date string
		ok   bool
	}{
		{"2025-03-04 Shoot", "2025-03-04", true},
		{"2025-03-04", "2025-03-04", true},
		{"25-3-4 Shoot", "", false},
		{"2025-13-01 X", "", false},
		{"2025-02-30 leap-ish", "", false},
		{"2024-02-29 leap", "2024-02-29", true},
		{"no date here", "", false},
		{"short", "", false},
		{"", "", false},
		{"2025_03_04 underscores", "", false},
	}
	for _, test := range tests {
		date, ok := DateFromName(test.name)
		assert.Equal(t, test.ok, ok, test.name)
		assert.Equal(t, test.date, date, test.name)
	}
}

func TestBytesToGB(t *testing.T) {
	assert.Equal(t, 1.0, BytesToGB(1_000_000_000))
	assert.Equal(t, 0.5, BytesToGB(500_000_000))
	assert.Equal(t, 2.5, BytesToGB(2_500_000_000))
	assert.Equal(t, 0.001, BytesToGB(1_234_567))
	assert.Equal(t, 0.0, BytesToGB(0))
}

func TestJSONSchema(t *testing.T) {
	doc := Documentation{
		"drive1": {
			Name:         "drive1",
			TotalStorage: 1000.0,
			FreeStorage:  123.456,
			Projects: []Project{
				{Name: "2025-01-01 A", Size: 10, Date: "2025-01-01"},
				{Name: "misc", Size: 0.5},
			},
		},
	}

	b, err := json.Marshal(doc)
	require.NoError(t, err)

	// Dated projects carry a "date" key, undated ones omit it entirely.
	assert.Contains(t, string(b), `"total-storage (Gigabyte)":1000`)
	assert.Contains(t, string(b), `"size (Gigabyte)":10`)
	assert.Contains(t, string(b), `"date":"2025-01-01"`)
	assert.NotContains(t, string(b), `"date":""`)

	var parsed Documentation
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, doc, parsed)
}

func TestDocumentationClone(t *testing.T) {
	doc := Documentation{
		"drive1": {Name: "drive1", Projects: []Project{{Name: "a", Size: 1}}},
	}
	clone := doc.Clone()
	clone["drive1"].Projects[0] = Project{Name: "b", Size: 2}

	assert.Equal(t, "a", doc["drive1"].Projects[0].Name)
}

func TestDriveNames(t *testing.T) {
	doc := Documentation{"zeta": {}, "alpha": {}, "mid": {}}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, doc.DriveNames())
}
