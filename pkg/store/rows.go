package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hverr/drivedocs/pkg/model"
)

// The documentation worksheet groups rows by drive: a drive header row
// (name, total, free) followed by one row per project (name, size, date)
// until the next header or the end of the sheet. A header row is
// recognized by its non-blank total-storage cell.
//
// Columns: A name | B total-storage | C free-storage | D size | E date.

var titleRow = []interface{}{
	"name",
	"total-storage (Gigabyte)",
	"free-storage (Gigabyte)",
	"size (Gigabyte)",
	"date",
}

const (
	colName = iota
	colTotal
	colFree
	colSize
	colDate
)

// documentationRows renders the documentation as worksheet rows, drives
// sorted by name so identical documentations always produce identical
// sheets.
func documentationRows(doc model.Documentation) [][]interface{} {
	rows := [][]interface{}{titleRow}
	for _, name := range doc.DriveNames() {
		drive := doc[name]
		rows = append(rows, []interface{}{
			drive.Name, drive.TotalStorage, drive.FreeStorage, "", "",
		})
		for _, project := range drive.Projects {
			rows = append(rows, []interface{}{
				project.Name, "", "", project.Size, project.Date,
			})
		}
	}
	return rows
}

// rowSpan is the 0-based half-open row range a drive occupies in the
// rendered worksheet, header row included.
type rowSpan struct {
	drive string
	start int64
	end   int64
}

// driveRowSpans reports where each drive's rows land in the output of
// documentationRows, in the same drive order.
func driveRowSpans(doc model.Documentation) []rowSpan {
	spans := make([]rowSpan, 0, len(doc))
	row := int64(1) // title row occupies row 0
	for _, name := range doc.DriveNames() {
		span := rowSpan{drive: name, start: row}
		row += int64(1 + len(doc[name].Projects))
		span.end = row
		spans = append(spans, span)
	}
	return spans
}

// parseDocumentationRows decodes worksheet rows back into a
// documentation. Any row that fits neither the header nor the project
// shape is a schema error, never silently dropped; a manually edited
// sheet must not be misread as data loss.
func parseDocumentationRows(values [][]interface{}) (model.Documentation, error) {
	doc := model.Documentation{}
	var current string

	for i, row := range values {
		if i == 0 && cellString(row, colName) == "name" {
			continue // title row
		}
		if blankRow(row) {
			continue
		}

		name := cellString(row, colName)
		if name == "" {
			return nil, SchemaError{Reason: fmt.Sprintf("row %d has no name", i+1)}
		}

		if cellString(row, colTotal) != "" {
			total, ok := cellFloat(row, colTotal)
			if !ok {
				return nil, SchemaError{Reason: fmt.Sprintf("row %d: total-storage is not a number", i+1)}
			}
			free, ok := cellFloat(row, colFree)
			if !ok {
				return nil, SchemaError{Reason: fmt.Sprintf("row %d: free-storage is not a number", i+1)}
			}
			if _, exists := doc[name]; exists {
				return nil, SchemaError{Reason: fmt.Sprintf("row %d: duplicate drive %q", i+1, name)}
			}
			doc[name] = model.Drive{Name: name, TotalStorage: total, FreeStorage: free}
			current = name
			continue
		}

		if current == "" {
			return nil, SchemaError{Reason: fmt.Sprintf("row %d: project row before any drive header", i+1)}
		}
		size, ok := cellFloat(row, colSize)
		if !ok {
			return nil, SchemaError{Reason: fmt.Sprintf("row %d: size is not a number", i+1)}
		}
		drive := doc[current]
		for _, existing := range drive.Projects {
			if existing.Name == name {
				return nil, SchemaError{Reason: fmt.Sprintf(
					"row %d: duplicate project %q on drive %q", i+1, name, current)}
			}
		}
		drive.Projects = append(drive.Projects, model.Project{
			Name: name,
			Size: size,
			Date: cellString(row, colDate),
		})
		doc[current] = drive
	}
	return doc, nil
}

// parseBlacklistRows decodes the blacklist worksheet: a title row naming
// the two columns, then one excluded name per cell. The columns may
// appear in either order and have different lengths.
func parseBlacklistRows(values [][]interface{}) (drives, projects []string, err error) {
	if len(values) == 0 {
		return nil, nil, nil
	}

	driveCol, projectCol := -1, -1
	for i := range values[0] {
		switch cellString(values[0], i) {
		case "blacklist-drives":
			driveCol = i
		case "blacklist-projects":
			projectCol = i
		}
	}
	if driveCol < 0 || projectCol < 0 {
		return nil, nil, SchemaError{
			Reason: "blacklist worksheet is missing the blacklist-drives or blacklist-projects column",
		}
	}

	for _, row := range values[1:] {
		if name := cellString(row, driveCol); name != "" {
			drives = append(drives, name)
		}
		if name := cellString(row, projectCol); name != "" {
			projects = append(projects, name)
		}
	}
	return drives, projects, nil
}

// cellString returns the cell at index i as a trimmed string. Short rows
// read as blank cells; the Sheets API omits trailing empty cells.
func cellString(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// cellFloat returns the cell at index i as a number. Unformatted reads
// deliver float64 values, formatted ones strings.
func cellFloat(row []interface{}, i int) (float64, bool) {
	if i >= len(row) || row[i] == nil {
		return 0, false
	}
	switch v := row[i].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func blankRow(row []interface{}) bool {
	for i := range row {
		if cellString(row, i) != "" {
			return false
		}
	}
	return true
}
