package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/sheets/v4"

	"github.com/hverr/drivedocs/pkg/blacklist"
	"github.com/hverr/drivedocs/pkg/model"
)

const (
	// DefaultDocumentationSheet is the worksheet holding the drives
	// documentation.
	DefaultDocumentationSheet = "documentation"

	// DefaultBlacklistSheet is the worksheet holding the exclusion lists.
	DefaultBlacklistSheet = "blacklist"

	// DefaultTimeout bounds every call against the Sheets service. A
	// blocked network call must fail the run promptly rather than hang.
	DefaultTimeout = 60 * time.Second
)

// SheetsStore persists the documentation in a shared Google Spreadsheet.
// It also sources the blacklist from a second worksheet and reapplies the
// per-drive color formatting on every save.
//
// Concurrent runs from different machines are serialized by the
// spreadsheet service itself; the store does no locking of its own.
type SheetsStore struct {
	service       *sheets.Service
	spreadsheetID string

	// DocumentationSheet and BlacklistSheet are the worksheet titles.
	DocumentationSheet string
	BlacklistSheet     string

	// Timeout bounds each remote call.
	Timeout time.Duration

	// AllowSchemaReset makes Load treat an inconsistently edited
	// worksheet as an empty documentation instead of failing the run.
	AllowSchemaReset bool
}

// NewSheetsStore returns a spreadsheet store for the given spreadsheet.
func NewSheetsStore(service *sheets.Service, spreadsheetID string) *SheetsStore {
	return &SheetsStore{
		service:            service,
		spreadsheetID:      spreadsheetID,
		DocumentationSheet: DefaultDocumentationSheet,
		BlacklistSheet:     DefaultBlacklistSheet,
		Timeout:            DefaultTimeout,
	}
}

func (s *SheetsStore) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.Timeout)
}

// Load reads the documentation worksheet into a Documentation. An empty
// worksheet is an empty documentation; a worksheet edited into an
// inconsistent shape is a SchemaError.
func (s *SheetsStore) Load(ctx context.Context) (model.Documentation, error) {
	values, err := s.readSheet(ctx, s.DocumentationSheet)
	if err != nil {
		return nil, UnavailableError{Op: "load", Err: err}
	}

	doc, err := parseDocumentationRows(values)
	if err != nil {
		if s.AllowSchemaReset {
			log.WithError(err).Warn("documentation worksheet is malformed, resetting to an empty documentation")
			return model.Documentation{}, nil
		}
		return nil, err
	}
	return doc, nil
}

// Blacklist reads the exclusion lists from the blacklist worksheet.
func (s *SheetsStore) Blacklist(ctx context.Context) (blacklist.Blacklist, error) {
	values, err := s.readSheet(ctx, s.BlacklistSheet)
	if err != nil {
		return blacklist.Blacklist{}, UnavailableError{Op: "load blacklist", Err: err}
	}

	drives, projects, err := parseBlacklistRows(values)
	if err != nil {
		return blacklist.Blacklist{}, err
	}
	return blacklist.New(drives, projects), nil
}

// Save rewrites the documentation worksheet from doc and reapplies the
// color formatting: one conditional-format rule per drive covering its
// header row and project rows, no two drives sharing a color.
func (s *SheetsStore) Save(ctx context.Context, doc model.Documentation) error {
	if err := s.writeRows(ctx, documentationRows(doc)); err != nil {
		return UnavailableError{Op: "save", Err: err}
	}
	if err := s.applyColorRules(ctx, doc); err != nil {
		return UnavailableError{Op: "format", Err: err}
	}
	return nil
}

func (s *SheetsStore) readSheet(ctx context.Context, sheet string) ([][]interface{}, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, sheet).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(callCtx).Do()
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheet, err)
	}
	return resp.Values, nil
}

func (s *SheetsStore) writeRows(ctx context.Context, rows [][]interface{}) error {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	_, err := s.service.Spreadsheets.Values.Clear(s.spreadsheetID, s.DocumentationSheet,
		&sheets.ClearValuesRequest{}).Context(callCtx).Do()
	if err != nil {
		return fmt.Errorf("clear worksheet %q: %w", s.DocumentationSheet, err)
	}

	callCtx, cancel = s.callContext(ctx)
	defer cancel()

	_, err = s.service.Spreadsheets.Values.Update(s.spreadsheetID, s.DocumentationSheet+"!A1",
		&sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(callCtx).Do()
	if err != nil {
		return fmt.Errorf("update worksheet %q: %w", s.DocumentationSheet, err)
	}
	return nil
}

// applyColorRules replaces the documentation worksheet's conditional
// formatting with one rule per drive. Colors are derived from the current
// drive-name set, not from any persisted assignment, so repeated saves
// and saves from different machines converge on the same formatting.
func (s *SheetsStore) applyColorRules(ctx context.Context, doc model.Documentation) error {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	meta, err := s.service.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets(properties(sheetId,title),conditionalFormats)").
		Context(callCtx).Do()
	if err != nil {
		return fmt.Errorf("read spreadsheet metadata: %w", err)
	}

	var sheetID int64
	var existingRules int
	found := false
	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == s.DocumentationSheet {
			sheetID = sheet.Properties.SheetId
			existingRules = len(sheet.ConditionalFormats)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("worksheet %q not found", s.DocumentationSheet)
	}

	var requests []*sheets.Request

	// Stale rules from previous saves reference drives and row ranges
	// that may no longer exist. Delete from the end so indices stay valid.
	for i := existingRules - 1; i >= 0; i-- {
		requests = append(requests, &sheets.Request{
			DeleteConditionalFormatRule: &sheets.DeleteConditionalFormatRuleRequest{
				SheetId: sheetID,
				Index:   int64(i),
			},
		})
	}

	colors := driveColors(doc.DriveNames())
	for i, span := range driveRowSpans(doc) {
		requests = append(requests, &sheets.Request{
			AddConditionalFormatRule: &sheets.AddConditionalFormatRuleRequest{
				Index: int64(i),
				Rule: &sheets.ConditionalFormatRule{
					Ranges: []*sheets.GridRange{{
						SheetId:          sheetID,
						StartRowIndex:    span.start,
						EndRowIndex:      span.end,
						StartColumnIndex: 0,
						EndColumnIndex:   int64(len(titleRow)),
					}},
					BooleanRule: &sheets.BooleanRule{
						Condition: &sheets.BooleanCondition{Type: "NOT_BLANK"},
						Format: &sheets.CellFormat{
							BackgroundColor: colors[span.drive],
							TextFormat:      &sheets.TextFormat{Bold: true},
						},
					},
				},
			},
		})
	}

	if len(requests) == 0 {
		return nil
	}

	callCtx, cancel = s.callContext(ctx)
	defer cancel()

	_, err = s.service.Spreadsheets.BatchUpdate(s.spreadsheetID,
		&sheets.BatchUpdateSpreadsheetRequest{Requests: requests}).
		Context(callCtx).Do()
	if err != nil {
		return fmt.Errorf("apply formatting rules: %w", err)
	}
	return nil
}
