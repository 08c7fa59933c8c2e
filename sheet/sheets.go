package sheet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSink implements Sink on a single Google Spreadsheet.
// Each named object is a worksheet tab inside the spreadsheet.
type SheetsSink struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewSheetsSink creates a sink backed by the given spreadsheet, authenticated
// with a service account key in JSON form.
func NewSheetsSink(ctx context.Context, spreadsheetID string, credentialsJSON []byte) (*SheetsSink, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id required")
	}
	if len(credentialsJSON) == 0 {
		return nil, fmt.Errorf("service account credentials required")
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &SheetsSink{service: service, spreadsheetID: spreadsheetID}, nil
}

// Exists reports whether a worksheet tab with the given title exists.
func (s *SheetsSink) Exists(ctx context.Context, name string) (bool, error) {
	resp, err := s.service.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return false, &SinkError{Op: "exists", Name: name, Err: err}
	}

	for _, sh := range resp.Sheets {
		if sh.Properties != nil && sh.Properties.Title == name {
			return true, nil
		}
	}
	return false, nil
}

// CreateNamed adds a new worksheet tab and writes the rows into it.
// A title collision is surfaced as ErrAlreadyExists, never merged over.
func (s *SheetsSink) CreateNamed(ctx context.Context, name string, rows [][]interface{}) error {
	if err := s.addSheet(ctx, name); err != nil {
		return &SinkError{Op: "create", Name: name, Err: err}
	}
	if err := s.writeRows(ctx, name, rows); err != nil {
		return &SinkError{Op: "create", Name: name, Err: err}
	}
	return nil
}

// ClearAndReplace rewrites the named worksheet tab in full, creating it first
// if it does not exist yet.
func (s *SheetsSink) ClearAndReplace(ctx context.Context, name string, rows [][]interface{}) error {
	if err := s.addSheet(ctx, name); err != nil && !errors.Is(err, ErrAlreadyExists) {
		return &SinkError{Op: "replace", Name: name, Err: err}
	}

	_, err := s.service.Spreadsheets.Values.Clear(s.spreadsheetID, name, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return &SinkError{Op: "replace", Name: name, Err: err}
	}

	if err := s.writeRows(ctx, name, rows); err != nil {
		return &SinkError{Op: "replace", Name: name, Err: err}
	}
	return nil
}

// addSheet creates a worksheet tab, mapping a title collision to ErrAlreadyExists.
func (s *SheetsSink) addSheet(ctx context.Context, name string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: name},
			},
		}},
	}

	_, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		if isDuplicateTitle(err) {
			return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
		return err
	}
	return nil
}

// writeRows writes rows starting at A1 using USER_ENTERED input, so numeric
// cells stay numeric in the sheet.
func (s *SheetsSink) writeRows(ctx context.Context, name string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	vr := &sheets.ValueRange{Values: rows}
	_, err := s.service.Spreadsheets.Values.Update(s.spreadsheetID, name+"!A1", vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

// isDuplicateTitle reports whether an addSheet rejection is a title collision.
// The API signals it as a 400 naming the conflicting sheet.
func isDuplicateTitle(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == 400 && strings.Contains(apiErr.Message, "already exists")
}
