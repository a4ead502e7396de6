package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	contractx "github.com/nileshdh/restaurant-agent/agent/contract"
)

type SheetsConfig struct {
	SheetID         string `envconfig:"SHEET_ID" split_words:"true" required:"true"`
	CredentialsPath string `envconfig:"CREDENTIALS_PATH" split_words:"true" default:"credentials.json"`
}

// SheetsStore reads and writes worksheet rows through the Google Sheets
// values API. One worksheet per collection, headers in row 1.
type SheetsStore struct {
	svc     *sheets.Service
	sheetID string
}

var _ Store = (*SheetsStore)(nil)

func NewSheetsStore(ctx context.Context, cfg SheetsConfig) (*SheetsStore, error) {
	sheetID := strings.TrimSpace(cfg.SheetID)
	if sheetID == "" {
		return nil, fmt.Errorf("%w: google sheet id is required", contractx.ErrConfiguration)
	}

	credsPath := strings.TrimSpace(cfg.CredentialsPath)
	if _, err := os.Stat(credsPath); err != nil {
		return nil, fmt.Errorf("%w: credentials file %s: %v", contractx.ErrConfiguration, credsPath, err)
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create sheets service: %v", contractx.ErrConfiguration, err)
	}

	// Open the spreadsheet once so a bad id or revoked access aborts startup
	// instead of surfacing on the first tool call.
	if _, err := svc.Spreadsheets.Get(sheetID).Context(ctx).Do(); err != nil {
		return nil, wrapOpenError(sheetID, err)
	}

	return &SheetsStore{svc: svc, sheetID: sheetID}, nil
}

// wrapOpenError classifies a failure to open the spreadsheet: an unknown
// id is a missing resource, everything else is a credentials or setup problem.
func wrapOpenError(sheetID string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 404 {
		return fmt.Errorf("%w: spreadsheet %s: %v", ErrResourceMissing, sheetID, err)
	}
	return fmt.Errorf("%w: open spreadsheet %s: %v", contractx.ErrConfiguration, sheetID, err)
}

func (s *SheetsStore) Records(ctx context.Context, collection string) ([]Record, error) {
	values, err := s.fetch(ctx, collection)
	if err != nil {
		return nil, err
	}
	return rowsToRecords(values), nil
}

func (s *SheetsStore) AppendRow(ctx context.Context, collection string, row []any) error {
	vr := &sheets.ValueRange{Values: [][]any{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.sheetID, collection, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return s.wrapAPIError(collection, err)
	}
	return nil
}

func (s *SheetsStore) FindRow(ctx context.Context, collection string, value string) (int, error) {
	values, err := s.fetch(ctx, collection)
	if err != nil {
		return 0, err
	}
	want := strings.TrimSpace(value)
	for i, row := range values {
		if i == 0 {
			continue // header row
		}
		for _, cell := range row {
			if strings.TrimSpace(fmt.Sprint(cell)) == want {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q in %s", ErrRowNotFound, value, collection)
}

func (s *SheetsStore) UpdateCell(ctx context.Context, collection string, row, col int, value any) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("invalid cell position row=%d col=%d", row, col)
	}
	// +1 skips the header row.
	target := fmt.Sprintf("%s!%s%d", collection, columnLetter(col), row+1)
	vr := &sheets.ValueRange{Values: [][]any{{value}}}
	_, err := s.svc.Spreadsheets.Values.Update(s.sheetID, target, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return s.wrapAPIError(collection, err)
	}
	return nil
}

func (s *SheetsStore) fetch(ctx context.Context, collection string) ([][]any, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, collection).Context(ctx).Do()
	if err != nil {
		return nil, s.wrapAPIError(collection, err)
	}
	return resp.Values, nil
}

// wrapAPIError maps a missing worksheet to ErrCollectionMissing. The values
// API reports an unknown worksheet title as a range parse failure (400).
func (s *SheetsStore) wrapAPIError(collection string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == 400 || gerr.Code == 404) {
		return fmt.Errorf("%w: %s: %v", ErrCollectionMissing, collection, err)
	}
	return fmt.Errorf("sheets: %s: %w", collection, err)
}

// rowsToRecords maps raw worksheet values to Records using the first row as
// headers. Short rows are padded with empty strings.
func rowsToRecords(values [][]any) []Record {
	if len(values) < 2 {
		return nil
	}

	headers := make([]string, len(values[0]))
	for i, cell := range values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(cell))
	}

	records := make([]Record, 0, len(values)-1)
	for _, row := range values[1:] {
		rec := make(Record, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				rec[header] = row[i]
			} else {
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

func columnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}
