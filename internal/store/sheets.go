package store

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/AgentPisite999/agentpi-backend/internal/records"
)

// SheetsStore implements TabularStore on a Google spreadsheet. Each table is
// a tab; rows are appended with RAW input and scanned from row 2 down so the
// header stays out of the data.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewSheetsStore(svc *sheets.Service, spreadsheetID string) *SheetsStore {
	return &SheetsStore{svc: svc, spreadsheetID: spreadsheetID}
}

func (s *SheetsStore) Append(ctx context.Context, table string, row []string) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	rng := fmt.Sprintf("%s!A:%s", table, lastColumn(table))
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, rng, &sheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets append to %s: %w", table, err)
	}
	return nil
}

func (s *SheetsStore) Scan(ctx context.Context, table string) ([][]string, error) {
	rng := fmt.Sprintf("%s!A2:%s", table, lastColumn(table))
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, rng).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets scan of %s: %w", table, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// lastColumn maps a table's width to its final column letter. All current
// tables fit inside A..Z.
func lastColumn(table string) string {
	width := records.Width(table)
	if width == 0 {
		width = 26
	}
	return string(rune('A' + width - 1))
}
