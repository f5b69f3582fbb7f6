package sheetlog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

// CSVSource reads the trading log from a local CSV export. It serves
// offline runs and fixtures; the layout matches the sheet tab.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) ReadRows(ctx context.Context) ([]types.LogRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open csv log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	table, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv log: %w", err)
	}
	return RowsFromTable(table), nil
}
