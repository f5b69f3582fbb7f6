package sheetlog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/JSPierceColorado/Trade-Notify/internal/logger"
	"github.com/JSPierceColorado/Trade-Notify/internal/store"
	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

// SheetsSource reads the trading log from a Google Sheets tab. The
// spreadsheet is located by title the way its human operators know it,
// unless sheet_id pins it directly.
type SheetsSource struct {
	cfg       *store.Config
	credsJSON []byte
}

func NewSheetsSource(cfg *store.Config, credsJSON []byte) *SheetsSource {
	return &SheetsSource{cfg: cfg, credsJSON: credsJSON}
}

func (s *SheetsSource) ReadRows(ctx context.Context) ([]types.LogRow, error) {
	op := logger.StartOperation(ctx, "sheets-read", "sheet", s.cfg.SheetName, "tab", s.cfg.LogTab)
	ctx = op.GetContext()

	rows, err := s.readRows(ctx)
	if err != nil {
		op.EndWithError(err)
		return nil, err
	}
	op.End("rows", len(rows))
	return rows, nil
}

func (s *SheetsSource) readRows(ctx context.Context) ([]types.LogRow, error) {
	if len(s.credsJSON) == 0 {
		return nil, errors.New("GOOGLE_CREDS_JSON missing")
	}

	spreadsheetID := s.cfg.SheetID
	if spreadsheetID == "" {
		id, err := s.findSpreadsheetID(ctx)
		if err != nil {
			return nil, err
		}
		spreadsheetID = id
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(s.credsJSON),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(spreadsheetID, tabRange(s.cfg.LogTab)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read tab %q: %w", s.cfg.LogTab, err)
	}

	table := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		cells := make([]string, len(raw))
		for i, v := range raw {
			cells[i] = fmt.Sprint(v)
		}
		table = append(table, cells)
	}
	return RowsFromTable(table), nil
}

// findSpreadsheetID resolves the spreadsheet title to a file ID via the
// Drive API. The service account only sees files shared with it, so a
// plain title match is unambiguous in practice.
func (s *SheetsSource) findSpreadsheetID(ctx context.Context) (string, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsJSON(s.credsJSON),
		option.WithScopes(drive.DriveMetadataReadonlyScope),
	)
	if err != nil {
		return "", fmt.Errorf("drive client: %w", err)
	}

	q := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		strings.ReplaceAll(s.cfg.SheetName, "'", `\'`))
	list, err := svc.Files.List().Q(q).PageSize(1).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("locate spreadsheet %q: %w", s.cfg.SheetName, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("spreadsheet %q not found", s.cfg.SheetName)
	}
	return list.Files[0].Id, nil
}

// tabRange quotes a tab name as an A1 range covering the whole tab.
func tabRange(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}
