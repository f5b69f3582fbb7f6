package sheetlog

import (
	"strings"

	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

// RowsFromTable maps a raw cell grid onto LogRows using the first row
// as the header. Header names are trimmed, short rows read as empty
// cells, cells beyond the header are dropped, and fully blank rows are
// skipped.
func RowsFromTable(table [][]string) []types.LogRow {
	if len(table) == 0 {
		return nil
	}
	header := make([]string, len(table[0]))
	for i, h := range table[0] {
		header[i] = strings.TrimSpace(h)
	}

	var rows []types.LogRow
	for _, cells := range table[1:] {
		if blankRow(cells) {
			continue
		}
		row := make(types.LogRow, len(header))
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
