package summary

import (
	"strings"
	"time"

	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

// RowsForDay returns the rows whose timestamp falls on the same local
// calendar day as now in loc. The reference day is fixed from now once,
// so a run crossing midnight still filters consistently. Rows with a
// missing or malformed timestamp are dropped; the log accumulates
// hand-edited rows and one bad cell must not abort the run.
func RowsForDay(rows []types.LogRow, loc *time.Location, now time.Time) []types.LogRow {
	y0, m0, d0 := now.In(loc).Date()
	var out []types.LogRow
	for _, row := range rows {
		ts := row["Timestamp"]
		if ts == "" {
			ts = row["Time"]
		}
		t, err := ParseTimestamp(ts)
		if err != nil {
			continue
		}
		y, m, d := t.In(loc).Date()
		if y == y0 && m == m0 && d == d0 {
			out = append(out, row)
		}
	}
	return out
}

// RowsForToday is RowsForDay evaluated at the current instant.
func RowsForToday(rows []types.LogRow, loc *time.Location) []types.LogRow {
	return RowsForDay(rows, loc, time.Now())
}

// Summarize aggregates one day's rows into the buy count and the total
// estimated sell profit. Rows contributing no profit estimate count for
// nothing; a day of only buys totals zero.
func Summarize(rows []types.LogRow) types.DailySummary {
	var s types.DailySummary
	for _, row := range rows {
		if strings.EqualFold(row["Action"], "BUY") {
			s.BoughtCount++
		}
		if p, ok := ProfitFromSellRow(row); ok {
			s.TotalProfit += p
		}
	}
	return s
}
