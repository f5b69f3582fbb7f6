package summary

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

// usdFormatter renders cent amounts as "$1234.56". The log's notional
// column carries plain dollar strings without grouping and the subject
// line keeps that shape.
var usdFormatter = money.NewFormatter(2, ".", "", "$", "$1")

// FormatUSD renders x as a signed dollar amount with exactly two
// decimal places, e.g. 42.5 -> "$42.50", -3 -> "-$3.00". Rounding is
// half away from zero on the absolute value, so -0.001 keeps its sign
// as "-$0.00".
func FormatUSD(x float64) string {
	cents := decimal.NewFromFloat(math.Abs(x)).Round(2).Shift(2).IntPart()
	s := usdFormatter.Format(cents)
	if x < 0 {
		return "-" + s
	}
	return s
}

// Subject renders the one-line email subject for a day's summary.
func Subject(s types.DailySummary) string {
	return fmt.Sprintf("bought %d stocks, sold %s profit", s.BoughtCount, FormatUSD(s.TotalProfit))
}
