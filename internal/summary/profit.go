package summary

import (
	"math"
	"strconv"
	"strings"

	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

// ProfitFromSellRow estimates realized profit for a SELL row from its
// notional value and the "Gain X%" note annotation. The notional is the
// post-sale proceeds, so with g = X/100 the implied cost basis is
// notional/(1+g) and profit = notional * g/(1+g). ok is false for
// non-sell rows and for rows missing either input.
//
// A gain of exactly -100% divides by zero; the resulting non-finite
// estimate is dropped rather than poisoning the day's total.
func ProfitFromSellRow(row types.LogRow) (float64, bool) {
	if !strings.EqualFold(row["Action"], "SELL") {
		return 0, false
	}
	mv, err := parseNotional(row["NotionalUSD"])
	if err != nil {
		return 0, false
	}
	pct, ok := ParseGainPercent(row["Note"])
	if !ok {
		return 0, false
	}
	g := pct / 100
	profit := mv * (g / (1 + g))
	if math.IsInf(profit, 0) || math.IsNaN(profit) {
		return 0, false
	}
	return profit, true
}

func parseNotional(s string) (float64, error) {
	clean := strings.NewReplacer("$", "", ",", "").Replace(s)
	return strconv.ParseFloat(strings.TrimSpace(clean), 64)
}
