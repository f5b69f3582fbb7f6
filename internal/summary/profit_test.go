package summary

import (
	"math"
	"testing"

	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

func TestProfitFromSellRow(t *testing.T) {
	tests := []struct {
		name   string
		row    types.LogRow
		want   float64
		wantOK bool
	}{
		{"backs out profit from gain", types.LogRow{"Action": "SELL", "NotionalUSD": "1000", "Note": "Gain 25%"}, 200, true},
		{"formatted notional", types.LogRow{"Action": "sell", "NotionalUSD": "$1,250.00", "Note": "Gain 10%"}, 113.63636363636364, true},
		{"negative gain", types.LogRow{"Action": "SELL", "NotionalUSD": "500", "Note": "Gain -20%"}, -125, true},
		{"buy row", types.LogRow{"Action": "BUY", "NotionalUSD": "1000", "Note": "Gain 25%"}, 0, false},
		{"hold row", types.LogRow{"Action": "HOLD", "NotionalUSD": "1000", "Note": "Gain 25%"}, 0, false},
		{"missing notional", types.LogRow{"Action": "SELL", "Note": "Gain 25%"}, 0, false},
		{"unparseable notional", types.LogRow{"Action": "SELL", "NotionalUSD": "n/a", "Note": "Gain 25%"}, 0, false},
		{"no gain in note", types.LogRow{"Action": "SELL", "NotionalUSD": "1000", "Note": "took a loss"}, 0, false},
		{"total loss divides by zero", types.LogRow{"Action": "SELL", "NotionalUSD": "1000", "Note": "Gain -100%"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ProfitFromSellRow(tt.row)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("profit = %v, want %v", got, tt.want)
			}
		})
	}
}
