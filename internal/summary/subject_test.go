package summary

import (
	"strings"
	"testing"

	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42.5, "$42.50"},
		{-3, "-$3.00"},
		{0, "$0.00"},
		{113.63636363636364, "$113.64"},
		{1234.5, "$1234.50"},
		{-0.001, "-$0.00"},
		{0.005, "$0.01"},
		{1e6, "$1000000.00"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
		// Same input, same string, every time.
		if again := FormatUSD(tt.in); again != tt.want {
			t.Errorf("FormatUSD(%v) unstable on repeat: %q", tt.in, again)
		}
	}
}

func TestFormatUSDSign(t *testing.T) {
	for _, x := range []float64{-0.001, -1, -99999.99} {
		if got := FormatUSD(x); !strings.HasPrefix(got, "-$") {
			t.Errorf("FormatUSD(%v) = %q, want -$ prefix", x, got)
		}
	}
	for _, x := range []float64{0, 0.004, 1, 99999.99} {
		if got := FormatUSD(x); !strings.HasPrefix(got, "$") {
			t.Errorf("FormatUSD(%v) = %q, want $ prefix", x, got)
		}
	}
}

func TestSubject(t *testing.T) {
	tests := []struct {
		s    types.DailySummary
		want string
	}{
		{types.DailySummary{BoughtCount: 1, TotalProfit: 113.63636363636364}, "bought 1 stocks, sold $113.64 profit"},
		{types.DailySummary{}, "bought 0 stocks, sold $0.00 profit"},
		{types.DailySummary{BoughtCount: 7, TotalProfit: -41.255}, "bought 7 stocks, sold -$41.26 profit"},
	}
	for _, tt := range tests {
		if got := Subject(tt.s); got != tt.want {
			t.Errorf("Subject(%+v) = %q, want %q", tt.s, got, tt.want)
		}
	}
}
