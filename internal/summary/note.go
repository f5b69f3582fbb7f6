package summary

import (
	"strconv"
	"strings"
)

const gainToken = "0123456789.-"

// ParseGainPercent extracts the percentage following the word "gain" in
// free-form note text, e.g. "partial exit, Gain 5.23%". ok is false
// when the note carries no recognizable gain.
//
// The scan is permissive rather than a strict grammar: runes before the
// first digit-like rune are skipped, collection stops at the first rune
// outside {digits, '.', '-'} once it has started, and any token strconv
// rejects reads as no gain.
func ParseGainPercent(note string) (float64, bool) {
	if note == "" {
		return 0, false
	}
	lower := strings.ToLower(note)
	if !strings.Contains(lower, "gain") || !strings.Contains(lower, "%") {
		return 0, false
	}
	frag := lower[strings.Index(lower, "gain")+len("gain"):]

	var num strings.Builder
	for _, ch := range frag {
		if strings.ContainsRune(gainToken, ch) {
			num.WriteRune(ch)
		} else if num.Len() > 0 {
			break
		}
	}
	if num.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
