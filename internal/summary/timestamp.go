package summary

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// The sheet writer records second-precision UTC timestamps with a Z
// suffix. Hand-edited rows show up with fractional seconds, explicit
// offsets, or a bare date, so parsing is layout-list driven.
var (
	offsetLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999-0700",
		"2006-01-02 15:04:05.999999999Z07:00",
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// ParseTimestamp parses a log timestamp into a UTC instant. A trailing
// Z marks a naive date-time to be read as UTC; otherwise an explicit
// offset is honored and a missing one means UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	if rest, ok := strings.CutSuffix(s, "Z"); ok {
		return parseNaive(rest)
	}
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return parseNaive(s)
}

func parseNaive(s string) (time.Time, error) {
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
