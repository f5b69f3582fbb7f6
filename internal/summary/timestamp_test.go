package summary

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"sheet format", "2025-03-07T14:30:05Z", time.Date(2025, 3, 7, 14, 30, 5, 0, time.UTC)},
		{"fractional seconds", "2025-03-07T14:30:05.25Z", time.Date(2025, 3, 7, 14, 30, 5, 250000000, time.UTC)},
		{"naive assumes utc", "2025-03-07T14:30:05", time.Date(2025, 3, 7, 14, 30, 5, 0, time.UTC)},
		{"explicit offset kept", "2025-03-07T09:30:05-05:00", time.Date(2025, 3, 7, 14, 30, 5, 0, time.UTC)},
		{"bare date", "2025-03-07", time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)},
		{"space separator", "2025-03-07 14:30:05", time.Date(2025, 3, 7, 14, 30, 5, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTimestampRejects(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "Z", "07/03/2025"} {
		if _, err := ParseTimestamp(in); err == nil {
			t.Errorf("ParseTimestamp(%q) succeeded, want error", in)
		}
	}
}
