package observability

import (
	"strings"
	"testing"
	"time"
)

func TestParseSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr string
	}{
		{"empty defaults to 7d", "", now.AddDate(0, 0, -7), ""},
		{"whitespace defaults to 7d", "  ", now.AddDate(0, 0, -7), ""},
		{"days", "30d", now.AddDate(0, 0, -30), ""},
		{"hours", "24h", now.Add(-24 * time.Hour), ""},
		{"zero", "0h", now, ""},
		{"negative days", "-5d", time.Time{}, "invalid day duration"},
		{"negative hours", "-1h", time.Time{}, "invalid hour duration"},
		{"fractional days", "7.5d", time.Time{}, "invalid day duration"},
		{"missing number", "d", time.Time{}, "invalid day duration"},
		{"letters", "xh", time.Time{}, "invalid hour duration"},
		{"unknown unit", "7w", time.Time{}, "unsupported duration format"},
		{"no unit", "7", time.Time{}, "unsupported duration format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSince(tt.input, now)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseSince(%q) error = %v, want %q", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSince(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseSince(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
