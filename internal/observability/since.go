package observability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultSince is the metrics window used when none is given.
const DefaultSince = "7d"

// ParseSince parses a window like "7d", "30d" or "24h" and returns the
// corresponding time before now. An empty string means DefaultSince.
// Counts must be non-negative whole numbers.
func ParseSince(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultSince
	}

	unit := s[len(s)-1]
	if unit != 'd' && unit != 'h' {
		return time.Time{}, fmt.Errorf("unsupported duration format %q (use e.g. 7d, 30d, 24h)", s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		if unit == 'd' {
			return time.Time{}, fmt.Errorf("invalid day duration %q", s)
		}
		return time.Time{}, fmt.Errorf("invalid hour duration %q", s)
	}

	if unit == 'd' {
		return now.AddDate(0, 0, -n), nil
	}
	return now.Add(-time.Duration(n) * time.Hour), nil
}
