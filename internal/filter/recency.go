package filter

import (
	"fmt"
	"strings"
	"time"
)

// DefaultWindow is the look-back used when none is configured.
const DefaultWindow = 24 * time.Hour

// IsRecent reports whether ts falls inside [now-window, +inf). A nil
// timestamp is never recent; timestamps in the future are.
func IsRecent(ts *time.Time, window time.Duration, now time.Time) bool {
	if ts == nil {
		return false
	}
	return !ts.Before(now.Add(-window))
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an RFC3339 timestamp. Values without a zone offset
// are taken as UTC wall time, not converted from local time.
func ParseTimestamp(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("filter: empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("filter: unrecognized timestamp %q", s)
}
