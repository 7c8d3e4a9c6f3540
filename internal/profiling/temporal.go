package profiling

import (
	"strings"
	"time"

	"vizlens/domain/profile"
)

// dateLayouts are tried in order when parsing temporal values. Unparseable
// entries are discarded silently rather than reported.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
}

// ParseDate parses a raw cell value as a timestamp
func ParseDate(value string) (time.Time, bool) {
	str := strings.TrimSpace(value)
	if str == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// temporalStats computes the parseable date span of a column
func temporalStats(values []string) *profile.TemporalStats {
	var min, max time.Time
	count := 0
	for _, v := range values {
		t, ok := ParseDate(v)
		if !ok {
			continue
		}
		if count == 0 || t.Before(min) {
			min = t
		}
		if count == 0 || t.After(max) {
			max = t
		}
		count++
	}
	if count == 0 {
		return nil
	}

	return &profile.TemporalStats{
		Count:    count,
		MinDate:  min.Format("2006-01-02"),
		MaxDate:  max.Format("2006-01-02"),
		SpanDays: int(max.Sub(min).Hours() / 24),
	}
}
