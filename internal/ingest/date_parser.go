package ingest

import (
	"strings"
	"time"
)

// dateLayouts are probed in order, ISO first (most reliable). Layouts
// without a time component parse as midnight UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// parseDateOr parses a calendar date or timestamp, falling back to
// the given ingestion time when the value is blank or matches no
// known layout. A bad date never fails a row.
func parseDateOr(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}
