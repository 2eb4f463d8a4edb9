// Package dates normalizes date-like strings into UTC timestamps.
package dates

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parse interprets an arbitrary date-like string and returns the timestamp
// in UTC. The second return is false when the input is empty or unparseable.
// Strings without timezone information are read as UTC. Parse is total: no
// input crashes it.
func Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	ts, err := parseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}

	return ts.UTC(), true
}

// parseIn wraps the permissive parser and converts its panics on adversarial
// input into ordinary parse failures.
func parseIn(raw string, loc *time.Location) (ts time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			ts = time.Time{}
			err = errUnparseable
		}
	}()

	return dateparse.ParseIn(raw, loc)
}
