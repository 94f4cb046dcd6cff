package utils

import (
	"time"
)

// Iso8601Millis is the timestamp layout used throughout the manifest:
// millisecond precision with a numeric zone offset.
const Iso8601Millis = "2006-01-02T15:04:05.000-07:00"

// Iso8601Now returns the current UTC time in ISO 8601 format with
// millisecond precision.
func Iso8601Now() string {
	return time.Now().UTC().Format(Iso8601Millis)
}

// FormatIso8601 renders t in ISO 8601 format with millisecond precision,
// normalized to UTC.
func FormatIso8601(t time.Time) string {
	return t.UTC().Format(Iso8601Millis)
}

// ParseIso8601 parses an ISO 8601 timestamp. Fractional seconds and the
// zone offset are optional, and a bare date is accepted as midnight.
// hasZone reports whether the input carried a zone offset; the caller
// decides what to assume when it did not.
func ParseIso8601(value string) (t time.Time, hasZone bool, err error) {
	if t, err = time.Parse(time.RFC3339Nano, value); err == nil {
		return t, true, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02"} {
		if t, err = time.Parse(layout, value); err == nil {
			return t, false, nil
		}
	}
	return time.Time{}, false, err
}
