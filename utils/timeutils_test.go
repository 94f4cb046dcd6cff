package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIso8601(t *testing.T) {
	ts := time.Date(2025, 1, 27, 12, 30, 45, 123_000_000, time.UTC)
	assert.Equal(t, "2025-01-27T12:30:45.123+00:00", FormatIso8601(ts))

	// Non-UTC inputs are normalized.
	cet := time.FixedZone("CET", 3600)
	assert.Equal(t, "2025-01-27T12:30:45.123+00:00", FormatIso8601(ts.In(cet)))
}

func TestFormatIso8601TruncatesToMillis(t *testing.T) {
	ts := time.Date(2025, 1, 27, 12, 30, 45, 123_456_789, time.UTC)
	assert.Equal(t, "2025-01-27T12:30:45.123+00:00", FormatIso8601(ts))
}

func TestParseIso8601(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		want     time.Time
		wantZone bool
	}{
		{
			"utc with millis",
			"2025-01-27T12:30:45.123Z",
			time.Date(2025, 1, 27, 12, 30, 45, 123_000_000, time.UTC),
			true,
		},
		{
			"numeric offset",
			"2025-01-27T14:30:45.123+02:00",
			time.Date(2025, 1, 27, 12, 30, 45, 123_000_000, time.UTC),
			true,
		},
		{
			"no fractional seconds",
			"2025-01-27T12:30:45Z",
			time.Date(2025, 1, 27, 12, 30, 45, 0, time.UTC),
			true,
		},
		{
			"no zone",
			"2025-01-27T12:30:45.5",
			time.Date(2025, 1, 27, 12, 30, 45, 500_000_000, time.UTC),
			false,
		},
		{
			"bare date",
			"2025-01-27",
			time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hasZone, err := ParseIso8601(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wantZone, hasZone)
			assert.True(t, got.UTC().Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestParseIso8601Invalid(t *testing.T) {
	for _, v := range []string{"", "not-a-time", "27/01/2025", "2025-13-40T99:00:00Z"} {
		_, _, err := ParseIso8601(v)
		assert.Error(t, err, "value %q", v)
	}
}
