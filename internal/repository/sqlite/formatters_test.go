package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected interface{}
	}{
		{
			name:     "utc time",
			input:    time.Date(2025, 3, 1, 10, 30, 45, 0, time.UTC),
			expected: "2025-03-01T10:30:45Z",
		},
		{
			name:     "zero time is null",
			input:    time.Time{},
			expected: nil,
		},
		{
			name:     "time with offset",
			input:    time.Date(2025, 3, 28, 14, 30, 0, 0, time.FixedZone("WAT", 3600)),
			expected: "2025-03-28T14:30:00+01:00",
		},
		{
			name:     "nanoseconds kept",
			input:    time.Date(2025, 3, 10, 9, 15, 30, 123456789, time.UTC),
			expected: "2025-03-10T09:15:30.123456789Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeForDB(tt.input))
		})
	}
}

func TestFormatTimePtrForDB(t *testing.T) {
	assert.Nil(t, FormatTimePtrForDB(nil))

	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-01T00:00:00Z", FormatTimePtrForDB(&at))
}

func TestParseTimeFromDB(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 15, 30, 500, time.FixedZone("", -5*3600))

	s, ok := FormatTimeForDB(at).(string)
	require.True(t, ok)

	parsed, err := ParseTimeFromDB(s)
	require.NoError(t, err)
	assert.True(t, at.Equal(parsed))

	_, err = ParseTimeFromDB("yesterday")
	assert.Error(t, err)
}
