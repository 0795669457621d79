package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLocalTime_WinterTime(t *testing.T) {
	parsed, err := ParseLocalTime("2026-01-15 18:00")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC), parsed)
}

func TestParseLocalTime_SummerTime(t *testing.T) {
	parsed, err := ParseLocalTime("2026-07-15 18:00")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 15, 17, 0, 0, 0, time.UTC), parsed)
}

func TestParseLocalTime_AcceptsTSeparator(t *testing.T) {
	parsed, err := ParseLocalTime("2026-01-15T18:00")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC), parsed)
}

func TestParseLocalTime_RejectsGarbage(t *testing.T) {
	_, err := ParseLocalTime("tomorrow at noon")
	assert.Error(t, err)
}

func TestFormatStoredTime_FallsBackToRawValue(t *testing.T) {
	assert.Equal(t, "not-a-time", FormatStoredTime("not-a-time"))
}
