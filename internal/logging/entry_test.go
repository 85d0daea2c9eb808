package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEntry_UsesUTCSecondPrecision(t *testing.T) {
	// Given: a local time with sub-second precision
	loc := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2026, 10, 19, 16, 3, 7, 999_000_000, loc)

	// Then: the timestamp is converted to UTC and truncated to seconds
	assert.Equal(t, "[2026-10-19 14:03:07Z] hello", FormatEntry(at, "hello"))
}

func TestParseEntry_ValidLine(t *testing.T) {
	entry := ParseEntry("[2026-10-19 14:03:07Z] Backup finished: 3 files")

	assert.True(t, entry.IsValid)
	assert.Equal(t, "Backup finished: 3 files", entry.Message)
	assert.Equal(t, time.Date(2026, 10, 19, 14, 3, 7, 0, time.UTC), entry.Time)
}

func TestParseEntry_EmptyMessage(t *testing.T) {
	entry := ParseEntry(FormatEntry(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), ""))

	assert.True(t, entry.IsValid)
	assert.Equal(t, "", entry.Message)
}

func TestParseEntry_InvalidLines(t *testing.T) {
	for _, line := range []string{
		"continuation of a multi-line message",
		"[not a time] text",
		"[2026-10-19 14:03:07Z]no space",
		"",
	} {
		t.Run(line, func(t *testing.T) {
			entry := ParseEntry(line)
			assert.False(t, entry.IsValid)
			assert.Equal(t, line, entry.Message)
			assert.Equal(t, line, entry.Raw)
		})
	}
}
