package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCmd_JoinsArguments(t *testing.T) {
	setupCLI(t)
	base := t.TempDir()

	out, err := runCLI(t, "", "--log-path", base, "--host", "HOST01", "--component", "backup",
		"log", "backup", "started")

	require.NoError(t, err)
	assert.Empty(t, out)
	entries := readEntries(t, todayFile(base, "backup"))
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsValid)
	assert.Equal(t, "backup started", entries[0].Message)
}

func TestLogCmd_ReadsStdinLines(t *testing.T) {
	// Given: piped output of another program
	setupCLI(t)
	base := t.TempDir()

	// When: logging without arguments
	_, err := runCLI(t, "first\nsecond\nthird\n", "--log-path", base, "--host", "HOST01", "--component", "rsync", "log")

	// Then: every line becomes an entry, in order
	require.NoError(t, err)
	entries := readEntries(t, todayFile(base, "rsync"))
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "third", entries[2].Message)
}

func TestLogCmd_EmptyComponent(t *testing.T) {
	setupCLI(t)
	base := t.TempDir()

	_, err := runCLI(t, "", "--log-path", base, "--host", "HOST01", "log", "HelloTemp")

	require.NoError(t, err)
	entries := readEntries(t, todayFile(base, ""))
	require.Len(t, entries, 1)
	assert.Equal(t, "HelloTemp", entries[0].Message)
	assert.Contains(t, filepath.Base(todayFile(base, "")), "HOST01--")
}

func TestEchoCmd_PrintsAndLogs(t *testing.T) {
	setupCLI(t)
	base := t.TempDir()

	out, err := runCLI(t, "", "--log-path", base, "--host", "HOST01", "--component", "backup", "--no-color",
		"echo", "copying files")

	require.NoError(t, err)
	assert.Equal(t, "copying files\n", out)
	entries := readEntries(t, todayFile(base, "backup"))
	require.Len(t, entries, 1)
	assert.Equal(t, "copying files", entries[0].Message)
}
