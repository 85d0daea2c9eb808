package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/scriptlog/internal/errors"
)

// writeAgedLog creates a log file under base/Logs last modified age days ago.
func writeAgedLog(t *testing.T, base, name string, age int) string {
	t.Helper()
	dir := filepath.Join(base, "Logs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("[2020-01-01 00:00:00Z] old\n"), 0o644))
	mod := time.Now().AddDate(0, 0, -age)
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestPruneCmd_DeletesFilesOlderThanDays(t *testing.T) {
	// Given: log files 40 and 10 days old
	setupCLI(t)
	base := t.TempDir()
	old := writeAgedLog(t, base, "HOST01-backup-01-01-20.log", 40)
	recent := writeAgedLog(t, base, "HOST01-backup-02-01-20.log", 10)

	// When: pruning with a 30 day window
	out, err := runCLI(t, "", "--log-path", base, "--host", "HOST01", "--component", "backup", "--no-color",
		"prune", "--days", "30")

	// Then: only the old file is removed, with an announcement and a summary
	require.NoError(t, err)
	assert.NoFileExists(t, old)
	assert.FileExists(t, recent)
	assert.Contains(t, out, "[+] Deleting old log file HOST01-backup-01-01-20.log...\n")
	assert.Contains(t, out, "Deleted 1 log file(s) older than 30 day(s)")

	// And: the announcement is recorded in today's log
	entries := readEntries(t, todayFile(base, "backup"))
	require.Len(t, entries, 1)
	assert.Equal(t, "[+] Deleting old log file HOST01-backup-01-01-20.log...", entries[0].Message)
}

func TestPruneCmd_DefaultsToConfiguredRetention(t *testing.T) {
	// Given: a project config keeping five days of logs
	wd := setupCLI(t)
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".scriptlog.yaml"), []byte("retention_days: 5\n"), 0o644))
	old := writeAgedLog(t, base, "HOST01-backup-01-01-20.log", 6)
	recent := writeAgedLog(t, base, "HOST01-backup-02-01-20.log", 4)

	// When: pruning without --days
	_, err := runCLI(t, "", "--log-path", base, "--host", "HOST01", "--component", "backup", "prune")

	// Then: the configured window applies
	require.NoError(t, err)
	assert.NoFileExists(t, old)
	assert.FileExists(t, recent)
}

func TestPruneCmd_NothingToDelete(t *testing.T) {
	setupCLI(t)
	base := t.TempDir()

	out, err := runCLI(t, "", "--log-path", base, "--host", "HOST01", "prune", "--days", "30")

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoDirExists(t, filepath.Join(base, "Logs"))
}

func TestPruneCmd_NegativeDays(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "", "--log-path", t.TempDir(), "prune", "--days", "-1")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}
