package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName_Format(t *testing.T) {
	day := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)

	assert.Equal(t, "SRV-backup-05-03-26.log", FileName("SRV", "backup", day))
	assert.Equal(t, "SRV--05-03-26.log", FileName("SRV", "", day))
}

func TestLogDirAndFilePath(t *testing.T) {
	day := time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local)

	assert.Equal(t, filepath.Join("base", "Logs"), LogDir("base"))
	assert.Equal(t, filepath.Join("base", "Logs", "H-c-31-12-26.log"), FilePath("base", "H", "c", day))
}

func TestParseFileDate(t *testing.T) {
	prefix := FilePrefix("web-01", "sync")

	tests := []struct {
		name string
		file string
		ok   bool
	}{
		{"own file", "web-01-sync-19-10-26.log", true},
		{"other component with shared prefix", "web-01-sync-extra-19-10-26.log", false},
		{"other host", "web-02-sync-19-10-26.log", false},
		{"wrong extension", "web-01-sync-19-10-26.txt", false},
		{"bad date", "web-01-sync-40-10-26.log", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := ParseFileDate(tt.file, prefix)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, 2026, date.Year())
				assert.Equal(t, time.October, date.Month())
				assert.Equal(t, 19, date.Day())
			}
		})
	}
}

func TestDefaultBaseDir_UsesExecutableDirectory(t *testing.T) {
	// Given: an executable inside a temp dir
	dir := t.TempDir()
	exe := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(exe, nil, 0o755))
	stubExecutable(t, func() (string, error) { return exe, nil })

	// Then: the default base directory is that directory
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, DefaultBaseDir())
}

func TestDefaultBaseDir_FallsBackToWorkingDirectory(t *testing.T) {
	// Given: the executable cannot be located
	stubExecutable(t, func() (string, error) { return "", errors.New("no exe") })

	// Then: the working directory is used
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, DefaultBaseDir())
}

func TestWorkingDir_FallsBackToDot(t *testing.T) {
	orig := getwd
	getwd = func() (string, error) { return "", errors.New("gone") }
	t.Cleanup(func() { getwd = orig })

	assert.Equal(t, ".", WorkingDir())
}

func TestResolveBaseDir_Priority(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	script := filepath.Join(t.TempDir(), "jobs", "backup.ps1")

	assert.Equal(t, "/explicit", ResolveBaseDir("/explicit", script))
	assert.Equal(t, filepath.Dir(script), ResolveBaseDir("", script))
	assert.Equal(t, wd, ResolveBaseDir("", ""))
}

func TestComponentFromScript(t *testing.T) {
	assert.Equal(t, "backup", ComponentFromScript("/opt/jobs/backup.ps1"))
	assert.Equal(t, "nightly.sync", ComponentFromScript("nightly.sync.sh"))
	assert.Equal(t, "run", ComponentFromScript("run"))
	assert.Equal(t, "", ComponentFromScript(""))
}

func TestHostname_Placeholder(t *testing.T) {
	orig := hostname
	t.Cleanup(func() { hostname = orig })

	hostname = func() (string, error) { return "", errors.New("no host") }
	assert.Equal(t, UnknownHost, Hostname())

	hostname = func() (string, error) { return "BUILD-7", nil }
	assert.Equal(t, "BUILD-7", Hostname())
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("component", ""))
	assert.NoError(t, ValidateName("component", "backup-job"))
	assert.Error(t, ValidateName("component", "a/b"))
	assert.Error(t, ValidateName("component", `a\b`))
	assert.Error(t, ValidateName("host", ".."))
}

func stubExecutable(t *testing.T, fn func() (string, error)) {
	t.Helper()
	orig := executable
	executable = fn
	t.Cleanup(func() { executable = orig })
}
