package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Aman-CERP/scriptlog/internal/errors"
)

const (
	// LogDirName is the subdirectory of the base directory holding log files.
	LogDirName = "Logs"
	// LogFileExt is the extension every log file carries.
	LogFileExt = ".log"
	// FileDateLayout is the dd-MM-yy date embedded in log file names.
	FileDateLayout = "02-01-06"
	// UnknownHost is used when the host name cannot be determined.
	UnknownHost = "UNKNOWN-HOST"
)

// Overridable in tests.
var (
	executable = os.Executable
	getwd      = os.Getwd
	hostname   = os.Hostname
)

// LogDir returns the log directory for a base directory (<base>/Logs).
func LogDir(base string) string {
	return filepath.Join(base, LogDirName)
}

// FileName returns the log file name for host and component on t's local
// calendar date.
func FileName(host, component string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%s%s", host, component, t.Local().Format(FileDateLayout), LogFileExt)
}

// FilePath returns the full path of the log file for t.
func FilePath(base, host, component string, t time.Time) string {
	return filepath.Join(LogDir(base), FileName(host, component, t))
}

// FilePrefix returns the name prefix shared by all of a component's files.
func FilePrefix(host, component string) string {
	return host + "-" + component + "-"
}

// ParseFileDate reports whether name is one of prefix's daily files and
// returns its date.
func ParseFileDate(name, prefix string) (time.Time, bool) {
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, LogFileExt) {
		return time.Time{}, false
	}
	datePart := strings.TrimSuffix(strings.TrimPrefix(name, prefix), LogFileExt)
	date, err := time.ParseInLocation(FileDateLayout, datePart, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// DefaultBaseDir returns the directory of the running program, falling
// back to the current working directory when it cannot be determined.
func DefaultBaseDir() string {
	exe, err := executable()
	if err != nil {
		le := errors.New(errors.ErrCodeBaseDirUnresolved, "cannot locate executable, using working directory", err)
		slog.Debug("Default base directory fallback", errors.FormatForLog(le)...)
		return WorkingDir()
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// WorkingDir returns the current working directory, or "." if unknown.
func WorkingDir() string {
	wd, err := getwd()
	if err != nil {
		return "."
	}
	return wd
}

// ResolveBaseDir picks the base directory for a caller.
// Priority:
// 1. Explicit path (if provided)
// 2. Directory of the calling script (if provided)
// 3. Current working directory
func ResolveBaseDir(explicit, script string) string {
	if explicit != "" {
		return explicit
	}
	if script != "" {
		if abs, err := filepath.Abs(script); err == nil {
			return filepath.Dir(abs)
		}
		return filepath.Dir(script)
	}
	return WorkingDir()
}

// ComponentFromScript derives a component name from a script path:
// "/opt/jobs/backup.ps1" becomes "backup".
func ComponentFromScript(script string) string {
	if script == "" {
		return ""
	}
	base := filepath.Base(script)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Hostname returns the machine's host name or UnknownHost.
func Hostname() string {
	h, err := hostname()
	if err != nil || h == "" {
		return UnknownHost
	}
	return h
}

// ValidateName rejects host or component names that would place the log
// file outside the log directory.
func ValidateName(kind, name string) error {
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.New(errors.ErrCodeInvalidPath,
			fmt.Sprintf("%s name %q must not contain path separators", kind, name), nil)
	}
	return nil
}
