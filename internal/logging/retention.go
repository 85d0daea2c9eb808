package logging

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Aman-CERP/scriptlog/internal/errors"
)

// DefaultRetentionDays is the retention window used when none is configured.
const DefaultRetentionDays = 90

// maxRetentionDays is the longest window a time.Duration can express.
// Longer windows keep every file.
const maxRetentionDays = int(math.MaxInt64 / int64(24*time.Hour))

// DeleteOldLogFiles removes *.log files in the log directory whose
// modification time is at least days old, announcing each one through
// LogAndConsole before removing it. days = 0 removes every file that
// existed when the sweep started.
//
// Notices go to today's file, so with days = 0 a repeat sweep deletes the
// file the previous sweep's notices created. For days > 0 a repeat sweep
// deletes nothing more.
//
// A window longer than a time.Duration can express (about 292 years)
// keeps every file.
//
// A missing or unreadable log directory means there is nothing to delete.
// A file that cannot be removed does not stop the sweep; all such failures
// are returned together. The names of removed files are returned in
// directory order.
func (l *Logger) DeleteOldLogFiles(days int) ([]string, error) {
	if days < 0 {
		return nil, errors.ValidationError(
			fmt.Sprintf("retention days must be zero or positive, got %d", days), nil)
	}

	dir := l.Dir()
	if days > maxRetentionDays {
		l.log.Debug("Retention window exceeds time range, nothing expires",
			slog.String("dir", dir),
			slog.Int("days", days))
		return nil, nil
	}
	cutoff := l.now().AddDate(0, 0, -days)

	files, err := ListLogFiles(dir, "")
	if err != nil {
		le := errors.New(errors.ErrCodeEnumerateFailed, "cannot list log directory, nothing to delete", err).
			WithDetail("dir", dir)
		l.log.Warn("Retention sweep skipped", errors.FormatForLog(le)...)
		return nil, nil
	}

	l.log.Debug("Retention sweep started",
		slog.String("dir", dir),
		slog.Int("days", days),
		slog.Time("cutoff", cutoff),
		slog.Int("candidates", len(files)))

	var deleted []string
	var failures []error
	for _, f := range files {
		if f.ModTime.After(cutoff) {
			continue
		}

		if err := l.LogAndConsole(fmt.Sprintf("[+] Deleting old log file %s...", f.Name)); err != nil {
			return deleted, err
		}

		if err := os.Remove(f.Path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			de := errors.DeleteError(f.Path, err)
			l.log.Warn("Failed to delete old log file", errors.FormatForLog(de)...)
			failures = append(failures, de)
			continue
		}
		deleted = append(deleted, f.Name)
	}

	l.log.Debug("Retention sweep finished",
		slog.Int("deleted", len(deleted)),
		slog.Int("failed", len(failures)))

	return deleted, stderrors.Join(failures...)
}

// LogFile describes a log file on disk.
type LogFile struct {
	Name    string
	Path    string
	Date    time.Time // from the file name; zero when prefix is empty
	ModTime time.Time
	Size    int64
}

// ListLogFiles lists regular *.log files in dir. When prefix is non-empty
// only that component's daily files are returned, sorted by date; otherwise
// all *.log files are returned in directory order. A missing directory
// yields no files and no error.
func ListLogFiles(dir, prefix string) ([]LogFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read log directory: %w", err)
	}

	var files []LogFile
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if ok, _ := filepath.Match("*"+LogFileExt, name); !ok {
			continue
		}

		var date time.Time
		if prefix != "" {
			d, ok := ParseFileDate(name, prefix)
			if !ok {
				continue
			}
			date = d
		}

		info, err := entry.Info()
		if err != nil {
			continue // removed since listing
		}

		files = append(files, LogFile{
			Name:    name,
			Path:    filepath.Join(dir, name),
			Date:    date,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	if prefix != "" {
		sort.SliceStable(files, func(i, j int) bool {
			return files[i].Date.Before(files[j].Date)
		})
	}

	return files, nil
}
