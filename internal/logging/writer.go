package logging

import (
	"os"
	"time"

	"github.com/Aman-CERP/scriptlog/internal/errors"
)

// DailyWriter appends to a component's daily log files.
// Each write names its date, so a new file begins when the date changes. Files are opened in append mode for each write and
// closed again; no handle is held between writes.
type DailyWriter struct {
	base      string
	host      string
	component string
	now       func() time.Time
}

// NewDailyWriter creates a writer for <base>/Logs/<host>-<component>-<date>.log.
// A nil now uses time.Now.
func NewDailyWriter(base, host, component string, now func() time.Time) *DailyWriter {
	if now == nil {
		now = time.Now
	}
	return &DailyWriter{
		base:      base,
		host:      host,
		component: component,
		now:       now,
	}
}

// Dir returns the log directory.
func (w *DailyWriter) Dir() string {
	return LogDir(w.base)
}

// Path returns the path of today's log file.
func (w *DailyWriter) Path() string {
	return w.PathAt(w.now())
}

// PathAt returns the path of the log file for t's date.
func (w *DailyWriter) PathAt(t time.Time) string {
	return FilePath(w.base, w.host, w.component, t)
}

// WriteAt appends p to the log file for t's date, creating the directory
// and the file as needed.
func (w *DailyWriter) WriteAt(t time.Time, p []byte) (int, error) {
	dir := w.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, errors.DirCreateError(dir, err)
	}

	path := w.PathAt(t)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, errors.WriteError(path, err)
	}

	n, err := f.Write(p)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, errors.WriteError(path, err)
	}
	return n, nil
}
