package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Aman-CERP/scriptlog/internal/output"
)

// Console receives the operator-facing copy of a message.
// *output.Writer implements it.
type Console interface {
	Highlight(msg string)
}

// Config contains file logger configuration.
type Config struct {
	// BaseDir is the directory under which Logs/ is created.
	// Empty means DefaultBaseDir().
	BaseDir string
	// Host is the host identifier in file names. Empty means Hostname().
	Host string
	// Component is the caller's logical name in file names. May be empty.
	Component string
	// Console receives LogAndConsole echoes. Nil means stdout with colour
	// auto-detection.
	Console Console
	// Now is the clock. Nil means time.Now.
	Now func() time.Time
	// Diagnostics receives internal debug/warn records. Nil means slog.Default().
	Diagnostics *slog.Logger
}

// Logger appends entries to daily log files and prunes old ones.
// It performs blocking, synchronous file I/O and is meant for a single
// writer.
type Logger struct {
	writer  *DailyWriter
	console Console
	now     func() time.Time
	log     *slog.Logger
}

// New creates a Logger, filling defaults for unset fields.
// Returns an error if the host or component name is not a valid file name part.
func New(cfg Config) (*Logger, error) {
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir()
	}
	if cfg.Host == "" {
		cfg.Host = Hostname()
	}
	if err := ValidateName("host", cfg.Host); err != nil {
		return nil, err
	}
	if err := ValidateName("component", cfg.Component); err != nil {
		return nil, err
	}
	if cfg.Console == nil {
		cfg.Console = output.New(os.Stdout)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = slog.Default()
	}

	return &Logger{
		writer:  NewDailyWriter(cfg.BaseDir, cfg.Host, cfg.Component, cfg.Now),
		console: cfg.Console,
		now:     cfg.Now,
		log:     cfg.Diagnostics,
	}, nil
}

// Dir returns the log directory.
func (l *Logger) Dir() string {
	return l.writer.Dir()
}

// Path returns the path of today's log file.
func (l *Logger) Path() string {
	return l.writer.Path()
}

// Log appends "[<UTC timestamp>] message" as a new line to today's log file.
// The log directory is created if missing. Directory and write failures are
// returned as fatal errors and are not retried.
func (l *Logger) Log(message string) error {
	t := l.now()
	line := FormatEntry(t, message) + "\n"

	if _, err := l.writer.WriteAt(t, []byte(line)); err != nil {
		return err
	}

	l.log.Debug("Log entry written",
		slog.String("path", l.writer.PathAt(t)),
		slog.Int("bytes", len(line)))
	return nil
}

// LogAndConsole echoes message to the console, then performs the same
// write as Log. The two writes are not transactional: a failed file write
// still leaves the console copy.
func (l *Logger) LogAndConsole(message string) error {
	l.console.Highlight(message)
	return l.Log(message)
}

// SetupDiagnostics builds the logger for scriptlog's own diagnostics.
// Records go to w as text at the given level (debug, info, warn, error).
func SetupDiagnostics(level string, w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler)
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
