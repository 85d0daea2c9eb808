package scriptlog

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Aman-CERP/scriptlog/internal/logging"
	"github.com/Aman-CERP/scriptlog/internal/output"
)

// DefaultRetentionDays is the retention window used by callers that do not
// choose one.
const DefaultRetentionDays = logging.DefaultRetentionDays

// Logger is a reusable handle on one component's log files.
type Logger struct {
	l *logging.Logger
}

type options struct {
	logPath   string
	component string
	host      string
	console   io.Writer
	noColor   bool
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Logger.
type Option func(*options)

// WithLogPath sets the base directory under which Logs/ is created.
func WithLogPath(path string) Option {
	return func(o *options) {
		o.logPath = path
	}
}

// WithComponent sets the component name embedded in file names.
func WithComponent(name string) Option {
	return func(o *options) {
		o.component = name
	}
}

// WithHost overrides the host identifier embedded in file names.
func WithHost(host string) Option {
	return func(o *options) {
		o.host = host
	}
}

// WithConsole sets where LogAndConsole echoes messages. Default: stdout.
func WithConsole(w io.Writer) Option {
	return func(o *options) {
		o.console = w
	}
}

// WithNoColor disables highlighting of console echoes.
func WithNoColor(noColor bool) Option {
	return func(o *options) {
		o.noColor = noColor
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLogger sets the slog logger that receives scriptlog's own diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a Logger.
//
// Returns an ERR_402 error if the host or component name contains a path
// separator.
func New(opts ...Option) (*Logger, error) {
	o := &options{console: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	var console *output.Writer
	if o.noColor {
		console = output.NewWithColor(o.console, false)
	} else {
		console = output.New(o.console)
	}

	l, err := logging.New(logging.Config{
		BaseDir:     o.logPath,
		Host:        o.host,
		Component:   o.component,
		Console:     console,
		Now:         o.now,
		Diagnostics: o.logger,
	})
	if err != nil {
		return nil, err
	}
	return &Logger{l: l}, nil
}

// Dir returns the log directory, <logPath>/Logs.
func (l *Logger) Dir() string {
	return l.l.Dir()
}

// Path returns the path of today's log file.
func (l *Logger) Path() string {
	return l.l.Path()
}

// Log appends message to today's log file.
func (l *Logger) Log(message string) error {
	return l.l.Log(message)
}

// LogAndConsole echoes message to the console, then appends it to today's
// log file.
func (l *Logger) LogAndConsole(message string) error {
	return l.l.LogAndConsole(message)
}

// DeleteOldLogFiles removes *.log files in the log directory whose last
// modification is at least days days ago, announcing each one through
// LogAndConsole. It returns the names of the deleted files.
//
// A missing log directory is not an error. Failed deletions do not stop the
// sweep; they are returned together once it finishes. Repeating a sweep
// deletes nothing more when days > 0; with days = 0 it also deletes the
// file the previous sweep's notices were written to.
func (l *Logger) DeleteOldLogFiles(days int) ([]string, error) {
	return l.l.DeleteOldLogFiles(days)
}

// Log appends message to today's log file using a Logger built from opts.
func Log(message string, opts ...Option) error {
	l, err := New(opts...)
	if err != nil {
		return err
	}
	return l.Log(message)
}

// LogAndConsole echoes message to the console and appends it to today's log
// file using a Logger built from opts.
func LogAndConsole(message string, opts ...Option) error {
	l, err := New(opts...)
	if err != nil {
		return err
	}
	return l.LogAndConsole(message)
}

// DeleteOldLogFiles prunes old log files using a Logger built from opts.
func DeleteOldLogFiles(days int, opts ...Option) ([]string, error) {
	l, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return l.DeleteOldLogFiles(days)
}
