// Package cmd provides the CLI commands for scriptlog.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/scriptlog/internal/config"
	"github.com/Aman-CERP/scriptlog/internal/errors"
	"github.com/Aman-CERP/scriptlog/internal/logging"
	"github.com/Aman-CERP/scriptlog/internal/output"
	"github.com/Aman-CERP/scriptlog/pkg/version"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	logPath   string
	component string
	script    string
	host      string
	noColor   bool
	debug     bool

	diag *slog.Logger
}

// NewRootCmd creates the root command for the scriptlog CLI.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "scriptlog",
		Short: "Append timestamped lines to per-day log files",
		Long: `scriptlog gives shell scripts and scheduled jobs a shared log format.

Each message is appended to <log-path>/Logs/<host>-<component>-<dd-MM-yy>.log
as "[YYYY-MM-DD HH:MM:SSZ] message". A new file starts every day, and
'scriptlog prune' deletes files older than the retention window.`,
		Example: `  # Log from a script, naming the file after it
  scriptlog --script "$0" log "backup started"

  # Log and echo to the terminal
  scriptlog --component backup echo "copying files"

  # Delete log files older than 30 days
  scriptlog --component backup prune --days 30`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "warn"
			if opts.debug {
				level = "debug"
			}
			opts.diag = logging.SetupDiagnostics(level, cmd.ErrOrStderr())
			slog.SetDefault(opts.diag)
			return nil
		},
	}

	cmd.SetVersionTemplate("scriptlog version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.logPath, "log-path", "", "Base directory for Logs/ (default: script or working directory)")
	cmd.PersistentFlags().StringVar(&opts.component, "component", "", "Component name used in log file names")
	cmd.PersistentFlags().StringVar(&opts.script, "script", "", "Calling script; its directory and name are used as defaults")
	cmd.PersistentFlags().StringVar(&opts.host, "host", "", "Host identifier (default: machine host name)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable highlighted console output")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Print diagnostics to stderr")

	cmd.AddCommand(newLogCmd(opts))
	cmd.AddCommand(newEchoCmd(opts))
	cmd.AddCommand(newPruneCmd(opts))
	cmd.AddCommand(newTailCmd(opts))
	cmd.AddCommand(newPathCmd(opts))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and prints any error in CLI form.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

// printError writes err to w with its code and hints.
func printError(w io.Writer, err error) {
	output.New(w).Error(errors.FormatForCLI(err))
}

// ExitCode maps an error from Execute to the process exit status:
// 2 when a log file could not be written at all, 1 for any other failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsFatal(err):
		return 2
	default:
		return 1
	}
}

// settings is the effective configuration for one invocation:
// flags over environment over config files over defaults.
type settings struct {
	cfg       *config.Config
	baseDir   string
	host      string
	component string
	noColor   bool
}

// resolve merges configuration files and environment with the flags.
func (o *globalOptions) resolve() (*settings, error) {
	cfg, err := config.Load(logging.WorkingDir())
	if err != nil {
		return nil, err
	}

	s := &settings{
		cfg:       cfg,
		host:      firstNonEmpty(o.host, cfg.Host),
		component: firstNonEmpty(o.component, cfg.ComponentName, logging.ComponentFromScript(o.script)),
		noColor:   o.noColor || cfg.NoColor,
	}
	s.baseDir = logging.ResolveBaseDir(firstNonEmpty(o.logPath, cfg.BaseDirectory), o.script)
	if s.host == "" {
		s.host = logging.Hostname()
	}
	return s, nil
}

// newLogger builds a file logger that echoes to the command's stdout.
func (o *globalOptions) newLogger(cmd *cobra.Command) (*logging.Logger, *settings, error) {
	s, err := o.resolve()
	if err != nil {
		return nil, nil, err
	}

	l, err := logging.New(logging.Config{
		BaseDir:     s.baseDir,
		Host:        s.host,
		Component:   s.component,
		Console:     newConsole(cmd.OutOrStdout(), s.noColor),
		Diagnostics: o.diag,
	})
	if err != nil {
		return nil, nil, err
	}
	return l, s, nil
}

// newConsole returns a writer that colours only when allowed and w is a terminal.
func newConsole(w io.Writer, noColor bool) *output.Writer {
	if noColor {
		return output.NewWithColor(w, false)
	}
	return output.New(w)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
