package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newLogCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log [message...]",
		Short: "Append a message to today's log file",
		Long: `Append a message to today's log file.

Arguments are joined with spaces into one entry. With no arguments, each
line read from stdin becomes its own entry.`,
		Example: `  scriptlog --component backup log "backup started"
  rsync -av src/ dst/ 2>&1 | scriptlog --component backup log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			return forEachMessage(cmd.InOrStdin(), args, l.Log)
		},
	}
}

func newEchoCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "echo [message...]",
		Short: "Print a message highlighted and append it to today's log file",
		Long: `Print a message to stdout, highlighted when stdout is a terminal, and
append the same message to today's log file.

With no arguments, each line read from stdin is echoed and logged.`,
		Example: `  scriptlog --component backup echo "copying files"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			return forEachMessage(cmd.InOrStdin(), args, l.LogAndConsole)
		},
	}
}

// forEachMessage calls fn once with the joined args, or once per stdin
// line when there are none. It stops at the first error.
func forEachMessage(in io.Reader, args []string, fn func(string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}
