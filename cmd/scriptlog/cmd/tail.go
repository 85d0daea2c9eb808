package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Aman-CERP/scriptlog/internal/logging"
)

type tailOptions struct {
	lines    int
	follow   bool
	filter   string
	utc      bool
	showFile bool
}

func newTailCmd(opts *globalOptions) *cobra.Command {
	var to tailOptions

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show recent entries of a component's log files",
		Long: `Show the last entries across a component's daily log files, oldest file
first. Use -f to keep printing new entries; following moves on to the next
day's file at midnight.`,
		Example: `  scriptlog --component backup tail
  scriptlog --component backup tail -n 100 --filter error
  scriptlog --script ./backup.sh tail -f`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTail(cmd, opts, to)
		},
	}

	cmd.Flags().IntVarP(&to.lines, "lines", "n", 20, "Number of entries to show")
	cmd.Flags().BoolVarP(&to.follow, "follow", "f", false, "Follow new entries (like tail -f)")
	cmd.Flags().StringVar(&to.filter, "filter", "", "Only show lines matching this regular expression")
	cmd.Flags().BoolVar(&to.utc, "utc", false, "Show timestamps in UTC instead of local time")
	cmd.Flags().BoolVar(&to.showFile, "show-file", false, "Prefix entries with their file name")

	return cmd
}

func runTail(cmd *cobra.Command, opts *globalOptions, to tailOptions) error {
	l, s, err := opts.newLogger(cmd)
	if err != nil {
		return err
	}

	var pattern *regexp.Regexp
	if to.filter != "" {
		pattern, err = regexp.Compile(to.filter)
		if err != nil {
			return fmt.Errorf("invalid filter pattern: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	viewer := logging.NewViewer(logging.ViewerConfig{
		Pattern:  pattern,
		NoColor:  !newConsole(out, s.noColor).UseColor(),
		ShowFile: to.showFile,
		UTC:      to.utc,
	}, out)

	prefix := logging.FilePrefix(s.host, s.component)
	files, err := logging.ListLogFiles(l.Dir(), prefix)
	if err != nil {
		return err
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}

	var entries []logging.Entry
	if len(paths) == 1 {
		entries, err = viewer.Tail(paths[0], to.lines)
	} else {
		entries, err = viewer.TailFiles(paths, to.lines)
	}
	if err != nil {
		return err
	}
	viewer.Print(entries)

	if !to.follow {
		return nil
	}
	return runFollow(cmd.Context(), viewer, out, l.Dir(), prefix)
}

func runFollow(ctx context.Context, viewer *logging.Viewer, out io.Writer, dir, prefix string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The directory must exist before it can be watched
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	entries := make(chan logging.Entry, 100)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(entries)
		return viewer.Follow(gctx, dir, prefix, entries)
	})
	g.Go(func() error {
		for entry := range entries {
			if _, err := fmt.Fprintln(out, viewer.FormatEntry(entry)); err != nil {
				return err
			}
		}
		return nil
	})

	return g.Wait()
}
