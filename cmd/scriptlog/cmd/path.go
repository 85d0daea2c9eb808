package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(opts *globalOptions) *cobra.Command {
	var dirOnly bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the path of today's log file",
		Example: `  tail -f "$(scriptlog --component backup path)"
  scriptlog path --dir`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, _, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			if dirOnly {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), l.Dir())
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), l.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&dirOnly, "dir", false, "Print the Logs directory instead")

	return cmd
}
