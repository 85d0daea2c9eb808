package cmd

import (
	"github.com/spf13/cobra"
)

func newPruneCmd(opts *globalOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete log files older than the retention window",
		Long: `Delete *.log files in the Logs directory whose last modification is at
least --days days ago. Each deletion is announced on stdout and recorded in
today's log file.

--days defaults to retention_days from configuration (90 if unset).
--days 0 deletes every log file.`,
		Example: `  scriptlog --component backup prune
  scriptlog --log-path /srv/jobs prune --days 30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, s, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") {
				days = s.cfg.RetentionDays
			}

			deleted, err := l.DeleteOldLogFiles(days)

			if len(deleted) > 0 {
				newConsole(cmd.OutOrStdout(), s.noColor).Successf("Deleted %d log file(s) older than %d day(s)", len(deleted), days)
			}
			return err
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Retention window in days (default from config)")

	return cmd
}
