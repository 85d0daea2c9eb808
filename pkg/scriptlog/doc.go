// Package scriptlog appends timestamped messages to per-day, per-host log
// files and prunes old ones.
//
// # Layout
//
// Each caller writes to
//
//	<logPath>/Logs/<host>-<component>-<dd-MM-yy>.log
//
// one line per call, formatted as "[2006-01-02 15:04:05Z] message" in UTC.
// The file date follows the local calendar, so a new file begins at local
// midnight.
//
// # Usage
//
// One-off calls resolve everything from options:
//
//	_ = scriptlog.Log("backup started", scriptlog.WithComponent("backup"))
//
// Callers that log repeatedly build a Logger once:
//
//	log, err := scriptlog.New(
//	    scriptlog.WithLogPath("/srv/jobs"),
//	    scriptlog.WithComponent("backup"),
//	)
//	if err != nil {
//	    return err
//	}
//	_ = log.LogAndConsole("copying files")
//	deleted, err := log.DeleteOldLogFiles(scriptlog.DefaultRetentionDays)
//
// # Defaults
//
// Without WithLogPath, logs go under the running program's directory (or
// the working directory when that is unknown). Without WithHost, the
// machine host name is used. The component name defaults to empty.
//
// All operations are synchronous. A Logger is meant for one writer; several
// processes appending to the same file are not coordinated.
package scriptlog
