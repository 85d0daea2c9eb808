// Package logging implements scriptlog's per-day, per-host log files.
//
// A log file lives at <base>/Logs/<host>-<component>-<dd-MM-yy>.log and holds
// one "[YYYY-MM-DD HH:MM:SSZ] message" line per entry, appended in call order.
// Logger appends entries (optionally echoing them to the console) and prunes
// files older than a retention window. Viewer reads the files back for the
// tail and follow commands.
//
// Writers are not coordinated across processes: two processes appending to
// the same file may interleave lines.
package logging
