package logging

import (
	"strings"
	"time"
)

// TimestampLayout is the UTC, second-precision entry timestamp.
const TimestampLayout = "2006-01-02 15:04:05Z"

// Entry is one line of a log file.
type Entry struct {
	Time    time.Time
	Message string
	File    string // base name of the file the entry was read from
	Raw     string // original line
	IsValid bool   // whether the timestamp prefix parsed
}

// FormatEntry renders a log line (without the trailing newline).
func FormatEntry(t time.Time, message string) string {
	return "[" + t.UTC().Format(TimestampLayout) + "] " + message
}

// ParseEntry parses a line written by FormatEntry. Lines that do not carry
// a timestamp prefix (e.g. continuation lines of a multi-line message) are
// returned with IsValid false and the whole line as Message.
func ParseEntry(line string) Entry {
	entry := Entry{Raw: line, Message: line}

	if !strings.HasPrefix(line, "[") {
		return entry
	}
	end := strings.Index(line, "] ")
	if end < 0 {
		return entry
	}

	t, err := time.Parse(TimestampLayout, line[1:end])
	if err != nil {
		return entry
	}

	entry.Time = t
	entry.Message = line[end+2:]
	entry.IsValid = true
	return entry
}
