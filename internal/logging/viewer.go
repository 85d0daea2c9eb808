package logging

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Aman-CERP/scriptlog/internal/output"
)

// ViewerConfig configures the log viewer.
type ViewerConfig struct {
	Pattern  *regexp.Regexp // Filter by pattern
	NoColor  bool           // Disable colors
	ShowFile bool           // Prefix entries with their file name
	UTC      bool           // Display timestamps in UTC instead of local time
}

// Viewer reads log entries back from daily log files.
type Viewer struct {
	config ViewerConfig
	out    io.Writer
	styles output.Styles
}

// NewViewer creates a new log viewer.
func NewViewer(cfg ViewerConfig, out io.Writer) *Viewer {
	return &Viewer{
		config: cfg,
		out:    out,
		styles: output.GetStyles(out, cfg.NoColor),
	}
}

// Tail reads the last n matching entries from a log file.
func (v *Viewer) Tail(path string, n int) ([]Entry, error) {
	entries, err := v.readFile(path)
	if err != nil {
		return nil, err
	}
	return lastN(entries, n), nil
}

// TailFiles reads the last n matching entries across several log files,
// taken in the order given (oldest file first).
func (v *Viewer) TailFiles(paths []string, n int) ([]Entry, error) {
	var all []Entry
	for _, path := range paths {
		entries, err := v.readFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // pruned since listing
			}
			return nil, err
		}
		all = append(all, entries...)
	}
	return lastN(all, n), nil
}

// readFile parses and filters all entries of a file.
func (v *Viewer) readFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	name := filepath.Base(path)
	scanner := bufio.NewScanner(file)
	// Long messages are written as a single line
	const maxCapacity = 1024 * 1024
	scanner.Buffer(make([]byte, 64*1024), maxCapacity)

	var entries []Entry
	for scanner.Scan() {
		entry := ParseEntry(scanner.Text())
		entry.File = name
		if v.matchesFilter(entry) {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	return entries, nil
}

// Follow streams new entries of one component's log files to entries until
// ctx is cancelled. It starts at the end of the newest existing file and
// moves on to the next day's file when that file appears in dir.
func (v *Viewer) Follow(ctx context.Context, dir, prefix string, entries chan<- Entry) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch log directory %s: %w", dir, err)
	}

	var cur *followedFile
	defer func() { cur.close() }()

	files, err := ListLogFiles(dir, prefix)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		newest := files[len(files)-1]
		cur, err = openFollowed(newest.Path, newest.Date, true)
		if err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			date, ok := ParseFileDate(filepath.Base(event.Name), prefix)
			if !ok {
				continue
			}

			// A Create on the followed path means it was pruned and recreated
			if cur == nil || event.Name != cur.path || event.Has(fsnotify.Create) {
				if cur != nil && date.Before(cur.date) {
					continue // an older day's file; not followed
				}
				next, err := openFollowed(event.Name, date, false)
				if err != nil {
					continue // vanished before it could be opened
				}
				if cur != nil {
					if !v.drain(ctx, cur, entries) {
						next.close()
						return nil
					}
					cur.close()
				}
				cur = next
			}

			if !v.drain(ctx, cur, entries) {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("log watcher failed: %w", err)
		}
	}
}

// followedFile is a log file being followed.
type followedFile struct {
	path    string
	date    time.Time
	file    *os.File
	reader  *bufio.Reader
	partial string
}

// openFollowed opens path for following, at its end when atEnd is set.
func openFollowed(path string, date time.Time, atEnd bool) (*followedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if atEnd {
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to seek to end: %w", err)
		}
	}
	return &followedFile{
		path:   path,
		date:   date,
		file:   f,
		reader: bufio.NewReader(f),
	}, nil
}

func (f *followedFile) close() {
	if f != nil && f.file != nil {
		_ = f.file.Close()
	}
}

// drain sends every complete line appended since the last read.
// Returns false if ctx was cancelled while sending.
func (v *Viewer) drain(ctx context.Context, f *followedFile, entries chan<- Entry) bool {
	name := filepath.Base(f.path)
	for {
		chunk, err := f.reader.ReadString('\n')
		if err != nil {
			// Incomplete line: keep it until the rest is written
			f.partial += chunk
			return true
		}

		line := strings.TrimRight(f.partial+chunk, "\r\n")
		f.partial = ""
		if line == "" {
			continue
		}

		entry := ParseEntry(line)
		entry.File = name
		if !v.matchesFilter(entry) {
			continue
		}
		select {
		case entries <- entry:
		case <-ctx.Done():
			return false
		}
	}
}

// FormatEntry formats a log entry for display.
func (v *Viewer) FormatEntry(entry Entry) string {
	if !entry.IsValid {
		return v.withFile(entry, entry.Raw)
	}

	t := entry.Time.Local()
	if v.config.UTC {
		t = entry.Time.UTC()
	}
	timestamp := t.Format("2006-01-02 15:04:05")
	if !v.config.NoColor {
		timestamp = v.styles.Timestamp.Render(timestamp)
	}

	return v.withFile(entry, fmt.Sprintf("%s %s", timestamp, entry.Message))
}

// withFile prefixes the file name label if enabled.
func (v *Viewer) withFile(entry Entry, s string) string {
	if !v.config.ShowFile || entry.File == "" {
		return s
	}
	label := fmt.Sprintf("[%s]", strings.TrimSuffix(entry.File, LogFileExt))
	if !v.config.NoColor {
		label = v.styles.Label.Render(label)
	}
	return label + " " + s
}

// Print prints entries to the output.
func (v *Viewer) Print(entries []Entry) {
	for _, entry := range entries {
		_, _ = fmt.Fprintln(v.out, v.FormatEntry(entry))
	}
}

// matchesFilter checks if an entry matches the configured filters.
func (v *Viewer) matchesFilter(entry Entry) bool {
	if v.config.Pattern != nil && !v.config.Pattern.MatchString(entry.Raw) {
		return false
	}
	return true
}

func lastN(entries []Entry, n int) []Entry {
	if n >= 0 && len(entries) > n {
		return entries[len(entries)-n:]
	}
	return entries
}
