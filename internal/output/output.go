// Package output provides console output for scriptlog: highlighted log
// echoes and the CLI's status lines.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Writer provides formatted console output.
type Writer struct {
	out      io.Writer
	useColor bool
	styles   Styles
}

// New creates a Writer that colours output only when out is a terminal
// and NO_COLOR is unset.
func New(out io.Writer) *Writer {
	return NewWithColor(out, IsTTY(out) && !DetectNoColor())
}

// NewWithColor creates a Writer with colour explicitly enabled or disabled.
func NewWithColor(out io.Writer, useColor bool) *Writer {
	return &Writer{
		out:      out,
		useColor: useColor,
		styles:   GetStyles(out, !useColor),
	}
}

// UseColor reports whether the writer emits styled output.
func (w *Writer) UseColor() bool {
	return w.useColor
}

// Highlight prints msg on its own line in the highlight colour.
// This is the console half of LogAndConsole.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Highlight(msg string) {
	_, _ = fmt.Fprintln(w.out, w.render(w.styles.Highlight, msg))
}

// Status prints a status message with an icon.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

// Success prints a success message with checkmark.
func (w *Writer) Success(msg string) {
	w.Status(w.render(w.styles.Success, "✓"), msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status(w.render(w.styles.Warning, "!"), msg)
}

// Error prints an error message. Multi-line messages keep their layout.
func (w *Writer) Error(msg string) {
	lines := strings.Split(strings.TrimRight(msg, "\n"), "\n")
	w.Status(w.render(w.styles.Error, "✗"), lines[0])
	for _, line := range lines[1:] {
		_, _ = fmt.Fprintf(w.out, "  %s\n", w.render(w.styles.Dim, line))
	}
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

// render applies style only in colour mode; lipgloss would otherwise still
// pad multi-line text and expand tabs.
func (w *Writer) render(style lipgloss.Style, s string) string {
	if !w.useColor {
		return s
	}
	return style.Render(s)
}
