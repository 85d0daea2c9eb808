package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colour palette (ANSI 256).
const (
	ColorLime   = "154" // success, file labels
	ColorYellow = "220" // highlighted log echoes, warnings
	ColorRed    = "196" // errors
	ColorGray   = "245" // secondary text, timestamps
)

// Styles holds the console styles.
type Styles struct {
	Highlight lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Dim       lipgloss.Style
	Timestamp lipgloss.Style
	Label     lipgloss.Style
}

// DefaultStyles returns coloured styles bound to a renderer for out, so
// the colour profile is detected from the real destination.
func DefaultStyles(out io.Writer) Styles {
	r := lipgloss.NewRenderer(out)
	return Styles{
		Highlight: r.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Success:   r.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Warning:   r.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:     r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Dim:       r.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Timestamp: r.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Label:     r.NewStyle().Foreground(lipgloss.Color(ColorLime)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Highlight: lipgloss.NewStyle(),
		Success:   lipgloss.NewStyle(),
		Warning:   lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle(),
		Dim:       lipgloss.NewStyle(),
		Timestamp: lipgloss.NewStyle(),
		Label:     lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on colour preference.
func GetStyles(out io.Writer, noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles(out)
}
