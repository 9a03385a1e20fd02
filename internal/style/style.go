// Package style provides terminal output styling for lm commands.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorAccent = lipgloss.Color("39")  // blue
	colorMuted  = lipgloss.Color("242") // gray
	colorBad    = lipgloss.Color("196") // bright red
	colorGood   = lipgloss.Color("76")  // green
)

var (
	// Header is the style for table headers and section titles.
	Header = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// Muted is the style for secondary detail (paths, counts).
	Muted = lipgloss.NewStyle().Foreground(colorMuted)

	// Error is the style for inline error annotations.
	Error = lipgloss.NewStyle().Foreground(colorBad)

	// Success is the style for confirmation output.
	Success = lipgloss.NewStyle().Foreground(colorGood)
)

// ColorEnabled reports whether stdout supports colored output. Styled
// rendering degrades to plain text when it does not.
func ColorEnabled() bool {
	return termenv.DefaultOutput().Profile != termenv.Ascii
}
