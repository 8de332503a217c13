// Package styles provides shared lipgloss styles for gitree output.
//
// Findings are plain lines by contract; styling is limited to the
// WARNING prefix and the summary block, and is stripped entirely when
// output is piped or color is disabled.
package styles

import (
	"io"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Colors used in findings output
var (
	// Warning is used for the WARNING prefix (orange)
	Warning = lipgloss.Color("214")

	// Muted is used for the summary counter labels (gray)
	Muted = lipgloss.Color("244")
)

// Common styles
var (
	// WarningStyle renders the WARNING prefix
	WarningStyle = lipgloss.NewStyle().Foreground(Warning).Bold(true)

	// HeaderStyle renders the summary block header
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// MutedStyle renders counter labels
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Writer wraps w so styled output is downsampled to what the terminal
// actually supports.
func Writer(w io.Writer, environ []string) io.Writer {
	return &colorprofile.Writer{Forward: w, Profile: colorprofile.Detect(w, environ)}
}

// PlainWriter wraps w so all styling is stripped.
func PlainWriter(w io.Writer) io.Writer {
	return &colorprofile.Writer{Forward: w, Profile: colorprofile.NoTTY}
}
