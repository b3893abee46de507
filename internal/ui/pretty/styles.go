// Package pretty provides Lipgloss-based styled output for the
// reconstructed tree and its statistics.
package pretty

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Tree components.
	Root      lipgloss.Style
	Folder    lipgloss.Style
	File      lipgloss.Style
	Connector lipgloss.Style
	Collapsed lipgloss.Style

	// Summary components.
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style

	// Misc.
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Root:      lipgloss.NewStyle().Bold(true),
		Folder:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		File:      lipgloss.NewStyle(),
		Connector: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Collapsed: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates pass-through styles for non-TTY output.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Root:      plain,
		Folder:    plain,
		File:      plain,
		Connector: plain,
		Collapsed: plain,

		SummaryTitle: plain,
		SummaryValue: plain,

		Dim:  plain,
		Bold: plain,
	}
}

// ColorEnabled resolves a --color mode ("auto", "always", "never")
// against whether the output file is a terminal.
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return out != nil && isatty.IsTerminal(out.Fd())
	}
}
