// ABOUTME: Lipgloss styles for CLI output, bound to a renderer for the target writer
// ABOUTME: Writers that are not terminals get plain text with no escape sequences

package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the CLI palette.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
	Header  lipgloss.Style
}

// NewStyles builds styles rendered for w. The renderer detects the color
// profile of w, so piped output stays free of ANSI codes.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	// Assume a dark background so lipgloss never queries the terminal
	// with OSC 11 while an installer shares the tty.
	r.SetHasDarkBackground(true)

	return Styles{
		Success: r.NewStyle().Foreground(lipgloss.Color("2")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Dim:     r.NewStyle().Faint(true),
		Bold:    r.NewStyle().Bold(true),
		Header:  r.NewStyle().Bold(true).Underline(true),
	}
}
