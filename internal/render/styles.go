package render

import "github.com/charmbracelet/lipgloss"

// Styles for terminal output. The offending part of a parse excerpt is
// bold red; status and log messages reuse the original ANSI palette.
var (
	spanStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	caretStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	magentaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)
