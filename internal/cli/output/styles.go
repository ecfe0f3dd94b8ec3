package output

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles used across command output.
// With color disabled every style is a no-op passthrough.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style

	LineNum lipgloss.Style
	Caret   lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
}

func newStyles(color bool) *Styles {
	s := &Styles{}
	if !color {
		return s
	}

	s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	s.Bold = lipgloss.NewStyle().Bold(true)

	s.LineNum = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	s.Caret = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	s.Added = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	s.Removed = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	return s
}
