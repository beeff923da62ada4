package viz

import "github.com/charmbracelet/lipgloss"

var (
	Header = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	Label  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	Value  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	Dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Help   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	StatusPlaying = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	StatusStopped = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))

	Stage = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).Padding(0, 1)

	// One color per performer slot.
	Performers = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	}
)
