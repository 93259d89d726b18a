package controller

import "github.com/charmbracelet/lipgloss"

var (
	colorSafe     = lipgloss.Color("#2CD7C7")
	colorViolated = lipgloss.Color("#E74C3C")
	colorWarning  = lipgloss.Color("#F4D03F")
	colorMuted    = lipgloss.Color("#2C4A54")
	colorAccent   = lipgloss.Color("#20B9B4")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	safeStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorSafe)
	violatedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorViolated)
	rejectedStyle = lipgloss.NewStyle().Foreground(colorWarning)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	reportStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorViolated).
			Padding(0, 1)
)
