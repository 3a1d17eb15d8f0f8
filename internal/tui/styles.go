package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     = lipgloss.Color("#cdd6f4")
	colorSubtext  = lipgloss.Color("#7f849c")
	colorAccent   = lipgloss.Color("#89b4fa")
	colorGreen    = lipgloss.Color("#a6e3a1")
	colorRed      = lipgloss.Color("#f38ba8")
	colorSurface  = lipgloss.Color("#45475a")
	colorBase     = lipgloss.Color("#1e1e2e")
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(colorSubtext)
	outputStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	statusStyle   = lipgloss.NewStyle().Foreground(colorSubtext).Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(colorSurface)
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface).Padding(0, 1)
	paneFocus     = paneStyle.BorderForeground(colorAccent)
	buttonStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 2)
	buttonFocused = buttonStyle.Foreground(colorBase).Background(colorAccent).Bold(true)
)
