package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorTabOff   lipgloss.Color = "#7f849c"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 2)
	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorMantle).
			Padding(0, 2)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
