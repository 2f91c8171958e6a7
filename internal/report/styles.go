package report

import "github.com/charmbracelet/lipgloss"

// Styles apply to chrome only (banners, headings, rules). Data lines
// are always plain so the tabular layout is identical with and
// without color.
var (
	bannerStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	ruleStyle    = lipgloss.NewStyle().Foreground(colorBorder)
	labelStyle   = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
)
