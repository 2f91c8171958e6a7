// Package tui is a read-only browser over the comparison catalog:
// one tab per report section, scrollable, no mutation of the data.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/roguetrainer/qec-frameworks/internal/catalog"
	"github.com/roguetrainer/qec-frameworks/internal/report"
)

type tab int

const (
	tabTable tab = iota
	tabCategories
	tabScenarios
	tabLayers
	tabCount
)

var tabNames = [tabCount]string{"Table", "Categories", "Scenarios", "Layers"}

// Model is the browser state. Content is pre-rendered once per tab;
// the catalog is immutable so there is nothing to refresh.
type Model struct {
	activeTab tab
	content   [tabCount][]string
	topIndex  int
	width     int
	height    int
	status    string
	keys      keyMap
}

// New pre-renders every tab from the catalog.
func New(c *catalog.Catalog) (Model, error) {
	m := Model{keys: newKeyMap()}
	sections := [tabCount]func(r *report.Renderer) error{
		tabTable: func(r *report.Renderer) error {
			return r.Table(c.Profiles(), catalog.CompareFields())
		},
		tabCategories: func(r *report.Renderer) error {
			return r.ByCategory(c.Profiles(), catalog.CompareFields())
		},
		tabScenarios: func(r *report.Renderer) error {
			return r.ScenarioGuide(c.Scenarios())
		},
		tabLayers: func(r *report.Renderer) error {
			return r.LayerDiagram(c.Layers())
		},
	}
	for t, render := range sections {
		var b strings.Builder
		r := &report.Renderer{Out: &b, Color: true}
		if err := render(r); err != nil {
			return Model{}, fmt.Errorf("render %s: %w", tabNames[t], err)
		}
		m.content[t] = strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	}
	m.status = fmt.Sprintf("%d frameworks, %d scenarios. tab to switch sections.",
		len(c.Profiles()), len(c.Scenarios()))
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampTop()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = (m.activeTab + 1) % tabCount
			m.topIndex = 0
		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
			m.topIndex = 0
		case key.Matches(msg, m.keys.Up):
			m.topIndex--
			m.clampTop()
		case key.Matches(msg, m.keys.Down):
			m.topIndex++
			m.clampTop()
		case key.Matches(msg, m.keys.Top):
			m.topIndex = 0
		case key.Matches(msg, m.keys.Bottom):
			m.topIndex = len(m.lines())
			m.clampTop()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	header := m.renderHeader()
	body := m.renderBody()
	status := m.renderBar(statusBarStyle, m.status)
	footer := m.renderBar(footerStyle, renderHelp(m.keys.ShortHelp()))
	return header + "\n" + body + "\n" + status + "\n" + footer
}

// ActiveTab returns the active tab's display name.
func (m Model) ActiveTab() string { return tabNames[m.activeTab] }

func (m Model) lines() []string { return m.content[m.activeTab] }

func (m *Model) clampTop() {
	maxTop := len(m.lines()) - m.visibleRows()
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topIndex > maxTop {
		m.topIndex = maxTop
	}
	if m.topIndex < 0 {
		m.topIndex = 0
	}
}

func (m Model) visibleRows() int {
	if m.height == 0 {
		return 20
	}
	// header + status + footer
	rows := m.height - 3
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m Model) renderHeader() string {
	name := headerAppStyle.Render("qecscope")
	parts := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		if t == m.activeTab {
			parts = append(parts, activeTabStyle.Render(tabNames[t]))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tabNames[t]))
		}
	}
	return name + "  " + strings.Join(parts, tabSepStyle.Render("│"))
}

func (m Model) renderBody() string {
	lines := m.lines()
	visible := m.visibleRows()
	end := m.topIndex + visible
	if end > len(lines) {
		end = len(lines)
	}
	window := make([]string, 0, visible)
	for i := m.topIndex; i < end; i++ {
		window = append(window, lines[i])
	}
	for len(window) < visible {
		window = append(window, "")
	}
	return strings.Join(window, "\n")
}

func (m Model) renderBar(style lipgloss.Style, text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	if m.width == 0 {
		return style.Render(flat)
	}
	return style.Render(padRight(flat, m.width-style.GetHorizontalFrameSize()))
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+" "+helpDescStyle.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
