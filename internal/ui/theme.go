// Package ui holds the lipgloss theme, TTY detection, and the plain
// (non-interactive) table renderer shared by the console screens.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles used across screens.
type Theme struct {
	NoColor bool

	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style
}

// NewTheme creates the console theme. With noColor set, every style is
// a no-op passthrough.
func NewTheme(noColor bool) *Theme {
	t := &Theme{NoColor: noColor}
	if noColor {
		plain := lipgloss.NewStyle()
		t.Title = plain
		t.Header = plain
		t.Selected = plain
		t.Muted = plain
		t.Error = plain
		t.Warning = plain
		t.Help = plain
		return t
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	t.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5E7EB"))
	t.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	t.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	return t
}
