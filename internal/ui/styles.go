// Package ui implements the interactive terminal interface: seller search,
// paginated listings, and the tabbed seller detail view.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by all pages
type Styles struct {
	Header    lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Selected  lipgloss.Style
}

// DefaultStyles returns the standard color scheme
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f2f2f2")).
			Background(lipgloss.Color("#1d4ed8")).
			Padding(0, 1),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 2),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f2f2f2")).
			Background(lipgloss.Color("#1d4ed8")).
			Padding(0, 2),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A")),
	}
}

// scoreStyle picks a color band for a pulse score
func (s Styles) scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 70:
		return s.Success
	case score >= 40:
		return s.Warning
	default:
		return s.Error
	}
}
