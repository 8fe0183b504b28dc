package directory

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	listing  lipgloss.Style
	price    lipgloss.Style
	category lipgloss.Style
	detail   lipgloss.Style
	empty    lipgloss.Style
	section  lipgloss.Style
	author   lipgloss.Style
	divider  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		listing:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		price:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		category: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:    lipgloss.NewStyle().Faint(true),
		section:  lipgloss.NewStyle().MarginTop(1),
		author:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		divider:  lipgloss.NewStyle().Faint(true),
	}
}
