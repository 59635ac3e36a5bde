package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	context lipgloss.Style
	item    lipgloss.Style
	cursor  lipgloss.Style
	check   lipgloss.Style
	tag     lipgloss.Style
	tooltip lipgloss.Style
	status  lipgloss.Style
	help    lipgloss.Style
	empty   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		context: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		item:    lipgloss.NewStyle(),
		cursor:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		check:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		tooltip: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
