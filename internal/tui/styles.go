package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	empty    lipgloss.Style
	prompt   lipgloss.Style
	status   lipgloss.Style
	errorMsg lipgloss.Style
	help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		item:     lipgloss.NewStyle().PaddingLeft(2),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(2),
		prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
