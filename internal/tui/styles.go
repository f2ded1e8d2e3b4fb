package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/legendcard/internal/render"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	labelStyle    = lipgloss.NewStyle().Width(16).Foreground(lipgloss.Color("250"))
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	selectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1)
)

// previewStyle is the card style with its border toned down to sit under the form.
func previewStyle() render.Style {
	style := render.DefaultStyle()
	style.BorderStyle = style.BorderStyle.BorderForeground(lipgloss.Color("240"))
	return style
}
