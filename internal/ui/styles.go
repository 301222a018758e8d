package ui

import (
	"github.com/charmbracelet/lipgloss"

	"focustask/internal/task"
)

var (
	accent = lipgloss.Color("#3E64FF")

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	subtitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#96A0B5"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c757d"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent)
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc3545"))
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#28a745"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fd7e14"))
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

func priorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.Low:
		return doneStyle
	case task.Medium:
		return pendingStyle
	case task.High:
		return errorStyle
	default:
		return dimStyle
	}
}
