package main

import "github.com/charmbracelet/lipgloss"

const (
	sidebarMinWidth     = 20
	sidebarMaxWidth     = 60
	sidebarDefaultWidth = 32
)

const (
	panelBorderColor  = "240"
	dimTextColor      = "#a0a0a0"
	selectionBGColor  = "#3a3a3a"
	selectionBarColor = "#f5c542"
	errorFGColor      = "#ff6b6b"
)

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(dimTextColor))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(errorFGColor)).Bold(true)

	sidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(panelBorderColor))

	chartPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(panelBorderColor))

	chartAxisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	chartLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	channelCursorStyle = lipgloss.NewStyle().Background(lipgloss.Color(selectionBGColor))
	strikeStyle        = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color(dimTextColor))

	// resize grip between sidebar and chart
	gripStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(panelBorderColor))
	gripRune  = "┃"

	// drag-selection band on the scrubber line
	scrubberBandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(selectionBarColor))

	swatchRune = "●"
)

func axisStyleFor(axis AxisID) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(axisColors[axis]))
}
