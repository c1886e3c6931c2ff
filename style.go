package main

import "github.com/charmbracelet/lipgloss"

const (
	titleFGColor  = "#e0e0e0"
	legendFGColor = "#b0b0b0"
	statusFGColor = "#9a9a9a"
)

var (
	// Styles
	appstyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleFGColor))

	chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	chartAxisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	chartLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	modePillStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff9f1c")).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1)

	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(legendFGColor))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(statusFGColor))

	// One style per overlaid dataset, recycled when there are more
	// recordings than colors.
	traceStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
)

func traceStyle(dataset int) lipgloss.Style {
	return traceStyles[dataset%len(traceStyles)]
}
