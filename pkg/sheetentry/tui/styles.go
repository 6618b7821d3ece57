package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle     = lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color("15"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)

	enabledButton  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")).Padding(0, 1)
	disabledButton = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Background(lipgloss.Color("7")).Padding(0, 1)
	buttonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")).Padding(0, 1)

	modalStyle      = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 3)
	modalTitleStyle = lipgloss.NewStyle().Bold(true)
	successColor    = lipgloss.Color("10")
	warningColor    = lipgloss.Color("11")
	errorColor      = lipgloss.Color("9")
)
