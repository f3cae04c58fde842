package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Private brand colors.
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
	colorWhite = lipgloss.Color("#FFFFFF")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(colorIris).
			Foreground(colorWhite)

	rootStyle = lipgloss.NewStyle().
			Foreground(colorSlate).
			PaddingLeft(1)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")) // Green

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	statusStyle = lipgloss.NewStyle().
			Foreground(colorIris).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorSlate).
			Faint(true)
)
