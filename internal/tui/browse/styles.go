package browse

import "github.com/charmbracelet/lipgloss"

var (
	colorSelected = lipgloss.Color("39")  // blue
	colorMuted    = lipgloss.Color("242") // gray
	colorError    = lipgloss.Color("196") // bright red
	colorWhite    = lipgloss.Color("15")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(colorWhite).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSelected)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
